// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

// Package server contains the HTTP bootstrap for services generated from this
// template. It sets up the Fiber application, configures the request logging
// middleware, and exposes the status routes; application routes are mounted
// on it by the serve command.
package server
