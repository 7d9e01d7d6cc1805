// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

// Package routes holds the route registry populated by route providers at
// init time, plus the loader for YAML route manifests. The serve command
// mounts everything the registry contains onto the HTTP server.
package routes
