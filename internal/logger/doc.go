// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

// Package logger implements the attributed console logger used across the
// service. Records carry a timestamp, one of seven ordered severities, the
// message, and the relative source location of the originating call site,
// rendered as one colorized line on a single output stream. Configuration is
// resolved once from the environment and immutable afterwards; loggers travel
// through contexts via the WithContext and FromContext helpers.
package logger
