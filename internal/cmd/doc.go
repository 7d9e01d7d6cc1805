// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

// Package cmd holds the subcommands of the stencil CLI.
package cmd
