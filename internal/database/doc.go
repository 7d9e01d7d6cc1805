// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

// Package database carries the schema placeholder for services generated from
// this template: a set of embedded goose migrations applied by the migrate
// command. The running service does not touch the database.
package database
