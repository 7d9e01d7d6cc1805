// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Route is a single HTTP route to mount on the server at bootstrap.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

var (
	registryMu sync.Mutex
	registry   []Route
)

// Register adds a route to the registry. Route providers call it from their
// init function so that importing the package is enough to expose the route.
// It panics on incomplete routes since registration happens at program start.
func Register(route Route) {
	if route.Method == "" || route.Path == "" || route.Handler == nil {
		panic("routes: Register called with an incomplete route")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, route)
}

// All returns a copy of every registered route in registration order.
func All() []Route {
	registryMu.Lock()
	defer registryMu.Unlock()

	all := make([]Route, len(registry))
	copy(all, registry)
	return all
}
