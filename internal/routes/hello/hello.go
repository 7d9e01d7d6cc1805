// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

// Package hello registers the example route shipped with the template.
// Import it for its side effects and replace it with real routes.
package hello

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gostencil/stencil/internal/routes"
)

func init() {
	routes.Register(routes.Route{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: Handler,
	})
}

// Handler answers with the canonical scaffold greeting.
func Handler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello World!"})
}
