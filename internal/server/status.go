// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// statusRoutes registers the routes reporting service status as static JSON.
func statusRoutes(app *fiber.App, serviceName, version string) {
	handler := func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"name":    serviceName,
			"status":  "OK",
			"version": version,
		})
	}

	app.Get(statusPrefix+"healthz", handler)
	app.Get(statusPrefix+"ready", handler)
}
