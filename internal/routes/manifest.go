// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrParsing reports failures that occur while decoding a route manifest.
	ErrParsing = errors.New("error parsing route manifest")
)

// allowedMethods holds the HTTP methods a manifest route may declare.
var allowedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// StaticRoute is a route declared in a YAML manifest. It answers every
// request with a fixed status code and JSON body.
type StaticRoute struct {
	Method string         `yaml:"method"`
	Path   string         `yaml:"path"`
	Status int            `yaml:"status,omitempty"`
	Body   map[string]any `yaml:"body,omitempty"`
}

type manifest struct {
	Routes []StaticRoute `yaml:"routes"`
}

// LoadManifest reads a YAML route manifest and returns mountable routes. The
// status defaults to 200 when omitted.
func LoadManifest(path string) ([]Route, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParsing, err.Error())
	}

	var decoded manifest
	if err := yaml.Unmarshal(content, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParsing, err.Error())
	}

	mountable := make([]Route, 0, len(decoded.Routes))
	for i, static := range decoded.Routes {
		if err := validateStaticRoute(static); err != nil {
			return nil, fmt.Errorf("%w: route %d: %s", ErrParsing, i, err.Error())
		}
		mountable = append(mountable, static.toRoute())
	}
	return mountable, nil
}

func validateStaticRoute(static StaticRoute) error {
	if !allowedMethods[strings.ToUpper(static.Method)] {
		return fmt.Errorf("unsupported method %q", static.Method)
	}
	if !strings.HasPrefix(static.Path, "/") {
		return fmt.Errorf("path %q must start with /", static.Path)
	}
	return nil
}

func (s StaticRoute) toRoute() Route {
	status := s.Status
	if status == 0 {
		status = http.StatusOK
	}
	body := s.Body

	return Route{
		Method: strings.ToUpper(s.Method),
		Path:   s.Path,
		Handler: func(c *fiber.Ctx) error {
			return c.Status(status).JSON(body)
		},
	}
}
