// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeaderName = "x-request-id"

// GetReqID returns the request ID from the incoming headers, generating a
// random one when the client did not send any.
func GetReqID(c *fiber.Ctx) string {
	if requestID := c.Get(requestIDHeaderName); requestID != "" {
		return requestID
	}
	requestID, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return requestID.String()
}

// RequestMiddlewareLogger is a fiber middleware that emits one http-severity
// record per completed request and makes the logger available to handlers
// through the request user context. Paths matching one of excludedPrefix are
// not logged.
func RequestMiddlewareLogger(log Logger, excludedPrefix []string) fiber.Handler {
	return func(fiberCtx *fiber.Ctx) error {
		path := fiberCtx.Path()
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(path, prefix) {
				return fiberCtx.Next()
			}
		}

		start := time.Now()
		requestID := GetReqID(fiberCtx)

		ctx := WithContext(fiberCtx.UserContext(), log)
		fiberCtx.SetUserContext(ctx)

		err := fiberCtx.Next()

		statusCode := fiberCtx.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); err != nil && ok {
			statusCode = fiberErr.Code
		}

		log.HTTP(fmt.Sprintf("%s %s %d %s request_id=%s",
			fiberCtx.Method(),
			path,
			statusCode,
			time.Since(start).Round(time.Millisecond),
			requestID,
		))

		return err
	}
}
