// middleware/request_log.go
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it
// back on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// AccessLog writes one structured line per request.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// render errors here so the logged status is the one sent
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		entry := log.WithFields(log.Fields{
			"request_id": c.Locals(RequestIDKey),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.IP(),
		})
		if caller := CallerID(c); caller != "" {
			entry = entry.WithField("caller", caller)
		}
		if status >= fiber.StatusInternalServerError {
			entry.Warn("request failed")
		} else {
			entry.Info("request handled")
		}
		return nil
	}
}
