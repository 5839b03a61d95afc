// middleware/gateway.go
package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// GatewayAuthMiddleware only lets through requests carrying the gateway's
// bearer token. An empty expectedToken disables the check. Paths listed in
// open skip the check (health probes).
func GatewayAuthMiddleware(expectedToken string, open ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if expectedToken == "" {
			return c.Next()
		}
		for _, p := range open {
			if c.Path() == p {
				return c.Next()
			}
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Warnf("[GATEWAY_AUTH] Missing Authorization header for %s", c.Path())
			return fiber.NewError(fiber.StatusUnauthorized, "gateway authentication token missing")
		}

		// "Bearer <token>", raw token also accepted
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			log.Warnf("[GATEWAY_AUTH] Invalid token for %s", c.Path())
			return fiber.NewError(fiber.StatusUnauthorized, "invalid gateway authentication token")
		}

		return c.Next()
	}
}
