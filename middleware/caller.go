package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	CallerIDKey    = "caller_id"
	CallerRolesKey = "caller_roles"
)

// CallerContext picks up the identity the gateway forwards in X-User-ID and
// X-User-Roles. Nothing is enforced here; the values only end up in the
// access log.
func CallerContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := strings.TrimSpace(c.Get("X-User-ID")); id != "" {
			c.Locals(CallerIDKey, id)
		}

		var roles []string
		for _, r := range strings.Split(c.Get("X-User-Roles"), ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}
		if len(roles) > 0 {
			c.Locals(CallerRolesKey, roles)
		}
		return c.Next()
	}
}

// CallerID returns the forwarded user id, or "" for anonymous calls.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(CallerIDKey).(string)
	return id
}

// CallerRoles returns the forwarded roles.
func CallerRoles(c *fiber.Ctx) []string {
	roles, _ := c.Locals(CallerRolesKey).([]string)
	return roles
}
