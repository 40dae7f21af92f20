package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdminKey gates a route behind the shared admin secret. The key
// is accepted from the X-Admin-Key or X-Api-Key header, or the "key"
// query parameter. This is a pure boundary gate: no sessions, no
// per-user scoping.
func RequireAdminKey(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Get("X-Admin-Key")
		if supplied == "" {
			supplied = c.Get("X-Api-Key")
		}
		if supplied == "" {
			supplied = c.Query("key")
		}

		if supplied == "" || supplied != adminKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}
