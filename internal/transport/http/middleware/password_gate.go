package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderTeamPassword carries the shared team password.
const HeaderTeamPassword = "X-Team-Password"

// PasswordGate rejects requests without the shared team password.
// An empty password disables the gate. Paths in open are always allowed.
func PasswordGate(password string, open ...string) fiber.Handler {
	openPaths := make(map[string]struct{}, len(open))
	for _, p := range open {
		openPaths[p] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if password == "" {
			return c.Next()
		}
		if _, ok := openPaths[c.Path()]; ok {
			return c.Next()
		}

		given := c.Get(HeaderTeamPassword)
		if subtle.ConstantTimeCompare([]byte(given), []byte(password)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "unauthorized",
			})
		}
		return c.Next()
	}
}
