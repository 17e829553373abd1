package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId").
// An empty secret disables the check.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := authHeader
		if scheme, rest, ok := strings.Cut(authHeader, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(rest)
		}
		if tokenStr == "" {
			return unauthorized(c, "empty token")
		}
		claims, err := Parse(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}
		c.Locals("userId", claims.Subject)
		if claims.IsAdmin {
			c.Locals("isAdmin", true)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": msg})
}
