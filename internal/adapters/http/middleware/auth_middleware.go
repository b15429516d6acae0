package middleware

import (
	"strings"

	"estatehub/internal/core/services"
	"estatehub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth guards a route group. The Authorization header is the
// preferred token source; the access_token cookie is consulted only
// when no header is present - never both. Every failure answers with
// the same unauthorized response so the reason is not leaked.
func RequireAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			if strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		} else {
			accessToken = c.Cookies("access_token")
		}

		if accessToken == "" {
			return unauthorized(c)
		}

		user := authService.Authenticate(c.Context(), accessToken)
		if user == nil {
			return unauthorized(c)
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return problem.Unauthorized(c, problem.CodeUnauthorized,
		"Unauthorized", "Authentication credentials were not provided or are invalid")
}
