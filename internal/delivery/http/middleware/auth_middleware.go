package middleware

import (
	"strings"

	"job-board/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

// CtxEmailKey is where the verified email claim lands in request locals.
const CtxEmailKey = "email"

// tokenHeaderNames is tried in order; the first header present wins.
var tokenHeaderNames = []string{"token", "Authorization"}

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := tokenFromHeaders(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Token not provided", nil)
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// AuthenticatedEmail returns the email attached by the middleware.
func AuthenticatedEmail(c fiber.Ctx) string {
	email, _ := c.Locals(CtxEmailKey).(string)
	return email
}

func tokenFromHeaders(c fiber.Ctx) (string, bool) {
	for _, name := range tokenHeaderNames {
		v := strings.TrimSpace(c.Get(name))
		if v == "" {
			continue
		}

		// The Authorization header may carry a Bearer prefix; the raw
		// token is also accepted in either header.
		if parts := strings.SplitN(v, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			v = strings.TrimSpace(parts[1])
		}
		if v == "" {
			continue
		}
		return v, true
	}
	return "", false
}
