package middleware

import (
	"strings"

	"career-path/internal/pkg/jwt"
	"career-path/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	// CtxUserIDKey is the Locals key handlers use to read the
	// authenticated user's id.
	CtxUserIDKey = "user_id"

	bearerPrefix = "Bearer "
)

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer access token and
// stores the token's user id in Locals for downstream handlers.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return response.Error(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header", "")
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			return response.Error(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header", "")
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, "Invalid or expired token", "")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID reads the authenticated user's id set by RequireAuth.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
