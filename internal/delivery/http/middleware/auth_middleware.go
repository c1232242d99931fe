package middleware

import (
	"strings"

	"skillswap/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey      = "user_id"
	CtxDisplayNameKey = "display_name"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid bearer token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxDisplayNameKey, claims.DisplayName)

		return c.Next()
	}
}

// Optional populates the user identity when a valid token is present
// and lets the request through either way. The catalog view uses this
// to gate its trending block without closing the catalog to visitors.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := bearerToken(c); ok {
			if claims, err := m.jwt.ValidateToken(token); err == nil {
				c.Locals(CtxUserIDKey, claims.UserID)
				c.Locals(CtxDisplayNameKey, claims.DisplayName)
			}
		}
		return c.Next()
	}
}

func bearerToken(c fiber.Ctx) (string, bool) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader == "" {
		// Websocket clients cannot set headers from browsers; allow the
		// token as a query parameter there.
		if t := strings.TrimSpace(c.Query("token")); t != "" {
			return t, true
		}
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
