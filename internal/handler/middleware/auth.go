package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rodizio-reservas/internal/handler/httperr"
	"rodizio-reservas/internal/pkg/cookie"
	"rodizio-reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAdminKey = "admin_username"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin token from the cookie or a Bearer header
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.Render(c, http.StatusUnauthorized, "Access token required")
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Render(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxAdminKey, username)
		c.Next()
	}
}

func GetAdminUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}
