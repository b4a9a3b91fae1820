//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, username string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration).GenerateAdminToken(username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, _, err := service.GenerateAdminToken(username)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
