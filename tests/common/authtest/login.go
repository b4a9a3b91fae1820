//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"rodizio-reservas/internal/handler/dto/request"
	"rodizio-reservas/internal/pkg/cookie"
	"rodizio-reservas/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, tokenCookie, "Admin token not found in cookies")
	require.NotEmpty(t, tokenCookie.Value, "Admin token cookie is empty")

	return tokenCookie.Value
}
