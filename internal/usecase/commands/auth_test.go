//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "rodizio-reservas/internal/handler/dto/request"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/pkg/jwt"
	"rodizio-reservas/internal/pkg/password"
	"rodizio-reservas/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("s3nha-forte")
	require.NoError(t, err)
	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAuthCommands("admin", hash, jwtService)

	tests := []struct {
		name    string
		req     reqdto.AdminLoginRequest
		wantErr error
	}{
		{name: "valid credentials", req: reqdto.AdminLoginRequest{Username: "admin", Password: "s3nha-forte"}},
		{name: "wrong password", req: reqdto.AdminLoginRequest{Username: "admin", Password: "errada"}, wantErr: commands.ErrInvalidCredentials},
		{name: "wrong username", req: reqdto.AdminLoginRequest{Username: "root", Password: "s3nha-forte"}, wantErr: commands.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := cmds.Login(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			claims, err := jwtService.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Subject)
			assert.True(t, result.ExpiresAt.After(time.Now()))
		})
	}
}
