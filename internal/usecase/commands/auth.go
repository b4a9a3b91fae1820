package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	reqdto "rodizio-reservas/internal/handler/dto/request"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/pkg/jwt"
	"rodizio-reservas/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error)
}

// The admin account is a single username/bcrypt-hash pair from the environment
type authCommandsImpl struct {
	username     string
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthCommands(username, passwordHash string, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		username:     username,
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	// password is always checked so both failure paths take the same time
	passErr := password.ComparePassword(a.passwordHash, req.Password)
	if !userOK || passErr != nil {
		slog.Warn("admin login rejected", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken(a.username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Username:  a.username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
