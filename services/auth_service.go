package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/kuniyuki/beybattle-server/utils"
)

const operatorTokenTTL = 24 * time.Hour

// AuthService authenticates the single operator account. Players have no
// credentials; every mutating route is operator-only.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	passwordHash string
	jwtSecret    []byte
}

func NewAuthService(passwordHash, jwtSecret string) AuthService {
	return &authService{
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
	}
}

func (s *authService) Login(_ context.Context, password string) (string, error) {
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		return "", ErrAuthInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "operator",
		"iat":  now.Unix(),
		"exp":  now.Add(operatorTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign operator token: %w", err)
	}
	return signed, nil
}
