package service

import (
	"crypto/subtle"

	"collection-orders/internal/auth"
	"collection-orders/internal/model"
)

type AuthService interface {
	Login(password string) (string, error)
}

type authServiceImpl struct {
	adminPassword string
	tokens        *auth.Manager
}

func NewAuthService(adminPassword string, tokens *auth.Manager) AuthService {
	return &authServiceImpl{
		adminPassword: adminPassword,
		tokens:        tokens,
	}
}

// Login checks the submitted password against the single configured one and
// issues an admin token. There is only one account, so no other cause of
// failure is distinguished.
func (s *authServiceImpl) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", model.ErrInvalidCredentials
	}

	return s.tokens.Issue()
}
