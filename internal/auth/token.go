package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"collection-orders/internal/model"
)

const RoleAdmin = "admin"

// TokenTTL is how long an issued admin token stays valid. Expiry forces a
// re-login; there is no refresh or revocation.
const TokenTTL = 6 * time.Hour

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies admin tokens with a single shared HMAC key.
// Tokens are stateless: no server-side session record exists.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue() (string, error) {
	now := time.Now()
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry. Any failure, including a well-signed
// token carrying the wrong role, comes back as ErrUnauthorized.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, model.ErrUnauthorized
	}
	if claims.Role != RoleAdmin {
		return nil, model.ErrUnauthorized
	}
	return claims, nil
}
