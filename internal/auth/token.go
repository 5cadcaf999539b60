package auth

import (
	"fmt"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims embed the authenticated user into the session token.
type Claims struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the HS256 session tokens that carry the
// role the server-side gates key off.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenManager{secret: []byte(cfg.JWTSecret), ttl: ttl}
}

// Issue signs a session token for the user.
func (m *TokenManager) Issue(user User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the user it was issued to.
func (m *TokenManager) Verify(tokenString string) (User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return User{}, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return User{}, fmt.Errorf("invalid session token")
	}

	return User{Username: claims.Username, Role: claims.Role, Name: claims.Name}, nil
}
