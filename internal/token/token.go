// Package token issues and verifies signed access tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/Harshanand45/WorkNest/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for expired, malformed or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by an access token.
type Claims struct {
	UserID int64 `json:"user_id"`
	Role   int64 `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and parses HS256 access tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a token service from auth configuration.
func NewService(cfg config.AuthConfig) *Service {
	return &Service{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL}
}

// Issue signs a token for the given user identity.
func (s *Service) Issue(email string, userID, roleID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a raw token and returns its claims.
func (s *Service) Parse(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
