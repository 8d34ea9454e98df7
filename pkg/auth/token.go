// pkg/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid is returned for any token the codec rejects: malformed,
// wrong signature or expired. Callers get no finer-grained signal.
var ErrTokenInvalid = errors.New("token rejected")

// Claims are the identity claims carried by an access token.
type Claims struct {
	UserID   uuid.UUID
	Username string
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 access tokens.
type TokenManager struct {
	signKey []byte
	ttl     time.Duration
}

// NewTokenManager constructs a TokenManager with the given signing key and
// token lifetime.
func NewTokenManager(signKey []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{signKey: signKey, ttl: ttl}
}

// Sign creates a signed token for the given claims.
func (m *TokenManager) Sign(claims Claims) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := tok.SignedString(m.signKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the claims it carries.
// Any parse or validation failure is reported as ErrTokenInvalid.
func (m *TokenManager) Verify(tokenString string) (Claims, error) {
	var parsed tokenClaims
	tok, err := jwt.ParseWithClaims(tokenString, &parsed,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.signKey, nil
		})
	if err != nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return Claims{}, ErrTokenInvalid
	}
	return Claims{UserID: userID, Username: parsed.Username}, nil
}
