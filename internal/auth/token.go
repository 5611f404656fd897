package auth

import (
	"errors"
	"time"

	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// TokenManager issues and verifies the bearer tokens that gate protected
// routes. Tokens are HS256 JWTs carrying the user id as the subject; they
// expire seven days after issuance and are never revoked server-side.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte) *TokenManager {
	return &TokenManager{secret: secret, ttl: tokenTTL}
}

func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify returns the user id embedded in a valid token. Malformed, expired,
// tampered, or wrongly-signed tokens all collapse into domain.ErrTokenInvalid.
func (m *TokenManager) Verify(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}
