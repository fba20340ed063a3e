package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window for issued tokens.
const TokenTTL = 30 * 24 * time.Hour

// ErrInvalidToken is the only verification failure callers ever see, so a
// bad signature is indistinguishable from an expired or malformed token.
var ErrInvalidToken = errors.New("invalid token")

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the user id.
func (tm *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	c := claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(tm.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
func (tm *TokenManager) Verify(tokenStr string) (string, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || c.ID == "" {
		return "", ErrInvalidToken
	}
	return c.ID, nil
}
