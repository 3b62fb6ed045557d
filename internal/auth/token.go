package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tropicaldog17/folio/internal/apperr"
)

// Token lifetime. There is no refresh or revocation; a token is good until
// it expires or the signing secret rotates.
const tokenTTL = 24 * time.Hour

// Claims defines the structure of the JWT payload
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens with a single process-wide
// HS256 secret supplied at construction.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a token issuer for the given secret
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue creates a signed token for the user with a 24 hour expiry.
func (ti *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the subject
// user id. Malformed, expired, and badly signed tokens all come back as the
// same unauthorized error; callers get no detail beyond "invalid or
// expired".
func (ti *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", apperr.ErrUnauthorized
	}
	return claims.Subject, nil
}
