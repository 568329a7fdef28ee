// Package token issues and verifies the signed session tokens used as
// bearer credentials. Tokens are stateless: identity and role are embedded
// in the claims and nothing is stored server-side, so a token stays valid
// until its expiry and cannot be revoked early.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a verified token proves: which user, with which role,
// at the moment of issuance. It does not reflect later role changes.
type Identity struct {
	UserID string
	Role   string
}

var (
	// ErrExpired the token was well-formed and correctly signed but its
	// expiry has passed.
	ErrExpired = errors.New("token: expired")
	// ErrMalformed the token could not be parsed, uses an unexpected
	// signing method, or its signature does not verify.
	ErrMalformed = errors.New("token: malformed or invalid signature")
)

// Claims are the standard JWT claims plus the application's own fields.
// Role rides in the token so the role gate can decide without a DB lookup.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Generate signs an HS256 token embedding userID and role, expiring after
// ttl. The secret is process-wide configuration and must not be empty.
func Generate(secret, userID, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Role:   role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies signature and expiry and returns the embedded identity.
// Expiry is reported as ErrExpired; every other failure mode (bad shape,
// wrong alg, tampered payload, wrong secret) collapses to ErrMalformed.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("token: empty secret")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpired
		}
		return Identity{}, ErrMalformed
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return Identity{}, ErrMalformed
	}
	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
