package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okul/schoolhub/internal/pkg/apperrors"
)

// ErrInvalidToken reports a token that could not be decoded at all.
var ErrInvalidToken = errors.New("invalid token")

// TokenPair holds the access/refresh credential pair issued by the backend.
// Both halves travel together: the token store persists and clears them as a
// unit so a torn pair is never observable.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty reports whether no access token is present. An empty pair is a valid
// state meaning "anonymous", not an error.
func (p TokenPair) Empty() bool {
	return p.Access == ""
}

// Claims is the subset of the backend's JWT claims the client cares about.
// The client never verifies signatures (the signing secret lives server
// side); claims are peeked for expiry checks and role hints only.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// PeekClaims decodes a token's claims without verifying its signature.
func PeekClaims(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Expired reports whether the claims' expiry has passed, with a small skew
// allowance so a token about to die is treated as already dead.
func Expired(claims *Claims, skew time.Duration) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	return time.Now().Add(skew).After(claims.ExpiresAt.Time)
}

// BearerValue formats a token for an Authorization header.
func BearerValue(token string) string {
	return "Bearer " + token
}

// CheckStored validates that a stored pair is usable for an authenticated
// session bootstrap: a readable access token that is not locally expired.
func CheckStored(pair TokenPair) error {
	if pair.Empty() {
		return apperrors.ErrNoAccessToken
	}
	claims, err := PeekClaims(pair.Access)
	if err != nil {
		return apperrors.ErrTokenInvalid
	}
	if Expired(claims, 0) && pair.Refresh == "" {
		return apperrors.ErrTokenExpired
	}
	return nil
}
