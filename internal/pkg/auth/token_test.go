package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okul/schoolhub/internal/pkg/apperrors"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestPeekClaims(t *testing.T) {
	signed := signToken(t, Claims{
		UserID: "u-1",
		Email:  "jane@school.test",
		Role:   "TEACHER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := PeekClaims(signed)
	if err != nil {
		t.Fatalf("PeekClaims: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != "TEACHER" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestPeekClaimsRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "   ", "not.a.jwt", "a.b"} {
		if _, err := PeekClaims(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("PeekClaims(%q): expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestExpired(t *testing.T) {
	live := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	dead := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}

	if Expired(live, 0) {
		t.Error("live token reported expired")
	}
	if !Expired(dead, 0) {
		t.Error("dead token reported live")
	}
	// A token dying within the skew window counts as expired.
	dying := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Second)),
	}}
	if !Expired(dying, 30*time.Second) {
		t.Error("token inside skew window reported live")
	}
	// No expiry claim means never expired.
	if Expired(&Claims{}, 0) || Expired(nil, 0) {
		t.Error("missing expiry must not count as expired")
	}
}

func TestCheckStored(t *testing.T) {
	if err := CheckStored(TokenPair{}); !errors.Is(err, apperrors.ErrNoAccessToken) {
		t.Fatalf("empty pair: %v", err)
	}
	if err := CheckStored(TokenPair{Access: "junk"}); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("junk token: %v", err)
	}

	expired := signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	if err := CheckStored(TokenPair{Access: expired}); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("expired without refresh: %v", err)
	}
	// An expired access token is still usable when a refresh token exists.
	if err := CheckStored(TokenPair{Access: expired, Refresh: "R1"}); err != nil {
		t.Fatalf("expired with refresh: %v", err)
	}

	live := signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	if err := CheckStored(TokenPair{Access: live}); err != nil {
		t.Fatalf("live token: %v", err)
	}
}
