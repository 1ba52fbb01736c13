package jwtlocal

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, issuer, userID string) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		Email:  "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifier_TokenValido(t *testing.T) {
	v, err := NewVerifier("s3cret", "cityhall")
	if err != nil {
		t.Fatalf("NewVerifier error: %v", err)
	}

	got, err := v.Verify(context.Background(), signToken(t, "s3cret", "cityhall", "user-1"))
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", got.UserID)
	}
	if got.Email != "ana@example.com" {
		t.Fatalf("expected email in claims, got %s", got.Email)
	}
}

func TestVerifier_SecretEquivocado(t *testing.T) {
	v, _ := NewVerifier("s3cret", "")

	if _, err := v.Verify(context.Background(), signToken(t, "otro", "", "user-1")); err == nil {
		t.Fatalf("expected error for token signed with wrong secret")
	}
}

func TestVerifier_IssuerEquivocado(t *testing.T) {
	v, _ := NewVerifier("s3cret", "cityhall")

	if _, err := v.Verify(context.Background(), signToken(t, "s3cret", "impostor", "user-1")); err == nil {
		t.Fatalf("expected error for unexpected issuer")
	}
}

func TestVerifier_SinUserID_UsaSubject(t *testing.T) {
	v, _ := NewVerifier("s3cret", "")

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-sub",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("s3cret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	got, err := v.Verify(context.Background(), signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got.UserID != "user-sub" {
		t.Fatalf("expected subject fallback, got %s", got.UserID)
	}
}

func TestNewVerifier_SinSecreto(t *testing.T) {
	if _, err := NewVerifier("   ", ""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
