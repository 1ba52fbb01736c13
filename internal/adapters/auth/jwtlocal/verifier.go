package jwtlocal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dog-licensing/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwt secret required")
)

type claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier valida tokens HS256 firmados por el proveedor de identidad cuando
// se comparte secreto en vez de exponer un endpoint de verificación remota.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
	}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("parse token failed: %w", err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, errors.New("invalid token claims")
	}

	if v.issuer != "" && c.Issuer != v.issuer {
		return auth.Claims{}, errors.New("unexpected token issuer")
	}

	userID := strings.TrimSpace(c.UserID)
	if userID == "" {
		// fallback: algunos emisores solo llenan el subject
		userID = strings.TrimSpace(c.Subject)
	}
	if userID == "" {
		return auth.Claims{}, errors.New("token missing user id")
	}

	return auth.Claims{
		UserID: userID,
		Email:  strings.TrimSpace(c.Email),
	}, nil
}
