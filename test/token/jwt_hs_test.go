package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signAccess(t *testing.T, secret, issuer, audience string, sub uuid.UUID, role string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sub.String(),
		"role": role,
		"iss":  issuer,
		"aud":  audience,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestHSVerifier_ParseAndValidateAccess(t *testing.T) {
	const secret, issuer, audience = "test-secret", "auth-service", "storefront"
	v := token.NewHSVerifier(secret, issuer, audience)
	ctx := context.Background()

	sub := uuid.New()
	good := signAccess(t, secret, issuer, audience, sub, "ROLE_CUSTOMER", time.Minute)
	claims, err := v.ParseAndValidateAccess(ctx, good)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if claims.UserID != sub || claims.Role != "ROLE_CUSTOMER" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	// wrong secret
	forged := signAccess(t, "other-secret", issuer, audience, sub, "ROLE_CUSTOMER", time.Minute)
	if _, err := v.ParseAndValidateAccess(ctx, forged); err == nil {
		t.Fatal("forged token accepted")
	}

	// expired
	expired := signAccess(t, secret, issuer, audience, sub, "ROLE_CUSTOMER", -time.Minute)
	if _, err := v.ParseAndValidateAccess(ctx, expired); err == nil {
		t.Fatal("expired token accepted")
	}

	// wrong audience
	wrongAud := signAccess(t, secret, issuer, "other-api", sub, "ROLE_CUSTOMER", time.Minute)
	if _, err := v.ParseAndValidateAccess(ctx, wrongAud); err == nil {
		t.Fatal("token for another audience accepted")
	}
}
