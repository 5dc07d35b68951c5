package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the subset of the access token the storefront cares about.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Exp    time.Time
}

// HSVerifier validates HS256 access tokens issued by the auth service.
// The storefront never signs tokens itself.
type HSVerifier struct {
	accessSecret []byte
	issuer       string
	audience     string
}

func NewHSVerifier(accessSecret, issuer, audience string) *HSVerifier {
	return &HSVerifier{
		accessSecret: []byte(accessSecret),
		issuer:       issuer,
		audience:     audience,
	}
}

type customClaims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (v *HSVerifier) ParseAndValidateAccess(ctx context.Context, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.accessSecret, nil
	}, jwt.WithAudience(v.audience), jwt.WithIssuer(v.issuer))
	if err != nil {
		return nil, err
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	uid, err := uuid.Parse(cc.Sub)
	if err != nil {
		return nil, err
	}
	return &Claims{UserID: uid, Role: cc.Role, Exp: cc.ExpiresAt.Time}, nil
}
