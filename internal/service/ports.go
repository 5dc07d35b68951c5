package service

import (
	"context"

	"github.com/google/uuid"
)

// Authenticator is the external auth collaborator: it verifies credentials and
// issues the access token the storefront hands back to the client.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (userID uuid.UUID, accessToken string, err error)
}

// PaymentProvider collects payment for a freshly created order. The checkout
// engine passes through whatever completion status the collaborator reports;
// a failed or timed-out charge leaves the order pending.
type PaymentProvider interface {
	Charge(ctx context.Context, orderNumber string, amountCents int64) (ref string, completed bool, err error)
}
