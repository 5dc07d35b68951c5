package payment

import (
	"context"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// StripeProvider collects card payments through Stripe PaymentIntents.
// stripe.Key must be set once at startup before any Charge call.
type StripeProvider struct {
	currency string
}

func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{currency: "usd"}
}

func (p *StripeProvider) Charge(ctx context.Context, orderNumber string, amountCents int64) (string, bool, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_number", orderNumber)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", false, err
	}
	return intent.ID, intent.Status == stripe.PaymentIntentStatusSucceeded, nil
}
