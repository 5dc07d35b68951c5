package service

import (
	"context"
	"strings"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"

	"github.com/google/uuid"
)

// Shipping policy: flat fee, waived above the free-shipping threshold.
const (
	FreeShippingThresholdCents int64 = 100_00
	FlatShippingCents          int64 = 7_00
)

func ShippingCostCents(totalCents int64) int64 {
	if totalCents >= FreeShippingThresholdCents {
		return 0
	}
	return FlatShippingCents
}

// OrderNumber allocates the customer-facing order identifier: the first 13
// characters of a random UUID's uppercase hex. Global uniqueness is backed by
// the unique index on orders.order_number.
func OrderNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:13])
}

type ShippingInfo struct {
	FullName   string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
}

type CheckoutService interface {
	// Checkout converts the owner's cart snapshot into an Order + OrderItems,
	// decrements stock and clears the cart, all in one transaction. Any line
	// item with insufficient stock fails the whole checkout.
	Checkout(ctx context.Context, owner models.CartIdentity, info ShippingInfo, method models.PaymentMethod) (*models.Order, error)
}
