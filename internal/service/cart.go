package service

import (
	"context"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"

	"github.com/google/uuid"
)

// CartSnapshot is the cart as the checkout engine and the cart page see it:
// line items in storage order plus the computed items total (shipping excluded).
type CartSnapshot struct {
	Items      []models.CartItem
	TotalCents int64
}

type CartService interface {
	// Add finds-or-creates the line item for (owner, product); an existing row
	// accumulates quantity instead of duplicating.
	Add(ctx context.Context, owner models.CartIdentity, productID uuid.UUID, quantity int32) (*models.CartItem, error)
	// Update sets the quantity; quantity <= 0 removes the row. Returns nil when
	// the row was removed.
	Update(ctx context.Context, owner models.CartIdentity, itemID uuid.UUID, quantity int32) (*models.CartItem, error)
	Remove(ctx context.Context, owner models.CartIdentity, itemID uuid.UUID) error
	Snapshot(ctx context.Context, owner models.CartIdentity) (*CartSnapshot, error)
	// Count is the badge counter: total quantity across the cart, 0 when no
	// identity has been established yet.
	Count(ctx context.Context, owner models.CartIdentity) (int64, error)
}
