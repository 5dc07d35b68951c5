package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Name       string     `json:"name"`
	Quantity   int32      `json:"quantity"`
	PriceCents int64      `json:"price_cents"`
	LineTotal  int64      `json:"line_total_cents"`
}

type OrderCreatedEvent struct {
	OrderID       uuid.UUID        `json:"order_id"`
	OrderNumber   string           `json:"order_number"`
	UserID        *uuid.UUID       `json:"user_id,omitempty"`
	Items         []OrderItemEvent `json:"items"`
	TotalCents    int64            `json:"total_cents"`
	ShippingCents int64            `json:"shipping_cents"`
	PaymentMethod string           `json:"payment_method"`
	CreatedAt     time.Time        `json:"created_at"`
}

type OrderCancelledEvent struct {
	OrderID     uuid.UUID  `json:"order_id"`
	OrderNumber string     `json:"order_number"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CancelledAt time.Time  `json:"cancelled_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error
}
