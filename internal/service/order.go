package service

import (
	"context"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"

	"github.com/google/uuid"
)

type OrderListFilter struct {
	UserID *uuid.UUID
	Status *models.OrderStatus
	Limit  int
	Offset int
}

// OrderService is the order-management side: lookups for confirmation and
// history pages, plus status transitions performed after checkout.
type OrderService interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
	ListOrders(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}
