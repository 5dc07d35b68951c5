package service

import (
	"context"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"

	"github.com/google/uuid"
)

// Allowed status transitions. Checkout only ever creates pending orders;
// everything after that goes through UpdateStatus/CancelOrder.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered},
}

func canTransition(from, to models.OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type orderService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, events EventBus) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func requireAuth(ctx context.Context) (uuid.UUID, Role, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, "", ErrUnauthorized
	}
	role, _ := RoleFromContext(ctx) // absent role means customer
	return uid, role, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	var ord *models.Order
	if role == RoleAdmin {
		ord, err = s.repo.Orders.GetByID(ctx, id)
	} else {
		ord, err = s.repo.Orders.GetByIDForUser(ctx, id, userID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if role != RoleAdmin && (ord.UserID == nil || *ord.UserID != userID) {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	if role != RoleAdmin {
		f.UserID = &userID
	}

	ordersPtr, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		UserID: f.UserID,
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, len(ordersPtr))
	for i, o := range ordersPtr {
		orders[i] = *o
	}
	return orders, total, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	_, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if role != RoleAdmin {
		return nil, ErrForbidden
	}

	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	if !canTransition(ord.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.repo.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	ord, err = s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == models.OrderStatusCancelled && s.events != nil {
		_ = s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     ord.ID,
			OrderNumber: ord.OrderNumber,
			UserID:      ord.UserID,
			CancelledAt: s.now(),
		})
	}

	return ord, nil
}

func (s *orderService) CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if role != RoleAdmin && (ord.UserID == nil || *ord.UserID != userID) {
		return nil, ErrForbidden
	}

	if !canTransition(ord.Status, models.OrderStatusCancelled) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.repo.Orders.UpdateStatus(ctx, id, models.OrderStatusCancelled); err != nil {
		return nil, err
	}

	ord, err = s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     ord.ID,
			OrderNumber: ord.OrderNumber,
			UserID:      ord.UserID,
			CancelledAt: s.now(),
		})
	}

	return ord, nil
}
