package service_test

import (
	"context"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/google/uuid"
)

// Mocks implement the repository interfaces with overridable funcs.

type MockProductRepo struct {
	CreateFunc         func(ctx context.Context, p *models.Product) error
	UpdateFieldsFunc   func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*models.Product, error)
	ListFunc           func(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (bool, error)
	BatchGetByIDsFunc  func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	DecrementStockFunc func(ctx context.Context, id uuid.UUID, qty int32) (bool, error)
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockProductRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.BatchGetByIDsFunc != nil {
		return m.BatchGetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	if m.DecrementStockFunc != nil {
		return m.DecrementStockFunc(ctx, id, qty)
	}
	return true, nil
}

type MockCartItemRepo struct {
	CreateFunc               func(ctx context.Context, item *models.CartItem) error
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	GetByOwnerAndProductFunc func(ctx context.Context, owner models.CartIdentity, productID uuid.UUID) (*models.CartItem, error)
	ListByOwnerFunc          func(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error)
	SumQuantityByOwnerFunc   func(ctx context.Context, owner models.CartIdentity) (int64, error)
	AddQuantityFunc          func(ctx context.Context, id uuid.UUID, delta int32) error
	SetQuantityFunc          func(ctx context.Context, id uuid.UUID, qty int32) error
	ReassignToUserFunc       func(ctx context.Context, id, userID uuid.UUID) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByOwnerFunc        func(ctx context.Context, owner models.CartIdentity) (int64, error)
	WithTxFunc               func(ctx context.Context, fn func(tx repository.CartItemRepo) error) error
}

func (m *MockCartItemRepo) Create(ctx context.Context, item *models.CartItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockCartItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCartItemRepo) GetByOwnerAndProduct(ctx context.Context, owner models.CartIdentity, productID uuid.UUID) (*models.CartItem, error) {
	if m.GetByOwnerAndProductFunc != nil {
		return m.GetByOwnerAndProductFunc(ctx, owner, productID)
	}
	return nil, nil
}

func (m *MockCartItemRepo) ListByOwner(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, owner)
	}
	return nil, nil
}

func (m *MockCartItemRepo) SumQuantityByOwner(ctx context.Context, owner models.CartIdentity) (int64, error) {
	if m.SumQuantityByOwnerFunc != nil {
		return m.SumQuantityByOwnerFunc(ctx, owner)
	}
	return 0, nil
}

func (m *MockCartItemRepo) AddQuantity(ctx context.Context, id uuid.UUID, delta int32) error {
	if m.AddQuantityFunc != nil {
		return m.AddQuantityFunc(ctx, id, delta)
	}
	return nil
}

func (m *MockCartItemRepo) SetQuantity(ctx context.Context, id uuid.UUID, qty int32) error {
	if m.SetQuantityFunc != nil {
		return m.SetQuantityFunc(ctx, id, qty)
	}
	return nil
}

func (m *MockCartItemRepo) ReassignToUser(ctx context.Context, id, userID uuid.UUID) error {
	if m.ReassignToUserFunc != nil {
		return m.ReassignToUserFunc(ctx, id, userID)
	}
	return nil
}

func (m *MockCartItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockCartItemRepo) DeleteByOwner(ctx context.Context, owner models.CartIdentity) (int64, error) {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, owner)
	}
	return 0, nil
}

func (m *MockCartItemRepo) WithTx(ctx context.Context, fn func(tx repository.CartItemRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m)
}

type MockOrderRepo struct {
	CreateFunc           func(ctx context.Context, o *models.Order) error
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForUserFunc   func(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	GetByNumberFunc      func(ctx context.Context, number string) (*models.Order, error)
	UpdateStatusFunc     func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	SetPaymentResultFunc func(ctx context.Context, id uuid.UUID, completed bool, ref *string) error
	ListFunc             func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
	ExistsFunc           func(ctx context.Context, id uuid.UUID) (bool, error)
	WithTxFunc           func(ctx context.Context, fn func(orders repository.OrderRepo, items repository.OrderItemRepo, products repository.ProductRepo, carts repository.CartItemRepo) error) error
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) SetPaymentResult(ctx context.Context, id uuid.UUID, completed bool, ref *string) error {
	if m.SetPaymentResultFunc != nil {
		return m.SetPaymentResultFunc(ctx, id, completed, ref)
	}
	return nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(orders repository.OrderRepo, items repository.OrderItemRepo, products repository.ProductRepo, carts repository.CartItemRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return nil
}

type MockOrderItemRepo struct {
	BulkCreateFunc      func(ctx context.Context, items []models.OrderItem) error
	GetByOrderIDFunc    func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	SumByOrderFunc      func(ctx context.Context, orderID uuid.UUID) (int64, error)
	DeleteByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.SumByOrderFunc != nil {
		return m.SumByOrderFunc(ctx, orderID)
	}
	return 0, nil
}

func (m *MockOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.DeleteByOrderIDFunc != nil {
		return m.DeleteByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

type MockEventBus struct {
	Created   []service.OrderCreatedEvent
	Cancelled []service.OrderCancelledEvent
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, ev service.OrderCreatedEvent) error {
	m.Created = append(m.Created, ev)
	return nil
}

func (m *MockEventBus) PublishOrderCancelled(ctx context.Context, ev service.OrderCancelledEvent) error {
	m.Cancelled = append(m.Cancelled, ev)
	return nil
}
