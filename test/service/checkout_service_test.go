package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/google/uuid"
)

type MockPaymentProvider struct {
	ChargeFunc func(ctx context.Context, orderNumber string, amountCents int64) (string, bool, error)
}

func (m *MockPaymentProvider) Charge(ctx context.Context, orderNumber string, amountCents int64) (string, bool, error) {
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, orderNumber, amountCents)
	}
	return "", false, nil
}

func TestShippingCostCents(t *testing.T) {
	cases := []struct {
		total int64
		want  int64
	}{
		{0, service.FlatShippingCents},
		{5000, service.FlatShippingCents},
		{service.FreeShippingThresholdCents - 1, service.FlatShippingCents},
		{service.FreeShippingThresholdCents, 0},
		{12000, 0},
	}
	for _, c := range cases {
		if got := service.ShippingCostCents(c.total); got != c.want {
			t.Fatalf("ShippingCostCents(%d) = %d, want %d", c.total, got, c.want)
		}
	}
}

func TestOrderNumber_Shape(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		n := service.OrderNumber()
		if len(n) != 13 {
			t.Fatalf("length expected 13 got %d (%q)", len(n), n)
		}
		for _, r := range n {
			if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
				t.Fatalf("unexpected character %q in %q", r, n)
			}
		}
		if _, dup := seen[n]; dup {
			t.Fatalf("duplicate order number %q", n)
		}
		seen[n] = struct{}{}
	}
}

// checkoutFixture wires the mocks for a full checkout round.
type checkoutFixture struct {
	orders     *MockOrderRepo
	cartRows   []models.CartItem
	created    *models.Order
	frozen     []models.OrderItem
	decrements map[uuid.UUID]int32
	cleared    bool
	stockFail  uuid.UUID // product whose decrement reports insufficient stock
}

func newCheckoutFixture(cartRows []models.CartItem) *checkoutFixture {
	f := &checkoutFixture{cartRows: cartRows, decrements: map[uuid.UUID]int32{}}

	items := &MockOrderItemRepo{
		BulkCreateFunc: func(ctx context.Context, rows []models.OrderItem) error {
			f.frozen = rows
			return nil
		},
	}
	products := &MockProductRepo{
		DecrementStockFunc: func(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
			if id == f.stockFail {
				return false, nil
			}
			f.decrements[id] += qty
			return true, nil
		},
	}
	carts := &MockCartItemRepo{
		ListByOwnerFunc: func(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error) {
			return f.cartRows, nil
		},
		DeleteByOwnerFunc: func(ctx context.Context, owner models.CartIdentity) (int64, error) {
			f.cleared = true
			return int64(len(f.cartRows)), nil
		},
	}
	f.orders = &MockOrderRepo{
		CreateFunc: func(ctx context.Context, o *models.Order) error {
			o.ID = uuid.New()
			f.created = o
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			if f.created == nil || f.created.ID != id {
				return nil, nil
			}
			cp := *f.created
			cp.Items = f.frozen
			return &cp, nil
		},
	}
	f.orders.WithTxFunc = func(ctx context.Context, fn func(repository.OrderRepo, repository.OrderItemRepo, repository.ProductRepo, repository.CartItemRepo) error) error {
		return fn(f.orders, items, products, carts)
	}
	return f
}

func (f *checkoutFixture) repo() *repository.Repository {
	return &repository.Repository{Orders: f.orders}
}

func testShipping() service.ShippingInfo {
	return service.ShippingInfo{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+21612345678",
		Address:    "1 Analytical St",
		City:       "Tunis",
		PostalCode: "1001",
	}
}

func TestCheckout_Success(t *testing.T) {
	owner := models.UserIdentity(uuid.New())
	pA := &models.Product{ID: uuid.New(), Name: "Keyboard", PriceCents: 4500, Stock: 10, Available: true}
	pB := &models.Product{ID: uuid.New(), Name: "Mouse", PriceCents: 2000, Stock: 5, Available: true}

	f := newCheckoutFixture([]models.CartItem{
		{ID: uuid.New(), ProductID: pA.ID, Quantity: 1, Product: pA},
		{ID: uuid.New(), ProductID: pB.ID, Quantity: 2, Product: pB},
	})

	events := &MockEventBus{}
	svc := service.NewCheckoutService(f.repo(), nil, events, nil, nil)

	order, err := svc.Checkout(context.Background(), owner, testShipping(), "")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	wantTotal := int64(4500 + 2*2000)
	if order.TotalAmountCents != wantTotal {
		t.Fatalf("total expected %d got %d", wantTotal, order.TotalAmountCents)
	}
	if order.ShippingCostCents != service.FlatShippingCents {
		t.Fatalf("shipping expected %d got %d", service.FlatShippingCents, order.ShippingCostCents)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("status expected pending got %s", order.Status)
	}
	if order.PaymentMethod != models.PaymentMethodCOD {
		t.Fatalf("empty method must default to cod, got %s", order.PaymentMethod)
	}
	if order.Country != "Tunisia" {
		t.Fatalf("country default expected Tunisia got %q", order.Country)
	}
	if order.UserID == nil || *order.UserID != owner.UserID {
		t.Fatalf("order not linked to user: %+v", order.UserID)
	}

	if f.decrements[pA.ID] != 1 || f.decrements[pB.ID] != 2 {
		t.Fatalf("stock decrements mismatch: %+v", f.decrements)
	}
	if !f.cleared {
		t.Fatal("cart must be cleared after checkout")
	}

	if len(f.frozen) != 2 {
		t.Fatalf("expected 2 frozen items got %d", len(f.frozen))
	}
	for _, it := range f.frozen {
		switch {
		case it.ProductID != nil && *it.ProductID == pA.ID:
			if it.ProductName != "Keyboard" || it.ProductPriceCents != 4500 {
				t.Fatalf("frozen item mismatch: %+v", it)
			}
		case it.ProductID != nil && *it.ProductID == pB.ID:
			if it.ProductName != "Mouse" || it.ProductPriceCents != 2000 {
				t.Fatalf("frozen item mismatch: %+v", it)
			}
		default:
			t.Fatalf("unexpected frozen item: %+v", it)
		}
	}

	if len(events.Created) != 1 {
		t.Fatalf("expected 1 created event got %d", len(events.Created))
	}
	if events.Created[0].TotalCents != wantTotal {
		t.Fatalf("event total mismatch: %d", events.Created[0].TotalCents)
	}
}

func TestCheckout_FreeShippingAboveThreshold(t *testing.T) {
	owner := models.SessionIdentity("sess-ship")
	p := &models.Product{ID: uuid.New(), Name: "Monitor", PriceCents: 12000, Stock: 2, Available: true}

	f := newCheckoutFixture([]models.CartItem{
		{ID: uuid.New(), ProductID: p.ID, Quantity: 1, Product: p},
	})
	svc := service.NewCheckoutService(f.repo(), nil, nil, nil, nil)

	order, err := svc.Checkout(context.Background(), owner, testShipping(), models.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.ShippingCostCents != 0 {
		t.Fatalf("expected free shipping got %d", order.ShippingCostCents)
	}
	if order.UserID != nil {
		t.Fatal("guest order must not carry a user id")
	}
	if order.GrandTotalCents() != 12000 {
		t.Fatalf("grand total mismatch: %d", order.GrandTotalCents())
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(nil)
	svc := service.NewCheckoutService(f.repo(), nil, nil, nil, nil)

	_, err := svc.Checkout(context.Background(), models.SessionIdentity("sess-empty"), testShipping(), "")
	if !errors.Is(err, service.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart got %v", err)
	}
}

func TestCheckout_InsufficientStockFailsWholeOrder(t *testing.T) {
	owner := models.SessionIdentity("sess-stock")
	pA := &models.Product{ID: uuid.New(), Name: "A", PriceCents: 100, Stock: 10, Available: true}
	pB := &models.Product{ID: uuid.New(), Name: "B", PriceCents: 100, Stock: 0, Available: true}

	f := newCheckoutFixture([]models.CartItem{
		{ID: uuid.New(), ProductID: pA.ID, Quantity: 1, Product: pA},
		{ID: uuid.New(), ProductID: pB.ID, Quantity: 1, Product: pB},
	})
	f.stockFail = pB.ID

	events := &MockEventBus{}
	svc := service.NewCheckoutService(f.repo(), nil, events, nil, nil)

	_, err := svc.Checkout(context.Background(), owner, testShipping(), "")
	if !errors.Is(err, service.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock got %v", err)
	}
	if len(events.Created) != 0 {
		t.Fatal("no event must be published on a failed checkout")
	}
}

func TestCheckout_UnknownPaymentMethod(t *testing.T) {
	f := newCheckoutFixture(nil)
	svc := service.NewCheckoutService(f.repo(), nil, nil, nil, nil)

	_, err := svc.Checkout(context.Background(), models.SessionIdentity("s"), testShipping(), "bitcoin")
	if !errors.Is(err, service.ErrPaymentMethodInvalid) {
		t.Fatalf("expected ErrPaymentMethodInvalid got %v", err)
	}
}

func TestCheckout_CardPaymentRecorded(t *testing.T) {
	owner := models.UserIdentity(uuid.New())
	p := &models.Product{ID: uuid.New(), Name: "SSD", PriceCents: 8000, Stock: 3, Available: true}

	f := newCheckoutFixture([]models.CartItem{
		{ID: uuid.New(), ProductID: p.ID, Quantity: 1, Product: p},
	})

	var recordedRef *string
	var recordedCompleted bool
	f.orders.SetPaymentResultFunc = func(ctx context.Context, id uuid.UUID, completed bool, ref *string) error {
		recordedCompleted = completed
		recordedRef = ref
		return nil
	}

	payments := &MockPaymentProvider{
		ChargeFunc: func(ctx context.Context, orderNumber string, amountCents int64) (string, bool, error) {
			if amountCents != 8000+service.FlatShippingCents {
				t.Fatalf("charge amount expected grand total got %d", amountCents)
			}
			return "pi_123", true, nil
		},
	}

	svc := service.NewCheckoutService(f.repo(), payments, nil, nil, nil)

	order, err := svc.Checkout(context.Background(), owner, testShipping(), models.PaymentMethodStripe)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if !recordedCompleted || recordedRef == nil || *recordedRef != "pi_123" {
		t.Fatalf("payment result not recorded: completed=%v ref=%v", recordedCompleted, recordedRef)
	}
	if !order.PaymentCompleted || order.PaymentRef == nil || *order.PaymentRef != "pi_123" {
		t.Fatalf("order payment flags not updated: %+v", order)
	}
}

func TestCheckout_CardPaymentFailureKeepsOrderPending(t *testing.T) {
	owner := models.UserIdentity(uuid.New())
	p := &models.Product{ID: uuid.New(), Name: "HDD", PriceCents: 6000, Stock: 3, Available: true}

	f := newCheckoutFixture([]models.CartItem{
		{ID: uuid.New(), ProductID: p.ID, Quantity: 1, Product: p},
	})
	f.orders.SetPaymentResultFunc = func(ctx context.Context, id uuid.UUID, completed bool, ref *string) error {
		t.Fatal("payment result must not be recorded when the charge errors")
		return nil
	}

	payments := &MockPaymentProvider{
		ChargeFunc: func(ctx context.Context, orderNumber string, amountCents int64) (string, bool, error) {
			return "", false, errors.New("gateway timeout")
		},
	}

	svc := service.NewCheckoutService(f.repo(), payments, nil, nil, nil)

	order, err := svc.Checkout(context.Background(), owner, testShipping(), models.PaymentMethodStripe)
	if err != nil {
		t.Fatalf("checkout must succeed even when the charge fails: %v", err)
	}
	if order.PaymentCompleted {
		t.Fatal("payment must stay incomplete")
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("order must stay pending got %s", order.Status)
	}
}
