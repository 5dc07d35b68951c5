package service

import (
	"context"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/cache"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"

	"go.uber.org/zap"
)

const defaultCountry = "Tunisia"

type checkoutService struct {
	repo     *repository.Repository
	payments PaymentProvider // optional; used for the card method only
	events   EventBus        // optional
	cache    *cache.RedisClient
	log      *zap.Logger
	now      func() time.Time
}

func NewCheckoutService(repo *repository.Repository, payments PaymentProvider, events EventBus, rdb *cache.RedisClient, log *zap.Logger) CheckoutService {
	if log == nil {
		log = zap.NewNop()
	}
	return &checkoutService{
		repo:     repo,
		payments: payments,
		events:   events,
		cache:    rdb,
		log:      log,
		now:      time.Now,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, owner models.CartIdentity, info ShippingInfo, method models.PaymentMethod) (*models.Order, error) {
	if owner.IsZero() {
		return nil, ErrUnauthorized
	}

	switch method {
	case "":
		method = models.PaymentMethodCOD
	case models.PaymentMethodStripe, models.PaymentMethodPayPal, models.PaymentMethodCOD:
	default:
		return nil, ErrPaymentMethodInvalid
	}

	if info.Country == "" {
		info.Country = defaultCountry
	}

	var (
		order *models.Order
		now   = s.now()
	)

	// Steps: snapshot -> order -> frozen items + stock decrement -> cart clear.
	// One transaction; a failed decrement rolls back everything, cart included.
	err := s.repo.Orders.WithTx(ctx, func(orders repository.OrderRepo, orderItems repository.OrderItemRepo, products repository.ProductRepo, carts repository.CartItemRepo) error {
		items, err := carts.ListByOwner(ctx, owner)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total int64
		for i := range items {
			if items[i].Product == nil || !items[i].Product.Available {
				return ErrProductUnavailable
			}
			total += items[i].LineTotalCents()
		}

		order = &models.Order{
			OrderNumber:       OrderNumber(),
			FullName:          info.FullName,
			Email:             info.Email,
			Phone:             info.Phone,
			Address:           info.Address,
			City:              info.City,
			PostalCode:        info.PostalCode,
			Country:           info.Country,
			TotalAmountCents:  total,
			ShippingCostCents: ShippingCostCents(total),
			Status:            models.OrderStatusPending,
			PaymentMethod:     method,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if owner.Kind == models.IdentityUser {
			uid := owner.UserID
			order.UserID = &uid
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}

		rows := make([]models.OrderItem, 0, len(items))
		for i := range items {
			it := &items[i]

			ok, err := products.DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}

			pid := it.ProductID
			rows = append(rows, models.OrderItem{
				OrderID:           order.ID,
				ProductID:         &pid,
				ProductName:       it.Product.Name,
				ProductPriceCents: it.Product.PriceCents,
				Quantity:          it.Quantity,
				CreatedAt:         now,
			})
		}
		if err := orderItems.BulkCreate(ctx, rows); err != nil {
			return err
		}

		if _, err := carts.DeleteByOwner(ctx, owner); err != nil {
			return err
		}

		got, err := orders.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		if got != nil {
			order = got
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateCartCount(ctx, owner.CacheKey())
	}

	if method == models.PaymentMethodStripe && s.payments != nil {
		ref, completed, err := s.payments.Charge(ctx, order.OrderNumber, order.GrandTotalCents())
		if err != nil {
			// order stays pending; reconciliation is the caller's concern
			s.log.Warn("payment collection failed",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
		} else {
			if err := s.repo.Orders.SetPaymentResult(ctx, order.ID, completed, &ref); err != nil {
				s.log.Error("failed to record payment result",
					zap.String("order_number", order.OrderNumber), zap.Error(err))
			} else {
				order.PaymentCompleted = completed
				order.PaymentRef = &ref
			}
		}
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				ProductID:  it.ProductID,
				Name:       it.ProductName,
				Quantity:   it.Quantity,
				PriceCents: it.ProductPriceCents,
				LineTotal:  it.LineTotalCents(),
			})
		}
		_ = s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			UserID:        order.UserID,
			Items:         evItems,
			TotalCents:    order.TotalAmountCents,
			ShippingCents: order.ShippingCostCents,
			PaymentMethod: string(order.PaymentMethod),
			CreatedAt:     order.CreatedAt,
		})
	}

	return order, nil
}
