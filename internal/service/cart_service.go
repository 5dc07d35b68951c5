package service

import (
	"context"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/cache"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"

	"github.com/google/uuid"
)

type cartService struct {
	repo     *repository.Repository
	cache    *cache.RedisClient // optional
	countTTL time.Duration
	now      func() time.Time
}

func NewCartService(repo *repository.Repository, rdb *cache.RedisClient, countTTL time.Duration) CartService {
	if countTTL <= 0 {
		countTTL = time.Minute
	}
	return &cartService{
		repo:     repo,
		cache:    rdb,
		countTTL: countTTL,
		now:      time.Now,
	}
}

func (s *cartService) invalidateCount(ctx context.Context, owners ...models.CartIdentity) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(owners))
	for _, o := range owners {
		keys = append(keys, o.CacheKey())
	}
	s.cache.InvalidateCartCount(ctx, keys...)
}

func (s *cartService) Add(ctx context.Context, owner models.CartIdentity, productID uuid.UUID, quantity int32) (*models.CartItem, error) {
	if owner.IsZero() {
		return nil, ErrUnauthorized
	}
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	p, err := s.repo.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Available {
		return nil, ErrProductNotFound
	}
	// Fast-fail courtesy check, not a reservation: stock is re-validated at checkout.
	if p.Stock < 1 {
		return nil, ErrOutOfStock
	}

	var item *models.CartItem
	err = s.repo.CartItems.WithTx(ctx, func(tx repository.CartItemRepo) error {
		existing, err := tx.GetByOwnerAndProduct(ctx, owner, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := tx.AddQuantity(ctx, existing.ID, quantity); err != nil {
				return err
			}
			item, err = tx.GetByID(ctx, existing.ID)
			return err
		}

		created := &models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: s.now(),
		}
		owner.Apply(created)
		if err := tx.Create(ctx, created); err != nil {
			return err
		}
		item, err = tx.GetByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(ctx, owner)
	return item, nil
}

func (s *cartService) Update(ctx context.Context, owner models.CartIdentity, itemID uuid.UUID, quantity int32) (*models.CartItem, error) {
	if owner.IsZero() {
		return nil, ErrUnauthorized
	}

	item, err := s.repo.CartItems.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if !owner.Owns(item) {
		return nil, ErrForbidden
	}

	if quantity <= 0 {
		if _, err := s.repo.CartItems.Delete(ctx, item.ID); err != nil {
			return nil, err
		}
		s.invalidateCount(ctx, owner)
		return nil, nil
	}

	if item.Product == nil {
		return nil, ErrProductNotFound
	}
	if quantity > item.Product.Stock {
		// row left unchanged
		return nil, ErrInsufficientStock
	}

	if err := s.repo.CartItems.SetQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}

	s.invalidateCount(ctx, owner)
	return s.repo.CartItems.GetByID(ctx, item.ID)
}

func (s *cartService) Remove(ctx context.Context, owner models.CartIdentity, itemID uuid.UUID) error {
	if owner.IsZero() {
		return ErrUnauthorized
	}

	item, err := s.repo.CartItems.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	if !owner.Owns(item) {
		return ErrForbidden
	}

	if _, err := s.repo.CartItems.Delete(ctx, item.ID); err != nil {
		return err
	}

	s.invalidateCount(ctx, owner)
	return nil
}

func (s *cartService) Snapshot(ctx context.Context, owner models.CartIdentity) (*CartSnapshot, error) {
	if owner.IsZero() {
		return &CartSnapshot{Items: []models.CartItem{}}, nil
	}

	items, err := s.repo.CartItems.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	var total int64
	for i := range items {
		total += items[i].LineTotalCents()
	}

	return &CartSnapshot{Items: items, TotalCents: total}, nil
}

func (s *cartService) Count(ctx context.Context, owner models.CartIdentity) (int64, error) {
	if owner.IsZero() {
		return 0, nil
	}

	if s.cache != nil {
		if n, ok := s.cache.GetCartCount(ctx, owner.CacheKey()); ok {
			return n, nil
		}
	}

	n, err := s.repo.CartItems.SumQuantityByOwner(ctx, owner)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		s.cache.SetCartCount(ctx, owner.CacheKey(), n, s.countTTL)
	}
	return n, nil
}
