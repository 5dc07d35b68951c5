package service

import (
	"context"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/cache"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"

	"github.com/google/uuid"
)

const mergeLockTTL = 10 * time.Second

type IdentityService interface {
	// NewSessionToken allocates a fresh unguessable anonymous cart token.
	NewSessionToken() string
	// MergeOnLogin folds the anonymous cart into the user cart. Quantities
	// accumulate when both carts hold the same product; remaining rows are
	// reassigned. Idempotent once no session rows remain.
	MergeOnLogin(ctx context.Context, sessionToken string, userID uuid.UUID) error
}

type identityService struct {
	repo  *repository.Repository
	cache *cache.RedisClient // optional; serializes merges per session token
}

func NewIdentityService(repo *repository.Repository, rdb *cache.RedisClient) IdentityService {
	return &identityService{repo: repo, cache: rdb}
}

func (s *identityService) NewSessionToken() string {
	return uuid.NewString()
}

func (s *identityService) MergeOnLogin(ctx context.Context, sessionToken string, userID uuid.UUID) error {
	if sessionToken == "" {
		return nil
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireMergeLock(ctx, sessionToken, mergeLockTTL)
		if err == nil && !ok {
			// a concurrent duplicate login submission is already merging this token
			return ErrMergeInProgress
		}
		if err == nil {
			defer s.cache.ReleaseMergeLock(ctx, sessionToken)
		}
	}

	sess := models.SessionIdentity(sessionToken)
	user := models.UserIdentity(userID)

	err := s.repo.CartItems.WithTx(ctx, func(tx repository.CartItemRepo) error {
		items, err := tx.ListByOwner(ctx, sess)
		if err != nil {
			return err
		}

		for i := range items {
			it := &items[i]

			existing, err := tx.GetByOwnerAndProduct(ctx, user, it.ProductID)
			if err != nil {
				return err
			}
			if existing != nil {
				// same product in both carts: quantities add up, session row goes away
				if err := tx.AddQuantity(ctx, existing.ID, it.Quantity); err != nil {
					return err
				}
				if _, err := tx.Delete(ctx, it.ID); err != nil {
					return err
				}
				continue
			}

			if err := tx.ReassignToUser(ctx, it.ID, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.InvalidateCartCount(ctx, sess.CacheKey(), user.CacheKey())
	}
	return nil
}
