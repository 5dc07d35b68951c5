package service_test

import (
	"context"
	"testing"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/google/uuid"
)

// in-memory cart store for merge scenarios
type cartStore struct {
	rows map[uuid.UUID]*models.CartItem
}

func newCartStore() *cartStore {
	return &cartStore{rows: map[uuid.UUID]*models.CartItem{}}
}

func (s *cartStore) put(owner models.CartIdentity, productID uuid.UUID, qty int32) uuid.UUID {
	row := &models.CartItem{ID: uuid.New(), ProductID: productID, Quantity: qty}
	owner.Apply(row)
	s.rows[row.ID] = row
	return row.ID
}

func (s *cartStore) mock() *MockCartItemRepo {
	return &MockCartItemRepo{
		ListByOwnerFunc: func(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error) {
			var out []models.CartItem
			for _, r := range s.rows {
				if owner.Owns(r) {
					out = append(out, *r)
				}
			}
			return out, nil
		},
		GetByOwnerAndProductFunc: func(ctx context.Context, owner models.CartIdentity, productID uuid.UUID) (*models.CartItem, error) {
			for _, r := range s.rows {
				if owner.Owns(r) && r.ProductID == productID {
					return r, nil
				}
			}
			return nil, nil
		},
		AddQuantityFunc: func(ctx context.Context, id uuid.UUID, delta int32) error {
			s.rows[id].Quantity += delta
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
			_, ok := s.rows[id]
			delete(s.rows, id)
			return ok, nil
		},
		ReassignToUserFunc: func(ctx context.Context, id, userID uuid.UUID) error {
			uid := userID
			s.rows[id].UserID = &uid
			s.rows[id].SessionToken = nil
			return nil
		},
	}
}

func TestIdentityService_MergeOnLogin(t *testing.T) {
	store := newCartStore()
	userID := uuid.New()
	sess := models.SessionIdentity("sess-merge")
	user := models.UserIdentity(userID)

	productA, productB := uuid.New(), uuid.New()

	// session cart: {A:2, B:1}; user cart: {A:1}
	store.put(sess, productA, 2)
	store.put(sess, productB, 1)
	userRowA := store.put(user, productA, 1)

	repo := &repository.Repository{CartItems: store.mock()}
	svc := service.NewIdentityService(repo, nil)

	if err := svc.MergeOnLogin(context.Background(), "sess-merge", userID); err != nil {
		t.Fatalf("MergeOnLogin: %v", err)
	}

	// expect user cart {A:3, B:1}, session cart empty
	if got := store.rows[userRowA].Quantity; got != 3 {
		t.Fatalf("product A quantity expected 3 got %d", got)
	}
	var userRows, sessRows int
	for _, r := range store.rows {
		if user.Owns(r) {
			userRows++
		}
		if sess.Owns(r) {
			sessRows++
		}
	}
	if userRows != 2 {
		t.Fatalf("expected 2 user rows got %d", userRows)
	}
	if sessRows != 0 {
		t.Fatalf("expected empty session cart got %d rows", sessRows)
	}

	// second merge is a no-op
	if err := svc.MergeOnLogin(context.Background(), "sess-merge", userID); err != nil {
		t.Fatalf("repeat MergeOnLogin: %v", err)
	}
	if got := store.rows[userRowA].Quantity; got != 3 {
		t.Fatalf("repeat merge changed quantity: %d", got)
	}
}

func TestIdentityService_MergeEmptyTokenNoop(t *testing.T) {
	carts := &MockCartItemRepo{
		ListByOwnerFunc: func(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error) {
			t.Fatal("must not touch storage for an empty token")
			return nil, nil
		},
	}
	svc := service.NewIdentityService(&repository.Repository{CartItems: carts}, nil)

	if err := svc.MergeOnLogin(context.Background(), "", uuid.New()); err != nil {
		t.Fatalf("MergeOnLogin: %v", err)
	}
}

func TestIdentityService_NewSessionToken(t *testing.T) {
	svc := service.NewIdentityService(&repository.Repository{}, nil)

	a, b := svc.NewSessionToken(), svc.NewSessionToken()
	if a == "" || b == "" || a == b {
		t.Fatalf("tokens must be unique and non-empty: %q %q", a, b)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("token shape: %v", err)
	}
}
