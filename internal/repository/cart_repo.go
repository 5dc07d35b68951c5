package repository

import (
	"context"
	"errors"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItemRepo interface {
	Create(ctx context.Context, item *models.CartItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	GetByOwnerAndProduct(ctx context.Context, owner models.CartIdentity, productID uuid.UUID) (*models.CartItem, error)
	ListByOwner(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error)
	SumQuantityByOwner(ctx context.Context, owner models.CartIdentity) (int64, error)
	AddQuantity(ctx context.Context, id uuid.UUID, delta int32) error
	SetQuantity(ctx context.Context, id uuid.UUID, qty int32) error
	ReassignToUser(ctx context.Context, id, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByOwner(ctx context.Context, owner models.CartIdentity) (int64, error)

	WithTx(ctx context.Context, fn func(tx CartItemRepo) error) error
}

type cartItemRepo struct{ db *gorm.DB }

func NewCartItemRepo(db *gorm.DB) CartItemRepo { return &cartItemRepo{db: db} }

func ownerScope(q *gorm.DB, owner models.CartIdentity) *gorm.DB {
	if owner.Kind == models.IdentityUser {
		return q.Where("user_id = ?", owner.UserID)
	}
	return q.Where("session_token = ?", owner.SessionToken)
}

func (r *cartItemRepo) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *cartItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *cartItemRepo) GetByOwnerAndProduct(ctx context.Context, owner models.CartIdentity, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := ownerScope(r.db.WithContext(ctx), owner).
		Where("product_id = ?", productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *cartItemRepo) ListByOwner(ctx context.Context, owner models.CartIdentity) ([]models.CartItem, error) {
	var list []models.CartItem
	err := ownerScope(r.db.WithContext(ctx), owner).
		Preload("Product").
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *cartItemRepo) SumQuantityByOwner(ctx context.Context, owner models.CartIdentity) (int64, error) {
	var total int64
	err := ownerScope(r.db.WithContext(ctx).Model(&models.CartItem{}), owner).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *cartItemRepo) AddQuantity(ctx context.Context, id uuid.UUID, delta int32) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *cartItemRepo) SetQuantity(ctx context.Context, id uuid.UUID, qty int32) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", qty).Error
}

func (r *cartItemRepo) ReassignToUser(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"user_id":       userID,
			"session_token": nil,
		}).Error
}

func (r *cartItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *cartItemRepo) DeleteByOwner(ctx context.Context, owner models.CartIdentity) (int64, error) {
	tx := ownerScope(r.db.WithContext(ctx), owner).Delete(&models.CartItem{})
	return tx.RowsAffected, tx.Error
}

func (r *cartItemRepo) WithTx(ctx context.Context, fn func(tx CartItemRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&cartItemRepo{db: tx})
	})
}
