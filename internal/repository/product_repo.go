package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceLow  ProductSort = "price_low"
	ProductSortPriceHigh ProductSort = "price_high"
	ProductSortName      ProductSort = "name"
)

type ProductListFilter struct {
	Query         string // name/description substring
	CategorySlug  string
	OnlyAvailable *bool
	OnlyFeatured  *bool
	Sort          ProductSort
	Limit         int
	Offset        int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)

	// DecrementStock: if stock >= qty then stock -= qty (atomic).
	DecrementStock(ctx context.Context, id uuid.UUID, qty int32) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if f.OnlyAvailable != nil {
		q = q.Where("products.available = ?", *f.OnlyAvailable)
	}

	if f.OnlyFeatured != nil {
		q = q.Where("products.featured = ?", *f.OnlyFeatured)
	}

	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}

	if s := strings.TrimSpace(f.Query); s != "" {
		q = q.Where("lower(products.name) LIKE lower(?) OR lower(products.description) LIKE lower(?)",
			"%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case ProductSortPriceLow:
		q = q.Order("products.price_cents ASC")
	case ProductSortPriceHigh:
		q = q.Order("products.price_cents DESC")
	case ProductSortName:
		q = q.Order("products.name ASC")
	default: // newest
		q = q.Order("products.created_at DESC")
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Product
	if err := q.Limit(f.Limit).Offset(f.Offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	var list []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *productRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	// atomic: stock -= qty only when enough is left
	tx := r.db.WithContext(ctx).Exec(`
UPDATE products
SET stock = stock - @q,
    updated_at = now()
WHERE id = @pid
  AND stock >= @q
`, map[string]any{
		"pid": id,
		"q":   qty,
	})
	return tx.RowsAffected > 0, tx.Error
}
