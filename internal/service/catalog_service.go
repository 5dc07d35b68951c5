package service

import (
	"context"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"

	"github.com/google/uuid"
)

// CatalogService is the read-only product/category lookup the cart and the
// storefront pages use. Catalog management happens elsewhere.
type CatalogService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	NewestProducts(ctx context.Context, limit int) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	repo *repository.Repository
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Available {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	// the public listing never shows unavailable products
	available := true
	f.OnlyAvailable = &available
	return s.repo.Products.List(ctx, f)
}

func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	available, featured := true, true
	list, _, err := s.repo.Products.List(ctx, repository.ProductListFilter{
		OnlyAvailable: &available,
		OnlyFeatured:  &featured,
		Limit:         limit,
	})
	return list, err
}

func (s *catalogService) NewestProducts(ctx context.Context, limit int) ([]models.Product, error) {
	available := true
	list, _, err := s.repo.Products.List(ctx, repository.ProductListFilter{
		OnlyAvailable: &available,
		Sort:          repository.ProductSortNewest,
		Limit:         limit,
	})
	return list, err
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories.List(ctx)
}
