package http

import (
	"net/http"
	"strconv"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, toCategoryResponse(&cats[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	f := repository.ProductListFilter{
		Query:        c.Query("q"),
		CategorySlug: c.Query("category"),
		Limit:        intQuery(c, "limit", 24),
		Offset:       intQuery(c, "offset", 0),
	}
	switch c.Query("sort") {
	case "price_low":
		f.Sort = repository.ProductSortPriceLow
	case "price_high":
		f.Sort = repository.ProductSortPriceHigh
	case "name":
		f.Sort = repository.ProductSortName
	default:
		f.Sort = repository.ProductSortNewest
	}

	products, total, err := h.catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, ProductListResponse{Products: out, Total: total})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid product id"))
		return
	}
	p, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	products, err := h.catalog.FeaturedProducts(c.Request.Context(), intQuery(c, "limit", 8))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) NewestProducts(c *gin.Context) {
	products, err := h.catalog.NewestProducts(c.Request.Context(), intQuery(c, "limit", 8))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
