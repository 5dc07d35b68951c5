package http

import (
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"
)

// BaseError is the wire error format: Code is machine-oriented snake_case,
// Message is short human-readable text.
type BaseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewValidationError(msg string) BaseError {
	return BaseError{Code: "validation_error", Message: msg}
}
func NewUnauthorizedError(msg string) BaseError {
	return BaseError{Code: "unauthorized", Message: msg}
}
func NewForbiddenError(msg string) BaseError {
	return BaseError{Code: "forbidden", Message: msg}
}
func NewNotFoundError(msg string) BaseError {
	return BaseError{Code: "not_found", Message: msg}
}
func NewConflictError(msg string) BaseError {
	return BaseError{Code: "conflict", Message: msg}
}
func NewInternalError(details string) BaseError {
	return BaseError{Code: "internal_error", Message: "internal server error", Details: details}
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int32  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int32 `json:"quantity"`
}

type CheckoutRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description,omitempty"`
	PriceCents      int64   `json:"price_cents"`
	OldPriceCents   *int64  `json:"old_price_cents,omitempty"`
	DiscountPercent int     `json:"discount_percent,omitempty"`
	Stock           int32   `json:"stock"`
	Available       bool    `json:"available"`
	Featured        bool    `json:"featured"`
	ImageURL        string  `json:"image_url,omitempty"`
	CategoryID      *string `json:"category_id,omitempty"`
}

type CartItemResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"product_id"`
	Quantity       int32            `json:"quantity"`
	LineTotalCents int64            `json:"line_total_cents"`
	Product        *ProductResponse `json:"product,omitempty"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}

type OrderItemResponse struct {
	ProductID         *string `json:"product_id,omitempty"`
	ProductName       string  `json:"product_name"`
	ProductPriceCents int64   `json:"product_price_cents"`
	Quantity          int32   `json:"quantity"`
	LineTotalCents    int64   `json:"line_total_cents"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"order_number"`
	Status            string              `json:"status"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	Address           string              `json:"address"`
	City              string              `json:"city"`
	PostalCode        string              `json:"postal_code"`
	Country           string              `json:"country"`
	PaymentMethod     string              `json:"payment_method"`
	PaymentCompleted  bool                `json:"payment_completed"`
	TotalAmountCents  int64               `json:"total_amount_cents"`
	ShippingCostCents int64               `json:"shipping_cost_cents"`
	GrandTotalCents   int64               `json:"grand_total_cents"`
	Items             []OrderItemResponse `json:"items,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID.String(), Name: c.Name, Slug: c.Slug}
}

func toProductResponse(p *models.Product) ProductResponse {
	out := ProductResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		PriceCents:      p.PriceCents,
		OldPriceCents:   p.OldPriceCents,
		DiscountPercent: p.DiscountPercent(),
		Stock:           p.Stock,
		Available:       p.Available,
		Featured:        p.Featured,
		ImageURL:        p.ImageURL,
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		out.CategoryID = &s
	}
	return out
}

func toCartResponse(snap *service.CartSnapshot) CartResponse {
	items := make([]CartItemResponse, 0, len(snap.Items))
	for i := range snap.Items {
		it := &snap.Items[i]
		row := CartItemResponse{
			ID:             it.ID.String(),
			ProductID:      it.ProductID.String(),
			Quantity:       it.Quantity,
			LineTotalCents: it.LineTotalCents(),
		}
		if it.Product != nil {
			pr := toProductResponse(it.Product)
			row.Product = &pr
		}
		items = append(items, row)
	}
	return CartResponse{Items: items, TotalCents: snap.TotalCents}
}

func toOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		row := OrderItemResponse{
			ProductName:       it.ProductName,
			ProductPriceCents: it.ProductPriceCents,
			Quantity:          it.Quantity,
			LineTotalCents:    it.LineTotalCents(),
		}
		if it.ProductID != nil {
			s := it.ProductID.String()
			row.ProductID = &s
		}
		items = append(items, row)
	}
	return OrderResponse{
		ID:                o.ID.String(),
		OrderNumber:       o.OrderNumber,
		Status:            string(o.Status),
		FullName:          o.FullName,
		Email:             o.Email,
		Phone:             o.Phone,
		Address:           o.Address,
		City:              o.City,
		PostalCode:        o.PostalCode,
		Country:           o.Country,
		PaymentMethod:     string(o.PaymentMethod),
		PaymentCompleted:  o.PaymentCompleted,
		TotalAmountCents:  o.TotalAmountCents,
		ShippingCostCents: o.ShippingCostCents,
		GrandTotalCents:   o.GrandTotalCents(),
		Items:             items,
		CreatedAt:         o.CreatedAt,
	}
}
