package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:text;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"` // SET NULL when the category goes away
	Name          string     `gorm:"type:text;not null"`
	Slug          string     `gorm:"type:text;not null;uniqueIndex"`
	Description   string     `gorm:"type:text"`
	PriceCents    int64      `gorm:"not null;default:0"`
	OldPriceCents *int64
	Stock         int32  `gorm:"type:int;not null;default:0"` // CHECK >= 0 added in migration
	Available     bool   `gorm:"not null;default:true;index"`
	Featured      bool   `gorm:"not null;default:false"`
	ImageURL      string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Product) TableName() string { return "products" }

// DiscountPercent backs the old-price badge on product cards.
func (p *Product) DiscountPercent() int {
	if p.OldPriceCents != nil && *p.OldPriceCents > p.PriceCents {
		return int((*p.OldPriceCents - p.PriceCents) * 100 / *p.OldPriceCents)
	}
	return 0
}

// CartItem is one cart row. Exactly one of UserID/SessionToken is set
// (enforced by a CHECK in the migration); at most one row exists per
// (owner, product) via partial unique indexes.
type CartItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	SessionToken *string    `gorm:"type:text;index"`
	Quantity     int32      `gorm:"type:int;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (CartItem) TableName() string { return "cart_items" }

func (ci *CartItem) LineTotalCents() int64 {
	if ci.Product == nil {
		return 0
	}
	return int64(ci.Quantity) * ci.Product.PriceCents
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"
)

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber string     `gorm:"type:text;not null;uniqueIndex"`

	// Shipping information, frozen at checkout time
	FullName   string `gorm:"type:text;not null"`
	Email      string `gorm:"type:text;not null"`
	Phone      string `gorm:"type:text;not null"`
	Address    string `gorm:"type:text;not null"`
	City       string `gorm:"type:text;not null"`
	PostalCode string `gorm:"type:text;not null"`
	Country    string `gorm:"type:text;not null;default:'Tunisia'"`

	TotalAmountCents  int64 `gorm:"not null;default:0"` // cart total; shipping tracked separately
	ShippingCostCents int64 `gorm:"not null;default:0"`

	Status           OrderStatus   `gorm:"type:text;not null;default:'pending';index"`
	PaymentMethod    PaymentMethod `gorm:"type:text;not null;default:'cod'"`
	PaymentCompleted bool          `gorm:"not null;default:false"`
	PaymentRef       *string       `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) GrandTotalCents() int64 { return o.TotalAmountCents + o.ShippingCostCents }

// OrderItem freezes product name and price at purchase time; ProductID is a
// weak reference and becomes NULL if the product is later deleted.
type OrderItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID         *uuid.UUID `gorm:"type:uuid"`
	ProductName       string     `gorm:"type:text;not null"`
	ProductPriceCents int64      `gorm:"not null"`
	Quantity          int32      `gorm:"type:int;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (OrderItem) TableName() string { return "order_items" }

func (it *OrderItem) LineTotalCents() int64 { return int64(it.Quantity) * it.ProductPriceCents }
