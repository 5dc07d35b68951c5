package repository

import "gorm.io/gorm"

type Repository struct {
	DB         *gorm.DB
	Categories CategoryRepo
	Products   ProductRepo
	CartItems  CartItemRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Categories: NewCategoryRepo(db),
		Products:   NewProductRepo(db),
		CartItems:  NewCartItemRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
