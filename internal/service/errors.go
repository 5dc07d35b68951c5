package service

import "errors"

var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrProductNotFound         = errors.New("product not found")
	ErrProductUnavailable      = errors.New("product unavailable")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOutOfStock              = errors.New("out of stock")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrQuantityInvalid         = errors.New("quantity must be > 0")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrPaymentMethodInvalid    = errors.New("unknown payment method")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrMergeInProgress         = errors.New("cart merge already in progress")
)
