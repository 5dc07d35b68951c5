package http

import (
	"errors"
	"net/http"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps service sentinels to HTTP responses. Unknown errors
// become 500 and get logged; sentinel cases are the client's fault and are not.
func writeServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, NewUnauthorizedError("authentication required"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, NewForbiddenError("access denied"))
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, NewNotFoundError("product not found"))
	case errors.Is(err, service.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, NewNotFoundError("cart item not found"))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, NewNotFoundError("order not found"))
	case errors.Is(err, service.ErrQuantityInvalid):
		c.JSON(http.StatusBadRequest, NewValidationError("quantity must be positive"))
	case errors.Is(err, service.ErrPaymentMethodInvalid):
		c.JSON(http.StatusBadRequest, NewValidationError("unknown payment method"))
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusConflict, NewConflictError("cart is empty"))
	case errors.Is(err, service.ErrOutOfStock):
		c.JSON(http.StatusConflict, NewConflictError("product is out of stock"))
	case errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusConflict, NewConflictError("insufficient stock"))
	case errors.Is(err, service.ErrProductUnavailable):
		c.JSON(http.StatusConflict, NewConflictError("product is no longer available"))
	case errors.Is(err, service.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, NewConflictError("invalid status transition"))
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, NewInternalError(""))
	}
}
