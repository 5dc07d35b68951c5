package http

import (
	"net/http"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	cart service.CartService
	log  *zap.Logger
}

func NewCartHandler(cart service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{cart: cart, log: log}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	snap, err := h.cart.Snapshot(serviceContext(c), identityFrom(c))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(snap))
}

func (h *CartHandler) GetCount(c *gin.Context) {
	count, err := h.cart.Count(serviceContext(c), identityFrom(c))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, CartCountResponse{Count: count})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid add-to-cart request", zap.Error(err))
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body"))
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid product id"))
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	item, err := h.cart.Add(serviceContext(c), identityFrom(c), productID, qty)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, CartItemResponse{
		ID:             item.ID.String(),
		ProductID:      item.ProductID.String(),
		Quantity:       item.Quantity,
		LineTotalCents: item.LineTotalCents(),
	})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid cart item id"))
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid cart update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body"))
		return
	}

	item, err := h.cart.Update(serviceContext(c), identityFrom(c), itemID, req.Quantity)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if item == nil {
		// quantity dropped to zero, the row is gone
		c.JSON(http.StatusOK, SuccessResponse{Message: "item removed"})
		return
	}
	c.JSON(http.StatusOK, CartItemResponse{
		ID:             item.ID.String(),
		ProductID:      item.ProductID.String(),
		Quantity:       item.Quantity,
		LineTotalCents: item.LineTotalCents(),
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid cart item id"))
		return
	}
	if err := h.cart.Remove(serviceContext(c), identityFrom(c), itemID); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "item removed"})
}
