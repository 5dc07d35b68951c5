package http

import (
	"net/http"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	log      *zap.Logger
}

func NewCheckoutHandler(checkout service.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, log: log}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body"))
		return
	}

	owner := identityFrom(c)
	info := service.ShippingInfo{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	order, err := h.checkout.Checkout(serviceContext(c), owner, info, models.PaymentMethod(req.PaymentMethod))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	h.log.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Int64("grand_total_cents", order.GrandTotalCents()))
	c.JSON(http.StatusCreated, toOrderResponse(order))
}
