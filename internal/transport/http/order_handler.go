package http

import (
	"net/http"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	f := service.OrderListFilter{
		Limit:  intQuery(c, "limit", 20),
		Offset: intQuery(c, "offset", 0),
	}
	if s := c.Query("status"); s != "" {
		st := models.OrderStatus(s)
		f.Status = &st
	}

	orders, total, err := h.orders.ListOrders(serviceContext(c), f)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, OrderListResponse{Orders: out, Total: total})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id"))
		return
	}
	order, err := h.orders.GetOrder(serviceContext(c), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	order, err := h.orders.GetOrderByNumber(serviceContext(c), c.Param("number"))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id"))
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body"))
		return
	}

	order, err := h.orders.UpdateStatus(serviceContext(c), id, models.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	h.log.Info("order status updated",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", string(order.Status)))
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id"))
		return
	}
	order, err := h.orders.CancelOrder(serviceContext(c), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	h.log.Info("order cancelled", zap.String("order_number", order.OrderNumber))
	c.JSON(http.StatusOK, toOrderResponse(order))
}
