package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/server/http/dto"
)

// OrderHandler manages checkout, order lookup and lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/checkout. The order lines come from the
// session cart unless the payload carries explicit items (PDV sales).
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	in := req.ToInput()
	for _, item := range req.Items {
		in.Items = append(in.Items, model.CartItem{
			ProductID: item.ProductID,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}

	order, created, err := h.facade.Checkout(c.Request.Context(), SessionID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart), errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
			return
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			c.Status(http.StatusConflict)
			return
		case errors.Is(err, domainErrors.ErrPaymentProvider) && order != nil:
			// Order exists, payment registration pending a retry.
			c.JSON(http.StatusAccepted, dto.FromOrder(order))
			return
		default:
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	if !created {
		c.JSON(http.StatusOK, dto.FromOrder(order))
		return
	}
	c.JSON(http.StatusCreated, dto.FromOrder(order))
}

// Get handles GET /api/orders/:id. A purely numeric reference is treated as
// the sequential order number (the tracking number customers hold), anything
// else as the order id.
func (h *OrderHandler) Get(c *gin.Context) {
	ref := c.Param("id")

	var order *model.Order
	var err error
	if number, numErr := strconv.ParseInt(ref, 10, 64); numErr == nil {
		order, err = h.facade.OrderByNumber(c.Request.Context(), number)
	} else {
		order, err = h.facade.Order(c.Request.Context(), ref)
	}
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// List handles GET /api/admin/orders with optional status and period filters.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := parseOrderFilter(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, dto.FromOrder(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), req.TrackingCode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrIllegalTransition):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// Cancel handles POST /api/admin/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrIllegalTransition):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// Webhook handles POST /api/webhooks/payment. Unknown payments return 200
// so the gateway does not retry notifications for foreign charges.
func (h *OrderHandler) Webhook(c *gin.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Payment.ID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if _, err := h.facade.HandlePaymentEvent(c.Request.Context(), req.Payment.ID, req.Payment.Status); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusOK)
		case errors.Is(err, domainErrors.ErrIllegalTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func parseOrderFilter(c *gin.Context) (repository.OrderFilter, bool) {
	var filter repository.OrderFilter

	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		filter.Status = &status
	}
	filter.CustomerID = c.Query("customer_id")

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, false
		}
		*q.dst = &parsed
	}
	return filter, true
}
