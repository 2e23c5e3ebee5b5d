package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/server/http/dto"
)

// CartHandler manages the session cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), SessionID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.FromCart(cart))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.AddToCart(c.Request.Context(), SessionID(c), req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCart(cart))
}

// UpdateItem handles PUT /api/cart/items.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.SetCartQuantity(c.Request.Context(), SessionID(c), req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCart(cart))
}

// RemoveItem handles DELETE /api/cart/items.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.RemoveFromCart(c.Request.Context(), SessionID(c), req.ProductID, req.Size, req.Color)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCart(cart))
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
