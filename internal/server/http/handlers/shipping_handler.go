package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrinepdv/vitrine/internal/server/http/dto"
)

// ShippingHandler quotes carrier options for the checkout page.
type ShippingHandler struct {
	facade ShippingFacade
}

// NewShippingHandler constructs ShippingHandler.
func NewShippingHandler(facade ShippingFacade) *ShippingHandler {
	return &ShippingHandler{facade: facade}
}

// Quote handles POST /api/shipping/quote.
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req dto.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DestinationCEP == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	quotes, err := h.facade.QuoteShipping(c.Request.Context(), req.DestinationCEP, req.Items)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ShippingQuoteResponse{Quotes: quotes})
}
