package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/server/http/dto"
)

// CatalogHandler serves the public catalog and admin product management.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), true)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.FromProduct(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	if !product.Active {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}

// AdminList handles GET /api/admin/products.
func (h *CatalogHandler) AdminList(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), false)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.FromProduct(p))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), req.ToModel(""))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidProduct):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.FromProduct(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateProduct(c.Request.Context(), req.ToModel(c.Param("id"))); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidProduct):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// LowStock handles GET /api/admin/products/low-stock.
func (h *CatalogHandler) LowStock(c *gin.Context) {
	products, err := h.facade.LowStockProducts(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.FromProduct(p))
	}
	c.JSON(http.StatusOK, response)
}

// AdjustStock handles PATCH /api/admin/products/:id/stock.
func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	var req dto.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}
