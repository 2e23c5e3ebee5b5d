package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
)

// ProductUseCase covers catalog management and stock adjustments.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create validates and persists a new catalog entry.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return u.products.Create(ctx, product)
}

// Update replaces the stored catalog entry.
func (u *ProductUseCase) Update(ctx context.Context, product *model.Product) error {
	if product.ID == "" {
		return domainErrors.ErrNotFound
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Update(ctx, product)
}

func validateProduct(product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" || product.Price < 0 || product.Stock < 0 {
		return domainErrors.ErrInvalidProduct
	}
	return nil
}

// Get fetches a product by identifier.
func (u *ProductUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns catalog entries. With onlyActive set, inactive products are
// excluded as the storefront sees them.
func (u *ProductUseCase) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	return u.products.List(ctx, onlyActive)
}

// ListLowStock returns products at or below their minimum stock threshold.
func (u *ProductUseCase) ListLowStock(ctx context.Context) ([]model.Product, error) {
	return u.products.ListLowStock(ctx)
}

// AdjustStock changes stock by delta. Negative deltas are conditional and
// fail with ErrInsufficientStock instead of going below zero.
func (u *ProductUseCase) AdjustStock(ctx context.Context, productID string, delta int) (*model.Product, error) {
	switch {
	case delta == 0:
		return nil, domainErrors.ErrInvalidQuantity
	case delta > 0:
		if err := u.products.RestoreStock(ctx, productID, delta); err != nil {
			return nil, err
		}
	default:
		if err := u.products.DecrementStock(ctx, productID, -delta); err != nil {
			return nil, err
		}
	}
	return u.products.GetByID(ctx, productID)
}
