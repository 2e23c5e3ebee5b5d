package repository

import (
	"context"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// ProductRepository describes catalog and stock persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, onlyActive bool) ([]model.Product, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
	// DecrementStock reduces stock by quantity as a single conditional
	// statement and returns ErrInsufficientStock when it would go negative.
	DecrementStock(ctx context.Context, productID string, quantity int) error
	// RestoreStock increases stock unconditionally; compensating action only.
	RestoreStock(ctx context.Context, productID string, quantity int) error
}
