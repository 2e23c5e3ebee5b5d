package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
)

// CartUseCase manages pre-checkout carts. Every mutation snapshots catalog
// data into the cart line so later price changes do not affect it.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Get returns the cart for a session, empty when none was saved yet.
func (u *CartUseCase) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.Cart{ID: sessionID}, nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem snapshots the product into the cart and merges equal lines.
func (u *CartUseCase) AddItem(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domainErrors.ErrNotFound
	}

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Add(product.Snapshot(quantity, size, color))

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity updates a line quantity; zero removes the line.
func (u *CartUseCase) SetQuantity(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error) {
	if quantity < 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.SetQuantity(productID, size, color, quantity) {
		return nil, domainErrors.ErrNotFound
	}

	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes one line from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, sessionID, productID, size, color string) (*model.Cart, error) {
	return u.SetQuantity(ctx, sessionID, productID, size, color, 0)
}

// Clear drops the cart entirely, called after a successful checkout.
func (u *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	err := u.carts.Delete(ctx, sessionID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil
	}
	return err
}
