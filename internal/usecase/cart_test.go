package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/test"
)

func newCartUseCase(products ...*model.Product) (*CartUseCase, *test.CartRepositoryStub) {
	carts := test.NewCartRepositoryStub()
	return NewCartUseCase(carts, test.NewProductRepositoryStub(products...)), carts
}

func activeProduct() *model.Product {
	promo := 80.0
	return &model.Product{
		ID:         "p1",
		Name:       "Shirt",
		Price:      100,
		PromoPrice: &promo,
		Images:     []string{"shirt.jpg"},
		Stock:      10,
		Active:     true,
	}
}

func TestCartGetEmpty(t *testing.T) {
	uc, _ := newCartUseCase()
	cart, err := uc.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ID != "s1" || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart for new session, got %+v", cart)
	}
}

func TestCartAddItemSnapshotsCatalogData(t *testing.T) {
	uc, carts := newCartUseCase(activeProduct())

	cart, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Items))
	}
	line := cart.Items[0]
	if line.Name != "Shirt" || line.Price != 100 || line.Image != "shirt.jpg" {
		t.Fatalf("expected catalog snapshot, got %+v", line)
	}
	if line.UnitPrice() != 80 {
		t.Fatalf("expected promo price, got %f", line.UnitPrice())
	}
	if _, ok := carts.Carts["s1"]; !ok {
		t.Fatal("expected cart persisted")
	}
}

func TestCartAddItemMergesSameVariant(t *testing.T) {
	uc, _ := newCartUseCase(activeProduct())

	if _, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected merged line with quantity 3, got %+v", cart.Items)
	}
}

func TestCartAddItemInvalidQuantity(t *testing.T) {
	uc, _ := newCartUseCase(activeProduct())
	if _, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCartAddItemInactiveProduct(t *testing.T) {
	product := activeProduct()
	product.Active = false
	uc, _ := newCartUseCase(product)
	if _, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartSetQuantity(t *testing.T) {
	uc, _ := newCartUseCase(activeProduct())
	if _, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := uc.SetQuantity(context.Background(), "s1", "p1", "M", "blue", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestCartSetQuantityUnknownLine(t *testing.T) {
	uc, _ := newCartUseCase(activeProduct())
	if _, err := uc.SetQuantity(context.Background(), "s1", "p1", "M", "blue", 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartRemoveItem(t *testing.T) {
	uc, _ := newCartUseCase(activeProduct())
	if _, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := uc.RemoveItem(context.Background(), "s1", "p1", "M", "blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestCartClear(t *testing.T) {
	uc, carts := newCartUseCase(activeProduct())
	if _, err := uc.AddItem(context.Background(), "s1", "p1", "M", "blue", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Clear(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := carts.Carts["s1"]; ok {
		t.Fatal("expected cart deleted")
	}

	// clearing an already-empty session is not an error
	if err := uc.Clear(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
