package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/test"
)

func TestProductCreateAssignsID(t *testing.T) {
	uc := NewProductUseCase(test.NewProductRepositoryStub())

	product, err := uc.Create(context.Background(), &model.Product{Name: "Shirt", Price: 100, Stock: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestProductCreateValidates(t *testing.T) {
	uc := NewProductUseCase(test.NewProductRepositoryStub())

	cases := []model.Product{
		{Name: "  ", Price: 100},
		{Name: "Shirt", Price: -1},
		{Name: "Shirt", Price: 100, Stock: -1},
	}
	for _, product := range cases {
		if _, err := uc.Create(context.Background(), &product); !errors.Is(err, domainErrors.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct for %+v, got %v", product, err)
		}
	}
}

func TestProductUpdateUnknown(t *testing.T) {
	uc := NewProductUseCase(test.NewProductRepositoryStub())
	err := uc.Update(context.Background(), &model.Product{ID: "ghost", Name: "Shirt", Price: 1})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductAdjustStock(t *testing.T) {
	products := test.NewProductRepositoryStub(&model.Product{ID: "p1", Name: "Shirt", Price: 100, Stock: 5, Active: true})
	uc := NewProductUseCase(products)

	product, err := uc.AdjustStock(context.Background(), "p1", -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Stock != 2 {
		t.Fatalf("expected stock 2, got %d", product.Stock)
	}

	product, err = uc.AdjustStock(context.Background(), "p1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Stock != 12 {
		t.Fatalf("expected stock 12, got %d", product.Stock)
	}
}

func TestProductAdjustStockInsufficient(t *testing.T) {
	products := test.NewProductRepositoryStub(&model.Product{ID: "p1", Name: "Shirt", Price: 100, Stock: 2, Active: true})
	uc := NewProductUseCase(products)

	if _, err := uc.AdjustStock(context.Background(), "p1", -5); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestProductAdjustStockZeroDelta(t *testing.T) {
	uc := NewProductUseCase(test.NewProductRepositoryStub())
	if _, err := uc.AdjustStock(context.Background(), "p1", 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestProductListLowStock(t *testing.T) {
	minStock := 5
	products := test.NewProductRepositoryStub(
		&model.Product{ID: "p1", Name: "Shirt", Price: 100, Stock: 3, MinStock: &minStock, Active: true},
		&model.Product{ID: "p2", Name: "Pants", Price: 150, Stock: 30, MinStock: &minStock, Active: true},
	)
	uc := NewProductUseCase(products)

	low, err := uc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 1 || low[0].ID != "p1" {
		t.Fatalf("expected only p1 below threshold, got %+v", low)
	}
}
