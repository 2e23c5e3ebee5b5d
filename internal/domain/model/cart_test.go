package model

import "testing"

func TestCartAddMergesByVariantKey(t *testing.T) {
	cart := &Cart{ID: "c1"}
	cart.Add(CartItem{ProductID: "p1", Size: "M", Color: "black", Quantity: 1, Price: 50})
	cart.Add(CartItem{ProductID: "p1", Size: "M", Color: "black", Quantity: 2, Price: 50})

	if len(cart.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddKeepsDistinctVariants(t *testing.T) {
	cart := &Cart{ID: "c1"}
	cart.Add(CartItem{ProductID: "p1", Size: "M", Color: "black", Quantity: 1})
	cart.Add(CartItem{ProductID: "p1", Size: "G", Color: "black", Quantity: 1})
	cart.Add(CartItem{ProductID: "p1", Size: "M", Color: "white", Quantity: 1})

	if len(cart.Items) != 3 {
		t.Fatalf("expected three distinct lines, got %d", len(cart.Items))
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := &Cart{ID: "c1"}
	cart.Add(CartItem{ProductID: "p1", Size: "M", Quantity: 1})

	if !cart.SetQuantity("p1", "M", "", 5) {
		t.Fatal("expected line to match")
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}

	if cart.SetQuantity("p2", "M", "", 1) {
		t.Fatal("expected no match for unknown product")
	}

	if !cart.SetQuantity("p1", "M", "", 0) {
		t.Fatal("expected line to match for removal")
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestCartRemove(t *testing.T) {
	cart := &Cart{ID: "c1"}
	cart.Add(CartItem{ProductID: "p1", Quantity: 2})
	cart.Add(CartItem{ProductID: "p2", Quantity: 1})

	if !cart.Remove("p1", "", "") {
		t.Fatal("expected removal to succeed")
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != "p2" {
		t.Fatalf("unexpected cart contents: %+v", cart.Items)
	}
}

func TestCartSubtotal(t *testing.T) {
	promo := 40.0
	cart := &Cart{Items: []CartItem{
		{ProductID: "p1", Price: 50, Quantity: 2},
		{ProductID: "p2", Price: 60, PromoPrice: &promo, Quantity: 1},
	}}
	if got := cart.Subtotal(); got != 140 {
		t.Fatalf("unexpected subtotal: %v", got)
	}
}

func TestProductSnapshot(t *testing.T) {
	promo := 90.0
	product := Product{
		ID:     "p1",
		Name:   "Linen shirt",
		Price:  120,
		Images: []string{"img-1.jpg", "img-2.jpg"},
	}
	product.PromoPrice = &promo

	item := product.Snapshot(2, "M", "white")
	if item.ProductID != "p1" || item.Name != "Linen shirt" || item.Image != "img-1.jpg" {
		t.Fatalf("unexpected snapshot: %+v", item)
	}
	if item.UnitPrice() != 90 {
		t.Fatalf("expected promotional unit price, got %v", item.UnitPrice())
	}
	if item.Quantity != 2 || item.Size != "M" || item.Color != "white" {
		t.Fatalf("unexpected snapshot fields: %+v", item)
	}
}

func TestProductLowStock(t *testing.T) {
	min := 3
	cases := []struct {
		name string
		p    Product
		want bool
	}{
		{"no threshold", Product{Stock: 0}, false},
		{"above threshold", Product{Stock: 5, MinStock: &min}, false},
		{"at threshold", Product{Stock: 3, MinStock: &min}, true},
		{"below threshold", Product{Stock: 1, MinStock: &min}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.LowStock(); got != tc.want {
				t.Fatalf("LowStock() = %v, want %v", got, tc.want)
			}
		})
	}
}
