package model

import "time"

// ColorVariant is a named color option for a product.
type ColorVariant struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product is a catalog entry. Stock never goes below zero: decrements are
// conditional at the persistence layer and rejected when insufficient.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CostPrice   *float64
	PromoPrice  *float64
	Images      []string
	CategoryID  string
	Stock       int
	MinStock    *int
	Sizes       []string
	Colors      []ColorVariant
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock reports whether stock fell to or below the minimum threshold.
func (p Product) LowStock() bool {
	return p.MinStock != nil && p.Stock <= *p.MinStock
}

// Snapshot captures the denormalized cart line for this product.
func (p Product) Snapshot(quantity int, size, color string) CartItem {
	item := CartItem{
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PromoPrice: p.PromoPrice,
		Size:       size,
		Color:      color,
		Quantity:   quantity,
	}
	if len(p.Images) > 0 {
		item.Image = p.Images[0]
	}
	return item
}
