package dto

import (
	"time"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// ProductRequest is the admin payload for creating or updating a product.
type ProductRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	CostPrice   *float64             `json:"cost_price,omitempty"`
	PromoPrice  *float64             `json:"promo_price,omitempty"`
	Images      []string             `json:"images"`
	CategoryID  string               `json:"category_id"`
	Stock       int                  `json:"stock"`
	MinStock    *int                 `json:"min_stock,omitempty"`
	Sizes       []string             `json:"sizes"`
	Colors      []model.ColorVariant `json:"colors"`
	Active      *bool                `json:"active,omitempty"`
}

// ToModel converts the request into a catalog entry with the given id.
func (r ProductRequest) ToModel(id string) *model.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &model.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CostPrice:   r.CostPrice,
		PromoPrice:  r.PromoPrice,
		Images:      r.Images,
		CategoryID:  r.CategoryID,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Active:      active,
	}
}

// ProductResponse is the catalog entry as exposed over HTTP.
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Price       float64              `json:"price"`
	PromoPrice  *float64             `json:"promo_price,omitempty"`
	Images      []string             `json:"images,omitempty"`
	CategoryID  string               `json:"category_id,omitempty"`
	Stock       int                  `json:"stock"`
	MinStock    *int                 `json:"min_stock,omitempty"`
	Sizes       []string             `json:"sizes,omitempty"`
	Colors      []model.ColorVariant `json:"colors,omitempty"`
	Active      bool                 `json:"active"`
	LowStock    bool                 `json:"low_stock"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// FromProduct maps a catalog entry onto its response shape.
func FromProduct(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PromoPrice:  p.PromoPrice,
		Images:      p.Images,
		CategoryID:  p.CategoryID,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Active:      p.Active,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// StockAdjustRequest changes product stock by a signed delta.
type StockAdjustRequest struct {
	Delta int `json:"delta"`
}
