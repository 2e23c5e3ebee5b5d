package dto

import "github.com/vitrinepdv/vitrine/internal/domain/model"

// CartItemRequest adds or updates one cart line.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartItemResponse is one cart line with its snapshot pricing.
type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CartResponse is the session cart.
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

// FromCart maps the cart onto its response shape.
func FromCart(cart *model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice(),
			Image:     item.Image,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}
	return CartResponse{Items: items, Subtotal: cart.Subtotal()}
}
