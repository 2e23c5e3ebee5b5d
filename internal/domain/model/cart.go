package model

import "time"

// CartItem is one product+variant+quantity entry. Name, prices and image are
// denormalized from the catalog when the item is added.
type CartItem struct {
	ProductID  string
	Name       string
	Price      float64
	PromoPrice *float64
	Image      string
	Size       string
	Color      string
	Quantity   int
}

// UnitPrice returns the promotional price when set, the regular price otherwise.
func (i CartItem) UnitPrice() float64 {
	if i.PromoPrice != nil {
		return *i.PromoPrice
	}
	return i.Price
}

// SameLine reports whether two entries share the (product, size, color) key.
func (i CartItem) SameLine(other CartItem) bool {
	return i.ProductID == other.ProductID && i.Size == other.Size && i.Color == other.Color
}

// Cart accumulates line items prior to order creation.
type Cart struct {
	ID        string
	Items     []CartItem
	UpdatedAt time.Time
}

// Add merges the item into an existing line with the same key or appends it.
func (c *Cart) Add(item CartItem) {
	for idx := range c.Items {
		if c.Items[idx].SameLine(item) {
			c.Items[idx].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity updates the quantity of a matching line. It reports whether
// a line matched; quantity zero removes the line.
func (c *Cart) SetQuantity(productID, size, color string, quantity int) bool {
	key := CartItem{ProductID: productID, Size: size, Color: color}
	for idx := range c.Items {
		if c.Items[idx].SameLine(key) {
			if quantity <= 0 {
				c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			} else {
				c.Items[idx].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// Remove deletes a matching line and reports whether one matched.
func (c *Cart) Remove(productID, size, color string) bool {
	return c.SetQuantity(productID, size, color, 0)
}

// Subtotal sums all lines at their snapshot prices.
func (c *Cart) Subtotal() float64 {
	return Subtotal(c.Items)
}
