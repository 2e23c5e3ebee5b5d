package handlers

import (
	"context"
	"time"

	"github.com/vitrinepdv/vitrine/internal/adapter/shipping"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.StaffRole) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, model.StaffRole, error)
}

// CatalogFacade covers product listing and admin catalog management.
type CatalogFacade interface {
	Products(ctx context.Context, onlyActive bool) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	LowStockProducts(ctx context.Context) ([]model.Product, error)
	AdjustStock(ctx context.Context, productID string, delta int) (*model.Product, error)
}

// CartFacade covers session cart manipulation.
type CartFacade interface {
	Cart(ctx context.Context, sessionID string) (*model.Cart, error)
	AddToCart(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error)
	SetCartQuantity(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error)
	RemoveFromCart(ctx context.Context, sessionID, productID, size, color string) (*model.Cart, error)
}

// OrderFacade covers checkout, order lookup and lifecycle management.
type OrderFacade interface {
	Checkout(ctx context.Context, sessionID string, in usecase.CheckoutInput) (*model.Order, bool, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	OrderByNumber(ctx context.Context, number int64) (*model.Order, error)
	Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, trackingCode *string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (*model.Order, error)
	HandlePaymentEvent(ctx context.Context, paymentID, vendorStatus string) (*model.Order, error)
}

// ShippingFacade quotes carrier options for a destination.
type ShippingFacade interface {
	QuoteShipping(ctx context.Context, destinationCEP string, items []shipping.Item) ([]shipping.Quote, error)
}

// ReportFacade aggregates order history for the admin dashboards.
type ReportFacade interface {
	Dashboard(ctx context.Context, from, to *time.Time) (*model.DashboardStats, error)
	Profit(ctx context.Context, from, to *time.Time) (*model.ProfitReport, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	ShippingFacade
	ReportFacade
}
