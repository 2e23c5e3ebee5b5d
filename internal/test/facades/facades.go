// Package facades holds store-facade stubs for HTTP layer tests. They live
// apart from the repository stubs so the use-case tests can keep importing
// internal/test without pulling the usecase package back in.
package facades

import (
	"context"
	"time"

	"github.com/vitrinepdv/vitrine/internal/adapter/shipping"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.StaffRole) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, model.StaffRole, error)
}

// Register returns a token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string, role model.StaffRole) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role)
	}
	return "token", nil
}

// Authenticate returns a token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored claims for the authenticated staff member.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.StaffRole, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.StaffRoleAdmin, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context, bool) ([]model.Product, error)
	ProductFn       func(context.Context, string) (*model.Product, error)
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, *model.Product) error
	LowStockFn      func(context.Context) ([]model.Product, error)
	AdjustStockFn   func(context.Context, string, int) (*model.Product, error)
}

func (s CatalogFacadeStub) Products(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, onlyActive)
	}
	return []model.Product{{ID: "p1", Name: "Shirt", Price: 100, Active: true}}, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Shirt", Price: 100, Active: true}, nil
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	return product, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return nil
}

func (s CatalogFacadeStub) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) AdjustStock(ctx context.Context, productID string, delta int) (*model.Product, error) {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, productID, delta)
	}
	return &model.Product{ID: productID, Name: "Shirt", Price: 100, Stock: delta, Active: true}, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn     func(context.Context, string) (*model.Cart, error)
	AddFn      func(context.Context, string, string, string, string, int) (*model.Cart, error)
	SetFn      func(context.Context, string, string, string, string, int) (*model.Cart, error)
	RemoveFn   func(context.Context, string, string, string, string) (*model.Cart, error)
	LastCartID string
}

func (s *CartFacadeStub) Cart(ctx context.Context, sessionID string) (*model.Cart, error) {
	s.LastCartID = sessionID
	if s.CartFn != nil {
		return s.CartFn(ctx, sessionID)
	}
	return &model.Cart{ID: sessionID}, nil
}

func (s *CartFacadeStub) AddToCart(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error) {
	s.LastCartID = sessionID
	if s.AddFn != nil {
		return s.AddFn(ctx, sessionID, productID, size, color, quantity)
	}
	return &model.Cart{ID: sessionID, Items: []model.CartItem{{ProductID: productID, Size: size, Color: color, Quantity: quantity}}}, nil
}

func (s *CartFacadeStub) SetCartQuantity(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error) {
	s.LastCartID = sessionID
	if s.SetFn != nil {
		return s.SetFn(ctx, sessionID, productID, size, color, quantity)
	}
	return &model.Cart{ID: sessionID}, nil
}

func (s *CartFacadeStub) RemoveFromCart(ctx context.Context, sessionID, productID, size, color string) (*model.Cart, error) {
	s.LastCartID = sessionID
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, sessionID, productID, size, color)
	}
	return &model.Cart{ID: sessionID}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, string, usecase.CheckoutInput) (*model.Order, bool, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	ByNumberFn     func(context.Context, int64) (*model.Order, error)
	OrdersFn       func(context.Context, repository.OrderFilter) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus, *string) (*model.Order, error)
	CancelFn       func(context.Context, string, string) (*model.Order, error)
	WebhookFn      func(context.Context, string, string) (*model.Order, error)
}

func (s OrderFacadeStub) Checkout(ctx context.Context, sessionID string, in usecase.CheckoutInput) (*model.Order, bool, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, sessionID, in)
	}
	return &model.Order{ID: "o1", Number: 1, Status: model.OrderStatusPending}, true, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Number: 1, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) OrderByNumber(ctx context.Context, number int64) (*model.Order, error) {
	if s.ByNumberFn != nil {
		return s.ByNumberFn(ctx, number)
	}
	return &model.Order{ID: "o1", Number: number, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: "o1", Number: 1, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, trackingCode *string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, trackingCode)
	}
	return &model.Order{ID: orderID, Number: 1, Status: status}, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, reason string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, reason)
	}
	return &model.Order{ID: orderID, Number: 1, Status: model.OrderStatusCancelled}, nil
}

func (s OrderFacadeStub) HandlePaymentEvent(ctx context.Context, paymentID, vendorStatus string) (*model.Order, error) {
	if s.WebhookFn != nil {
		return s.WebhookFn(ctx, paymentID, vendorStatus)
	}
	return &model.Order{ID: "o1", Number: 1, Status: model.OrderStatusPaid}, nil
}

// ShippingFacadeStub quotes static carrier options.
type ShippingFacadeStub struct {
	QuoteFn func(context.Context, string, []shipping.Item) ([]shipping.Quote, error)
}

func (s ShippingFacadeStub) QuoteShipping(ctx context.Context, destinationCEP string, items []shipping.Item) ([]shipping.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, destinationCEP, items)
	}
	return []shipping.Quote{{Carrier: "SEDEX", Cost: 39.90, EstimatedDays: 3}}, nil
}

// ReportFacadeStub serves canned report data.
type ReportFacadeStub struct {
	DashboardFn func(context.Context, *time.Time, *time.Time) (*model.DashboardStats, error)
	ProfitFn    func(context.Context, *time.Time, *time.Time) (*model.ProfitReport, error)
}

func (s ReportFacadeStub) Dashboard(ctx context.Context, from, to *time.Time) (*model.DashboardStats, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, from, to)
	}
	return &model.DashboardStats{TotalOrders: 1, TotalRevenue: 100, AverageTicket: 100}, nil
}

func (s ReportFacadeStub) Profit(ctx context.Context, from, to *time.Time) (*model.ProfitReport, error) {
	if s.ProfitFn != nil {
		return s.ProfitFn(ctx, from, to)
	}
	return &model.ProfitReport{Revenue: 100, Cost: 50, Profit: 50, Margin: 0.5}, nil
}

// StoreFacadeStub aggregates the facade stubs for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	*CartFacadeStub
	OrderFacadeStub
	ShippingFacadeStub
	ReportFacadeStub
}

// NewStoreFacadeStub constructs the aggregate with an initialized cart stub.
func NewStoreFacadeStub() *StoreFacadeStub {
	return &StoreFacadeStub{CartFacadeStub: &CartFacadeStub{}}
}
