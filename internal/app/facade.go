package app

import (
	"context"
	"time"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	"github.com/vitrinepdv/vitrine/internal/adapter/shipping"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/usecase"
)

// StatusProvider fetches payment settlement state from the gateway.
type StatusProvider interface {
	Status(ctx context.Context, paymentID string) (*payment.StatusResult, error)
}

// StoreFacade aggregates the storefront use cases behind one surface shared
// by the HTTP handlers and the reconciliation worker.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	carts    *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	products *usecase.ProductUseCase
	reports  *usecase.ReportUseCase
	statuses StatusProvider
	quoter   shipping.Quoter
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	products *usecase.ProductUseCase,
	reports *usecase.ReportUseCase,
	statuses StatusProvider,
	quoter shipping.Quoter,
) *StoreFacade {
	return &StoreFacade{
		auth:     auth,
		carts:    carts,
		orders:   orders,
		products: products,
		reports:  reports,
		statuses: statuses,
		quoter:   quoter,
	}
}

func (f *StoreFacade) Register(ctx context.Context, login, password string, role model.StaffRole) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (int64, model.StaffRole, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Products(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	return f.products.List(ctx, onlyActive)
}

func (f *StoreFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product *model.Product) error {
	return f.products.Update(ctx, product)
}

func (f *StoreFacade) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	return f.products.ListLowStock(ctx)
}

func (f *StoreFacade) AdjustStock(ctx context.Context, productID string, delta int) (*model.Product, error) {
	return f.products.AdjustStock(ctx, productID, delta)
}

func (f *StoreFacade) Cart(ctx context.Context, sessionID string) (*model.Cart, error) {
	return f.carts.Get(ctx, sessionID)
}

func (f *StoreFacade) AddToCart(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error) {
	return f.carts.AddItem(ctx, sessionID, productID, size, color, quantity)
}

func (f *StoreFacade) SetCartQuantity(ctx context.Context, sessionID, productID, size, color string, quantity int) (*model.Cart, error) {
	return f.carts.SetQuantity(ctx, sessionID, productID, size, color, quantity)
}

func (f *StoreFacade) RemoveFromCart(ctx context.Context, sessionID, productID, size, color string) (*model.Cart, error) {
	return f.carts.RemoveItem(ctx, sessionID, productID, size, color)
}

func (f *StoreFacade) QuoteShipping(ctx context.Context, destinationCEP string, items []shipping.Item) ([]shipping.Quote, error) {
	return f.quoter.Quote(ctx, destinationCEP, items)
}

// Checkout turns the session cart (or the explicit PDV lines in the input)
// into an order. Explicit lines are re-snapshotted from the catalog so the
// order never trusts client-side pricing. On success the session cart is
// dropped.
func (f *StoreFacade) Checkout(ctx context.Context, sessionID string, in usecase.CheckoutInput) (*model.Order, bool, error) {
	fromCart := len(in.Items) == 0 && sessionID != ""
	if fromCart {
		cart, err := f.carts.Get(ctx, sessionID)
		if err != nil {
			return nil, false, err
		}
		in.Items = cart.Items
	} else {
		snapshotted := make([]model.CartItem, 0, len(in.Items))
		for _, item := range in.Items {
			product, err := f.products.Get(ctx, item.ProductID)
			if err != nil {
				return nil, false, err
			}
			snapshotted = append(snapshotted, product.Snapshot(item.Quantity, item.Size, item.Color))
		}
		in.Items = snapshotted
	}

	order, created, err := f.orders.Checkout(ctx, in)
	if err != nil && order == nil {
		return nil, false, err
	}

	if created && fromCart {
		_ = f.carts.Clear(ctx, sessionID)
	}
	return order, created, err
}

func (f *StoreFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StoreFacade) OrderByNumber(ctx context.Context, number int64) (*model.Order, error) {
	return f.orders.GetByNumber(ctx, number)
}

func (f *StoreFacade) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, trackingCode *string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status, trackingCode)
}

func (f *StoreFacade) CancelOrder(ctx context.Context, orderID, reason string) (*model.Order, error) {
	return f.orders.Cancel(ctx, orderID, reason)
}

// HandlePaymentEvent applies a gateway webhook notification. The vendor
// status string is mapped onto the internal payment status first.
func (f *StoreFacade) HandlePaymentEvent(ctx context.Context, paymentID, vendorStatus string) (*model.Order, error) {
	order, err := f.orders.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return f.orders.ApplyPaymentStatus(ctx, order.ID, payment.MapStatus(vendorStatus))
}

func (f *StoreFacade) PendingPayments(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectPendingPayments(ctx, limit)
}

func (f *StoreFacade) PaymentStatus(ctx context.Context, paymentID string) (*payment.StatusResult, error) {
	return f.statuses.Status(ctx, paymentID)
}

func (f *StoreFacade) ApplyPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) (*model.Order, error) {
	return f.orders.ApplyPaymentStatus(ctx, orderID, status)
}

func (f *StoreFacade) Dashboard(ctx context.Context, from, to *time.Time) (*model.DashboardStats, error) {
	return f.reports.Dashboard(ctx, from, to)
}

func (f *StoreFacade) Profit(ctx context.Context, from, to *time.Time) (*model.ProfitReport, error) {
	return f.reports.Profit(ctx, from, to)
}
