package repository

import (
	"context"
	"time"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status     *model.OrderStatus
	CustomerID string
	From       *time.Time
	To         *time.Time
}

// Transition is a compare-and-set order mutation applied atomically together
// with its side effects (timestamps, payment refs, stock restoration). The
// update matches only when the current status is one of ExpectStatus.
type Transition struct {
	Status         model.OrderStatus
	ExpectStatus   []model.OrderStatus
	PaymentStatus  *model.PaymentStatus
	PaymentRefs    *model.PaymentRefs
	TrackingCode   *string
	// Notes is appended to the order notes, not replaced, so a cancellation
	// reason never erases earlier annotations.
	Notes          *string
	StampPaid      bool
	StampShipped   bool
	StampDelivered bool
	RestoreStock   bool
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order, assigns a sequence-backed number and
	// decrements stock for every line within one transaction. The second
	// result is false when the idempotency key matched an existing order.
	Create(ctx context.Context, order *model.Order) (*model.Order, bool, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByNumber(ctx context.Context, number int64) (*model.Order, error)
	// GetByPaymentID resolves the order holding a gateway payment reference,
	// used by the payment webhook.
	GetByPaymentID(ctx context.Context, paymentID string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	// SelectPendingPayments returns unsettled gateway-backed orders for the
	// reconciliation worker.
	SelectPendingPayments(ctx context.Context, limit int) ([]model.Order, error)
	// ApplyTransition performs the compare-and-set mutation and returns the
	// updated order.
	ApplyTransition(ctx context.Context, orderID string, tr Transition) (*model.Order, error)
}
