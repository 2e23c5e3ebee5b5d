package notify

import (
	"context"
	"time"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// OrderEvent is the payload published for every order lifecycle change.
type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	Number        int64     `json:"number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         float64   `json:"total"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TrackingCode  string    `json:"tracking_code,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Dispatcher publishes order lifecycle events. Delivery is best-effort:
// implementations never fail the calling flow.
type Dispatcher interface {
	OrderCreated(ctx context.Context, order *model.Order)
	PaymentConfirmed(ctx context.Context, order *model.Order)
	OrderShipped(ctx context.Context, order *model.Order)
	OrderCancelled(ctx context.Context, order *model.Order)
}

func eventFor(order *model.Order) OrderEvent {
	return OrderEvent{
		OrderID:       order.ID,
		Number:        order.Number,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Total:         order.Total,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		TrackingCode:  order.TrackingCode,
		OccurredAt:    time.Now().UTC(),
	}
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) OrderCreated(context.Context, *model.Order)     {}
func (Nop) PaymentConfirmed(context.Context, *model.Order) {}
func (Nop) OrderShipped(context.Context, *model.Order)     {}
func (Nop) OrderCancelled(context.Context, *model.Order)   {}

var _ Dispatcher = Nop{}
