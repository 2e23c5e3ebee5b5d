package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/notify"
)

// PaymentGateway is the slice of the gateway client the order lifecycle needs.
type PaymentGateway interface {
	CreateCharge(ctx context.Context, order *model.Order, card *model.CardDetails) (*model.PaymentRefs, error)
	Cancel(ctx context.Context, paymentID string) error
	Refund(ctx context.Context, paymentID string) error
}

// CheckoutInput carries everything needed to turn cart lines into an order.
type CheckoutInput struct {
	IdempotencyKey string
	Customer       model.Customer
	Items          []model.CartItem
	PaymentMethod  model.PaymentMethod
	Card           *model.CardDetails
	Shipping       model.ShippingMethod
	Address        model.Address
	Discount       float64
	Notes          string
}

// OrderUseCase drives the order lifecycle: creation with stock reservation,
// payment settlement and the compensating stock restore on cancellation.
type OrderUseCase struct {
	orders     repository.OrderRepository
	gateway    PaymentGateway
	dispatcher notify.Dispatcher
	logger     *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, gateway PaymentGateway, dispatcher notify.Dispatcher, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, gateway: gateway, dispatcher: dispatcher, logger: logger}
}

// Checkout creates an order from the given lines, decrementing stock and
// registering the gateway charge. The second result is false when the
// idempotency key matched a previously created order. A gateway failure
// leaves the order PENDING and is reported alongside it so the caller can
// retry the charge without duplicating the order.
func (u *OrderUseCase) Checkout(ctx context.Context, in CheckoutInput) (*model.Order, bool, error) {
	if len(in.Items) == 0 {
		return nil, false, domainErrors.ErrEmptyCart
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, false, domainErrors.ErrInvalidQuantity
		}
	}

	subtotal := model.Subtotal(in.Items)
	order := &model.Order{
		ID:             uuid.NewString(),
		IdempotencyKey: in.IdempotencyKey,
		Customer:       in.Customer,
		Items:          in.Items,
		Subtotal:       subtotal,
		ShippingCost:   in.Shipping.Cost,
		Discount:       in.Discount,
		Total:          model.Total(subtotal, in.Shipping.Cost, in.Discount),
		Status:         model.OrderStatusPending,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  model.PaymentStatusPending,
		Shipping:       in.Shipping,
		Address:        in.Address,
		Notes:          in.Notes,
	}

	order, created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return order, false, nil
	}

	u.dispatcher.OrderCreated(ctx, order)

	if in.PaymentMethod == model.PaymentMethodCash {
		return u.confirmCashSale(ctx, order)
	}

	refs, err := u.gateway.CreateCharge(ctx, order, in.Card)
	if err != nil {
		u.logger.Error("create charge", "order_id", order.ID, "error", err)
		return order, true, fmt.Errorf("charge order %d: %w", order.Number, err)
	}

	order, err = u.orders.ApplyTransition(ctx, order.ID, repository.Transition{
		Status:       model.OrderStatusPending,
		ExpectStatus: []model.OrderStatus{model.OrderStatusPending},
		PaymentRefs:  refs,
	})
	if err != nil {
		return nil, false, err
	}
	return order, true, nil
}

// confirmCashSale settles a PDV cash sale immediately after creation.
func (u *OrderUseCase) confirmCashSale(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	received := model.PaymentStatusReceived
	order, err := u.orders.ApplyTransition(ctx, order.ID, repository.Transition{
		Status:        model.OrderStatusPaid,
		ExpectStatus:  []model.OrderStatus{model.OrderStatusPending},
		PaymentStatus: &received,
		StampPaid:     true,
	})
	if err != nil {
		return nil, false, err
	}
	u.dispatcher.PaymentConfirmed(ctx, order)
	return order, true, nil
}

// Get fetches an order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// GetByNumber fetches an order by its sequential number.
func (u *OrderUseCase) GetByNumber(ctx context.Context, number int64) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, number)
}

// GetByPaymentID fetches the order holding a gateway payment reference.
func (u *OrderUseCase) GetByPaymentID(ctx context.Context, paymentID string) (*model.Order, error) {
	return u.orders.GetByPaymentID(ctx, paymentID)
}

// List returns orders matching the filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// SelectPendingPayments returns unsettled gateway-backed orders for polling.
func (u *OrderUseCase) SelectPendingPayments(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectPendingPayments(ctx, limit)
}

// transitionSources returns every status the target may legally be reached
// from, so ApplyTransition can enforce the table in one conditional update.
func transitionSources(target model.OrderStatus) []model.OrderStatus {
	all := []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusPaid,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
	}
	var sources []model.OrderStatus
	for _, from := range all {
		if model.CanTransition(from, target) {
			sources = append(sources, from)
		}
	}
	return sources
}

// UpdateStatus moves the order to the target status, stamping timestamps and
// restoring stock where the transition requires it. Illegal transitions
// surface as ErrIllegalTransition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, target model.OrderStatus, trackingCode *string) (*model.Order, error) {
	tr := repository.Transition{
		Status:       target,
		ExpectStatus: transitionSources(target),
		TrackingCode: trackingCode,
	}

	switch target {
	case model.OrderStatusPaid:
		received := model.PaymentStatusReceived
		tr.PaymentStatus = &received
		tr.StampPaid = true
	case model.OrderStatusShipped:
		tr.StampShipped = true
	case model.OrderStatusDelivered:
		tr.StampDelivered = true
	case model.OrderStatusCancelled:
		cancelled := model.PaymentStatusCancelled
		tr.PaymentStatus = &cancelled
		tr.RestoreStock = true
	case model.OrderStatusRefunded:
		refunded := model.PaymentStatusRefunded
		tr.PaymentStatus = &refunded
		tr.RestoreStock = true
	default:
		return nil, domainErrors.ErrIllegalTransition
	}

	order, err := u.orders.ApplyTransition(ctx, orderID, tr)
	if err != nil {
		return nil, err
	}

	switch target {
	case model.OrderStatusPaid:
		u.dispatcher.PaymentConfirmed(ctx, order)
	case model.OrderStatusShipped:
		u.dispatcher.OrderShipped(ctx, order)
	case model.OrderStatusCancelled:
		u.releaseCharge(ctx, order, false)
		u.dispatcher.OrderCancelled(ctx, order)
	case model.OrderStatusRefunded:
		u.releaseCharge(ctx, order, true)
	}
	return order, nil
}

// Cancel voids an order, restores its stock and releases the gateway charge.
// The optional reason is appended to the order notes.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, reason string) (*model.Order, error) {
	cancelled := model.PaymentStatusCancelled
	tr := repository.Transition{
		Status:        model.OrderStatusCancelled,
		ExpectStatus:  transitionSources(model.OrderStatusCancelled),
		PaymentStatus: &cancelled,
		RestoreStock:  true,
	}
	if reason != "" {
		tr.Notes = &reason
	}

	order, err := u.orders.ApplyTransition(ctx, orderID, tr)
	if err != nil {
		return nil, err
	}

	u.releaseCharge(ctx, order, order.PaidAt != nil)
	u.dispatcher.OrderCancelled(ctx, order)
	return order, nil
}

// releaseCharge voids or refunds the gateway charge backing the order.
// Failures are logged only; the local state change already happened and the
// reconciliation worker will not resurrect a cancelled order.
func (u *OrderUseCase) releaseCharge(ctx context.Context, order *model.Order, settled bool) {
	if order.Payment.PaymentID == "" || order.PaymentMethod == model.PaymentMethodCash {
		return
	}
	var err error
	if settled {
		err = u.gateway.Refund(ctx, order.Payment.PaymentID)
	} else {
		err = u.gateway.Cancel(ctx, order.Payment.PaymentID)
	}
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		u.logger.Error("release gateway charge", "order_id", order.ID, "payment_id", order.Payment.PaymentID, "error", err)
	}
}

// ApplyPaymentStatus reconciles a gateway payment status onto the order.
// Settled payments move PENDING orders to PAID; cancellations and refunds
// restore stock. Replays of an already-applied status are no-ops.
func (u *OrderUseCase) ApplyPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) (*model.Order, error) {
	target, ok := model.OrderStatusForPayment(status)
	if !ok {
		// Still unsettled on the gateway side, record the status only. A
		// stale notification for an already-progressed order is dropped.
		order, err := u.orders.ApplyTransition(ctx, orderID, repository.Transition{
			Status:        model.OrderStatusPending,
			ExpectStatus:  []model.OrderStatus{model.OrderStatusPending},
			PaymentStatus: &status,
		})
		if errors.Is(err, domainErrors.ErrIllegalTransition) {
			return u.orders.GetByID(ctx, orderID)
		}
		return order, err
	}

	tr := repository.Transition{
		Status:        target,
		ExpectStatus:  transitionSources(target),
		PaymentStatus: &status,
	}
	switch target {
	case model.OrderStatusPaid:
		tr.StampPaid = true
	case model.OrderStatusCancelled, model.OrderStatusRefunded:
		tr.RestoreStock = true
	}

	order, err := u.orders.ApplyTransition(ctx, orderID, tr)
	if err != nil {
		if errors.Is(err, domainErrors.ErrIllegalTransition) {
			return u.resolveReplay(ctx, orderID, target)
		}
		return nil, err
	}

	switch target {
	case model.OrderStatusPaid:
		u.dispatcher.PaymentConfirmed(ctx, order)
	case model.OrderStatusCancelled:
		u.dispatcher.OrderCancelled(ctx, order)
	}
	return order, nil
}

// resolveReplay treats a duplicate settlement notification as success when
// the order already reached (or passed) the target status.
func (u *OrderUseCase) resolveReplay(ctx context.Context, orderID string, target model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == target {
		return order, nil
	}
	if target == model.OrderStatusPaid {
		switch order.Status {
		case model.OrderStatusShipped, model.OrderStatusDelivered:
			return order, nil
		}
	}
	return nil, domainErrors.ErrIllegalTransition
}
