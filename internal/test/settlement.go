package test

import (
	"context"
	"sync"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// SettlementCall records one ApplyPaymentStatus invocation.
type SettlementCall struct {
	OrderID string
	Status  model.PaymentStatus
}

// SettlementFacadeStub mimics worker interactions with the store facade.
type SettlementFacadeStub struct {
	sync.Mutex

	Batches   [][]model.Order
	PendingFn func(context.Context, int) ([]model.Order, error)
	StatusFn  func(context.Context, string) (*payment.StatusResult, error)
	ApplyFn   func(context.Context, string, model.PaymentStatus) (*model.Order, error)

	Applied []SettlementCall
	batch   int
}

// PendingPayments serves configured batches one poll at a time.
func (s *SettlementFacadeStub) PendingPayments(ctx context.Context, limit int) ([]model.Order, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	s.Lock()
	defer s.Unlock()
	if s.batch >= len(s.Batches) {
		return nil, nil
	}
	orders := s.Batches[s.batch]
	s.batch++
	return orders, nil
}

// PaymentStatus returns the configured gateway answer.
func (s *SettlementFacadeStub) PaymentStatus(ctx context.Context, paymentID string) (*payment.StatusResult, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, paymentID)
	}
	return &payment.StatusResult{Status: model.PaymentStatusConfirmed, PaidValue: 100}, nil
}

// ApplyPaymentStatus records settlement applications.
func (s *SettlementFacadeStub) ApplyPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) (*model.Order, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, orderID, status)
	}
	s.Lock()
	defer s.Unlock()
	s.Applied = append(s.Applied, SettlementCall{OrderID: orderID, Status: status})
	target, ok := model.OrderStatusForPayment(status)
	if !ok {
		return nil, domainErrors.ErrIllegalTransition
	}
	return &model.Order{ID: orderID, Status: target, PaymentStatus: status}, nil
}
