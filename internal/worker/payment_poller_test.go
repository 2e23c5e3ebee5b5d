package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	testhelpers "github.com/vitrinepdv/vitrine/internal/test"
)

func TestNewPaymentPollerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	poller := NewPaymentPoller(&testhelpers.SettlementFacadeStub{}, time.Second, 0, 0, logger)
	if poller.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", poller.batchSize)
	}
	if poller.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", poller.workers)
	}
}

func TestPaymentPollerSettlesOrders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pending := model.Order{ID: "o1", Status: model.OrderStatusPending, Payment: model.PaymentRefs{PaymentID: "pay_1"}}
	facade := &testhelpers.SettlementFacadeStub{Batches: [][]model.Order{{pending}}}
	poller := NewPaymentPoller(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		applied := len(facade.Applied) > 0
		facade.Unlock()
		if applied {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for settlement")
		case <-time.After(10 * time.Millisecond):
		}
	}

	poller.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Applied) == 0 {
		t.Fatalf("expected payment status application")
	}
	if facade.Applied[0].OrderID != "o1" {
		t.Fatalf("expected order o1, got %s", facade.Applied[0].OrderID)
	}
	if facade.Applied[0].Status != model.PaymentStatusConfirmed {
		t.Fatalf("expected confirmed status, got %v", facade.Applied[0].Status)
	}
}

func TestPaymentPollerSkipsPendingGatewayStatus(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pending := model.Order{ID: "o1", Status: model.OrderStatusPending, Payment: model.PaymentRefs{PaymentID: "pay_1"}}
	polls := int32(0)
	facade := &testhelpers.SettlementFacadeStub{
		Batches: [][]model.Order{{pending}, {pending}},
		StatusFn: func(ctx context.Context, paymentID string) (*payment.StatusResult, error) {
			atomic.AddInt32(&polls, 1)
			return &payment.StatusResult{Status: model.PaymentStatusPending}, nil
		},
	}
	poller := NewPaymentPoller(facade, 5*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&polls) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for gateway polls")
		case <-time.After(10 * time.Millisecond):
		}
	}
	poller.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Applied) != 0 {
		t.Fatalf("expected no status application for pending charge, got %d", len(facade.Applied))
	}
}

func TestPaymentPollerHandlesRateLimiting(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pending := model.Order{ID: "o1", Status: model.OrderStatusPending, Payment: model.PaymentRefs{PaymentID: "pay_1"}}
	attempts := int32(0)
	facade := &testhelpers.SettlementFacadeStub{
		Batches: [][]model.Order{{pending}, {pending}},
		StatusFn: func(ctx context.Context, paymentID string) (*payment.StatusResult, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, payment.RateLimitError{RetryAfter: 10 * time.Millisecond}
			}
			return &payment.StatusResult{Status: model.PaymentStatusConfirmed, PaidValue: 100}, nil
		},
	}

	poller := NewPaymentPoller(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		if len(facade.Applied) > 0 {
			facade.Unlock()
			break
		}
		facade.Unlock()
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry")
		case <-time.After(10 * time.Millisecond):
		}
	}
	poller.Stop()
}
