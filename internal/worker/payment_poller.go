package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// SettlementFacade exposes the subset of application functionality required
// by the reconciliation worker.
type SettlementFacade interface {
	PendingPayments(ctx context.Context, limit int) ([]model.Order, error)
	PaymentStatus(ctx context.Context, paymentID string) (*payment.StatusResult, error)
	ApplyPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) (*model.Order, error)
}

// PaymentPoller polls the gateway for unsettled orders and applies the
// resulting payment statuses concurrently.
type PaymentPoller struct {
	facade       SettlementFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentPoller constructs the settlement worker pool.
func NewPaymentPoller(facade SettlementFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentPoller {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentPoller{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background reconciliation.
func (p *PaymentPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *PaymentPoller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *PaymentPoller) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *PaymentPoller) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.PendingPayments(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch pending payments failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *PaymentPoller) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *PaymentPoller) handleOrder(ctx context.Context, order model.Order) {
	result, err := p.facade.PaymentStatus(ctx, order.Payment.PaymentID)
	if err != nil {
		var rateErr payment.RateLimitError
		switch {
		case errors.As(err, &rateErr):
			p.logger.Warn("gateway rate limited", slog.Duration("retry_after", rateErr.RetryAfter))
			time.Sleep(rateErr.RetryAfter)
		case errors.Is(err, domainErrors.ErrNotFound):
			// Charge not registered on the gateway side yet, retry later.
			time.Sleep(p.pollInterval)
		default:
			p.logger.Error("payment status fetch failed",
				slog.String("order_id", order.ID), slog.String("error", err.Error()))
		}
		return
	}

	if result.Status == model.PaymentStatusPending {
		return
	}

	if _, err := p.facade.ApplyPaymentStatus(ctx, order.ID, result.Status); err != nil {
		p.logger.Error("apply payment status failed",
			slog.String("order_id", order.ID), slog.String("error", err.Error()))
	}
}
