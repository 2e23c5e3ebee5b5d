package test

import (
	"context"
	"errors"
	"sync"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64, string) (string, error)
	ParseFn func(string) (int64, string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(staffID int64, role string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(staffID, role)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, string(model.StaffRoleAdmin), nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements the middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Role    model.StaffRole
	Err     error
	ParseFn func(string) (int64, model.StaffRole, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, model.StaffRole, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, "", s.Err
	}
	role := s.Role
	if role == "" {
		role = model.StaffRoleAdmin
	}
	return s.ID, role, nil
}

// DispatcherRecorder captures published order events per routing key.
type DispatcherRecorder struct {
	mu sync.Mutex

	Created   []*model.Order
	Confirmed []*model.Order
	Shipped   []*model.Order
	Cancelled []*model.Order
}

func (d *DispatcherRecorder) OrderCreated(_ context.Context, order *model.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Created = append(d.Created, order)
}

func (d *DispatcherRecorder) PaymentConfirmed(_ context.Context, order *model.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Confirmed = append(d.Confirmed, order)
}

func (d *DispatcherRecorder) OrderShipped(_ context.Context, order *model.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Shipped = append(d.Shipped, order)
}

func (d *DispatcherRecorder) OrderCancelled(_ context.Context, order *model.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Cancelled = append(d.Cancelled, order)
}

// GatewayStub simulates the payment gateway for lifecycle tests.
type GatewayStub struct {
	CreateChargeFn func(context.Context, *model.Order, *model.CardDetails) (*model.PaymentRefs, error)
	StatusFn       func(context.Context, string) (*payment.StatusResult, error)
	CancelFn       func(context.Context, string) error
	RefundFn       func(context.Context, string) error

	Charged   []*model.Order
	Cancelled []string
	Refunded  []string
}

// CreateCharge records the order and returns configured refs.
func (g *GatewayStub) CreateCharge(ctx context.Context, order *model.Order, card *model.CardDetails) (*model.PaymentRefs, error) {
	g.Charged = append(g.Charged, order)
	if g.CreateChargeFn != nil {
		return g.CreateChargeFn(ctx, order, card)
	}
	return &model.PaymentRefs{PaymentID: "pay_" + order.ID, InvoiceURL: "https://invoice/" + order.ID}, nil
}

// Status returns the configured settlement state, CONFIRMED by default.
func (g *GatewayStub) Status(ctx context.Context, paymentID string) (*payment.StatusResult, error) {
	if g.StatusFn != nil {
		return g.StatusFn(ctx, paymentID)
	}
	return &payment.StatusResult{Status: model.PaymentStatusConfirmed}, nil
}

// Cancel records the voided payment.
func (g *GatewayStub) Cancel(ctx context.Context, paymentID string) error {
	g.Cancelled = append(g.Cancelled, paymentID)
	if g.CancelFn != nil {
		return g.CancelFn(ctx, paymentID)
	}
	return nil
}

// Refund records the refunded payment.
func (g *GatewayStub) Refund(ctx context.Context, paymentID string) error {
	g.Refunded = append(g.Refunded, paymentID)
	if g.RefundFn != nil {
		return g.RefundFn(ctx, paymentID)
	}
	return nil
}
