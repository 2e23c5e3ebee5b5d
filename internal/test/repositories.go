package test

import (
	"context"
	"sync"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
)

// StaffRepositoryStub stores staff accounts in-memory for tests.
type StaffRepositoryStub struct {
	Members map[string]*model.Staff
	ByID    map[int64]*model.Staff
	Next    int64
	Err     error
}

// NewStaffRepositoryStub constructs stub repository with initialized maps.
func NewStaffRepositoryStub() *StaffRepositoryStub {
	return &StaffRepositoryStub{
		Members: make(map[string]*model.Staff),
		ByID:    make(map[int64]*model.Staff),
		Next:    1,
	}
}

// Create registers a staff member unless one already exists.
func (s *StaffRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.StaffRole) (*model.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Members == nil {
		s.Members = make(map[string]*model.Staff)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Staff)
	}
	if _, exists := s.Members[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	member := &model.Staff{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Members[login] = member
	s.ByID[member.ID] = member
	return member, nil
}

// GetByLogin fetches a staff member by login or returns not found.
func (s *StaffRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if member, ok := s.Members[login]; ok {
		return member, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a staff member by identifier or returns not found.
func (s *StaffRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if member, ok := s.ByID[id]; ok {
		return member, nil
	}
	return nil, domainErrors.ErrNotFound
}

// TransitionCall records one ApplyTransition invocation.
type TransitionCall struct {
	OrderID    string
	Transition repository.Transition
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn                func(context.Context, *model.Order) (*model.Order, bool, error)
	GetByIDFn               func(context.Context, string) (*model.Order, error)
	GetByNumberFn           func(context.Context, int64) (*model.Order, error)
	GetByPaymentIDFn        func(context.Context, string) (*model.Order, error)
	ListFn                  func(context.Context, repository.OrderFilter) ([]model.Order, error)
	SelectPendingPaymentsFn func(context.Context, int) ([]model.Order, error)
	ApplyTransitionFn       func(context.Context, string, repository.Transition) (*model.Order, error)

	Created         []*model.Order
	Orders          []model.Order
	Pending         []model.Order
	TransitionCalls []TransitionCall
	NextNumber      int64
}

// Create tracks invocations and assigns sequential numbers.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.NextNumber++
	order.Number = s.NextNumber
	return order, true, nil
}

// GetByID returns a matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByNumber returns a matched order by its sequential number.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number int64) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	for _, o := range s.Orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByPaymentID returns a matched order by gateway payment reference.
func (s *OrderRepositoryStub) GetByPaymentID(ctx context.Context, paymentID string) (*model.Order, error) {
	if s.GetByPaymentIDFn != nil {
		return s.GetByPaymentIDFn(ctx, paymentID)
	}
	for _, o := range s.Orders {
		if o.Payment.PaymentID == paymentID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from the configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, nil
}

// SelectPendingPayments returns queued orders for reconciliation.
func (s *OrderRepositoryStub) SelectPendingPayments(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectPendingPaymentsFn != nil {
		return s.SelectPendingPaymentsFn(ctx, limit)
	}
	return s.Pending, nil
}

// ApplyTransition records invocations and applies the mutation to the stored
// order when one matches.
func (s *OrderRepositoryStub) ApplyTransition(ctx context.Context, orderID string, tr repository.Transition) (*model.Order, error) {
	s.TransitionCalls = append(s.TransitionCalls, TransitionCall{OrderID: orderID, Transition: tr})
	if s.ApplyTransitionFn != nil {
		return s.ApplyTransitionFn(ctx, orderID, tr)
	}
	for idx := range s.Orders {
		if s.Orders[idx].ID != orderID {
			continue
		}
		order := &s.Orders[idx]
		matched := false
		for _, expect := range tr.ExpectStatus {
			if order.Status == expect {
				matched = true
				break
			}
		}
		if !matched {
			return nil, domainErrors.ErrIllegalTransition
		}
		order.Status = tr.Status
		if tr.PaymentStatus != nil {
			order.PaymentStatus = *tr.PaymentStatus
		}
		if tr.PaymentRefs != nil {
			order.Payment = *tr.PaymentRefs
		}
		if tr.TrackingCode != nil {
			order.TrackingCode = *tr.TrackingCode
		}
		if tr.Notes != nil {
			if order.Notes == "" {
				order.Notes = *tr.Notes
			} else {
				order.Notes = order.Notes + "\n" + *tr.Notes
			}
		}
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products in-memory with conditional decrements.
type ProductRepositoryStub struct {
	mu       sync.Mutex
	Products map[string]*model.Product
	Err      error

	DecrementCalls []StockCall
	RestoreCalls   []StockCall
}

// StockCall records one stock adjustment.
type StockCall struct {
	ProductID string
	Quantity  int
}

// NewProductRepositoryStub constructs the stub with provided products.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	stub := &ProductRepositoryStub{Products: make(map[string]*model.Product)}
	for _, p := range products {
		stub.Products[p.ID] = p
	}
	return stub
}

// Create stores the product.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.Products[product.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Products[product.ID] = product
	return product, nil
}

// Update replaces the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.Products[product.ID]; !exists {
		return domainErrors.ErrNotFound
	}
	s.Products[product.ID] = product
	return nil
}

// GetByID returns a copy of the stored product.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.Products))
	for _, product := range s.Products {
		if onlyActive && !product.Active {
			continue
		}
		out = append(out, *product)
	}
	return out, nil
}

// ListLowStock returns products at or below their minimum threshold.
func (s *ProductRepositoryStub) ListLowStock(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Product
	for _, product := range s.Products {
		if product.LowStock() {
			out = append(out, *product)
		}
	}
	return out, nil
}

// DecrementStock reduces stock conditionally like the real repository.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, productID string, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DecrementCalls = append(s.DecrementCalls, StockCall{ProductID: productID, Quantity: quantity})
	product, ok := s.Products[productID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if product.Stock < quantity {
		return domainErrors.ErrInsufficientStock
	}
	product.Stock -= quantity
	return nil
}

// RestoreStock increases stock unconditionally.
func (s *ProductRepositoryStub) RestoreStock(ctx context.Context, productID string, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RestoreCalls = append(s.RestoreCalls, StockCall{ProductID: productID, Quantity: quantity})
	product, ok := s.Products[productID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	product.Stock += quantity
	return nil
}

// CartRepositoryStub keeps carts in-memory.
type CartRepositoryStub struct {
	mu    sync.Mutex
	Carts map[string]*model.Cart
	Err   error

	Deleted []string
}

// NewCartRepositoryStub constructs the stub with an initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[string]*model.Cart)}
}

// Get returns a copy of the stored cart or not found.
func (s *CartRepositoryStub) Get(ctx context.Context, id string) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.Carts[id]; ok {
		copied := *cart
		copied.Items = append([]model.CartItem(nil), cart.Items...)
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save stores the cart.
func (s *CartRepositoryStub) Save(ctx context.Context, cart *model.Cart) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Carts == nil {
		s.Carts = make(map[string]*model.Cart)
	}
	s.Carts[cart.ID] = cart
	return nil
}

// Delete drops the cart and records the call.
func (s *CartRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, id)
	if _, ok := s.Carts[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Carts, id)
	return nil
}
