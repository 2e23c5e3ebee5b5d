package model

import "time"

// OrderStatus describes business-visible fulfillment state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// PaymentStatus mirrors the gateway's view of a charge's settlement state.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusReceived  PaymentStatus = "RECEIVED"
	PaymentStatusOverdue   PaymentStatus = "OVERDUE"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// PaymentMethod is a pass-through billing selection, not business logic.
type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "PIX"
	PaymentMethodCredit PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebit  PaymentMethod = "DEBIT_CARD"
	PaymentMethodBoleto PaymentMethod = "BOLETO"
	PaymentMethodCash   PaymentMethod = "CASH"
)

// orderTransitions is the allowed-transition table checked by every mutator.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusRefunded},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Settled reports whether the payment status represents a completed payment.
func (s PaymentStatus) Settled() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusReceived
}

// OrderStatusForPayment maps a payment status onto the order status it drives.
// The second result is false when the payment status leaves the order as is.
func OrderStatusForPayment(s PaymentStatus) (OrderStatus, bool) {
	switch s {
	case PaymentStatusConfirmed, PaymentStatusReceived:
		return OrderStatusPaid, true
	case PaymentStatusCancelled:
		return OrderStatusCancelled, true
	case PaymentStatusRefunded:
		return OrderStatusRefunded, true
	default:
		return "", false
	}
}

// Customer is the buyer identity snapshot captured at checkout.
type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Address is the shipping destination snapshot.
type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	CEP        string
}

// ShippingMethod is the carrier selection snapshot.
type ShippingMethod struct {
	Carrier       string
	Cost          float64
	EstimatedDays int
}

// PaymentRefs holds external gateway references attached to an order.
type PaymentRefs struct {
	PaymentID    string
	InvoiceURL   string
	QRImage      string
	QRPayload    string
	QRExpiration *time.Time
	BankSlipURL  string
}

// CardDetails is pass-through card data forwarded to the gateway, never stored.
type CardDetails struct {
	HolderName  string
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// Order is a persisted checkout attempt. Price fields are snapshots taken at
// creation time and never recomputed from the current catalog.
type Order struct {
	ID             string
	Number         int64
	IdempotencyKey string
	Customer       Customer
	Items          []CartItem
	Subtotal       float64
	ShippingCost   float64
	Discount       float64
	Total          float64
	Status         OrderStatus
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	Payment        PaymentRefs
	Shipping       ShippingMethod
	Address        Address
	TrackingCode   string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PaidAt         *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// Subtotal sums line snapshots using the promotional price when present.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.UnitPrice() * float64(item.Quantity)
	}
	return sum
}

// Total computes the order total, floored at zero.
func Total(subtotal, shippingCost, discount float64) float64 {
	total := subtotal + shippingCost - discount
	if total < 0 {
		return 0
	}
	return total
}
