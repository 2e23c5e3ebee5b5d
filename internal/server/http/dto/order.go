package dto

import (
	"time"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/usecase"
)

// AddressPayload is the shipping destination in requests and responses.
type AddressPayload struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	CEP        string `json:"cep"`
}

func (a AddressPayload) toModel() model.Address {
	return model.Address(a)
}

// CardPayload carries card data straight to the gateway, never persisted.
type CardPayload struct {
	HolderName  string `json:"holder_name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// CheckoutRequest turns the session cart (or explicit PDV items) into an order.
type CheckoutRequest struct {
	IdempotencyKey  string            `json:"idempotency_key"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone,omitempty"`
	Items           []CartItemRequest `json:"items,omitempty"`
	PaymentMethod   string            `json:"payment_method"`
	Card            *CardPayload      `json:"card,omitempty"`
	ShippingCarrier string            `json:"shipping_carrier,omitempty"`
	ShippingCost    float64           `json:"shipping_cost"`
	ShippingDays    int               `json:"shipping_days,omitempty"`
	Address         AddressPayload    `json:"address"`
	Discount        float64           `json:"discount,omitempty"`
	Notes           string            `json:"notes,omitempty"`
}

// ToInput converts the request into the checkout input, items excluded.
func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	in := usecase.CheckoutInput{
		IdempotencyKey: r.IdempotencyKey,
		Customer: model.Customer{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
			Phone: r.CustomerPhone,
		},
		PaymentMethod: model.PaymentMethod(r.PaymentMethod),
		Shipping: model.ShippingMethod{
			Carrier:       r.ShippingCarrier,
			Cost:          r.ShippingCost,
			EstimatedDays: r.ShippingDays,
		},
		Address:  r.Address.toModel(),
		Discount: r.Discount,
		Notes:    r.Notes,
	}
	if r.Card != nil {
		in.Card = &model.CardDetails{
			HolderName:  r.Card.HolderName,
			Number:      r.Card.Number,
			ExpiryMonth: r.Card.ExpiryMonth,
			ExpiryYear:  r.Card.ExpiryYear,
			CVV:         r.Card.CVV,
		}
	}
	return in
}

// PaymentRefsResponse exposes gateway references needed to finish payment.
type PaymentRefsResponse struct {
	PaymentID    string     `json:"payment_id,omitempty"`
	InvoiceURL   string     `json:"invoice_url,omitempty"`
	QRImage      string     `json:"qr_image,omitempty"`
	QRPayload    string     `json:"qr_payload,omitempty"`
	QRExpiration *time.Time `json:"qr_expiration,omitempty"`
	BankSlipURL  string     `json:"bank_slip_url,omitempty"`
}

// OrderResponse is the order as exposed over HTTP.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        int64               `json:"number"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Items         []CartItemResponse  `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	ShippingCost  float64             `json:"shipping_cost"`
	Discount      float64             `json:"discount,omitempty"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Payment       PaymentRefsResponse `json:"payment"`
	Address       AddressPayload      `json:"address"`
	TrackingCode  string              `json:"tracking_code,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	ShippedAt     *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt   *time.Time          `json:"delivered_at,omitempty"`
}

// FromOrder maps an order onto its response shape.
func FromOrder(order *model.Order) OrderResponse {
	items := make([]CartItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice(),
			Image:     item.Image,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}
	return OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		Items:         items,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Discount:      order.Discount,
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		Payment: PaymentRefsResponse{
			PaymentID:    order.Payment.PaymentID,
			InvoiceURL:   order.Payment.InvoiceURL,
			QRImage:      order.Payment.QRImage,
			QRPayload:    order.Payment.QRPayload,
			QRExpiration: order.Payment.QRExpiration,
			BankSlipURL:  order.Payment.BankSlipURL,
		},
		Address:      AddressPayload(order.Address),
		TrackingCode: order.TrackingCode,
		Notes:        order.Notes,
		CreatedAt:    order.CreatedAt,
		PaidAt:       order.PaidAt,
		ShippedAt:    order.ShippedAt,
		DeliveredAt:  order.DeliveredAt,
	}
}

// StatusUpdateRequest moves an order to a new status.
type StatusUpdateRequest struct {
	Status       string  `json:"status"`
	TrackingCode *string `json:"tracking_code,omitempty"`
}

// CancelRequest voids an order with an optional reason.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// PaymentWebhookRequest is the gateway notification payload.
type PaymentWebhookRequest struct {
	Event   string                `json:"event"`
	Payment PaymentWebhookPayment `json:"payment"`
}

// PaymentWebhookPayment identifies the charge and its vendor status.
type PaymentWebhookPayment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
