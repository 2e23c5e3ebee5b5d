package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// RateLimitError represents a rate limiting signal from the gateway.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e RateLimitError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// StatusResult is the gateway's settlement view of a charge.
type StatusResult struct {
	Status    model.PaymentStatus
	PaidValue float64
}

// Client exposes operations against the payment gateway.
type Client interface {
	CreateCharge(ctx context.Context, order *model.Order, card *model.CardDetails) (*model.PaymentRefs, error)
	Status(ctx context.Context, paymentID string) (*StatusResult, error)
	Cancel(ctx context.Context, paymentID string) error
	Refund(ctx context.Context, paymentID string) error
}

// HTTPClient implements Client via the gateway REST API.
type HTTPClient struct {
	rest   *resty.Client
	logger *slog.Logger
}

type chargeRequest struct {
	ExternalReference string  `json:"externalReference"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	CustomerName      string  `json:"customerName"`
	CustomerEmail     string  `json:"customerEmail,omitempty"`
	CustomerPhone     string  `json:"customerPhone,omitempty"`
	Description       string  `json:"description"`

	CardHolderName  string `json:"cardHolderName,omitempty"`
	CardNumber      string `json:"cardNumber,omitempty"`
	CardExpiryMonth string `json:"cardExpiryMonth,omitempty"`
	CardExpiryYear  string `json:"cardExpiryYear,omitempty"`
	CardCVV         string `json:"cardCcv,omitempty"`
}

type chargeResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	InvoiceURL  string `json:"invoiceUrl"`
	BankSlipURL string `json:"bankSlipUrl"`
}

type pixQRResponse struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

type statusResponse struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Value  float64 `json:"value"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) *HTTPClient {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetHeader("access_token", apiKey).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	return &HTTPClient{rest: rest, logger: logger}
}

// CreateCharge registers a charge for the order and returns gateway references.
// For PIX charges the QR code is fetched in a follow-up call.
func (c *HTTPClient) CreateCharge(ctx context.Context, order *model.Order, card *model.CardDetails) (*model.PaymentRefs, error) {
	req := chargeRequest{
		ExternalReference: order.ID,
		BillingType:       string(order.PaymentMethod),
		Value:             order.Total,
		CustomerName:      order.Customer.Name,
		CustomerEmail:     order.Customer.Email,
		CustomerPhone:     order.Customer.Phone,
		Description:       fmt.Sprintf("Pedido #%d", order.Number),
	}
	if card != nil {
		req.CardHolderName = card.HolderName
		req.CardNumber = card.Number
		req.CardExpiryMonth = card.ExpiryMonth
		req.CardExpiryYear = card.ExpiryYear
		req.CardCVV = card.CVV
	}

	var out chargeResponse
	resp, err := c.rest.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/payments")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPaymentProvider, err)
	}
	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	refs := &model.PaymentRefs{
		PaymentID:   out.ID,
		InvoiceURL:  out.InvoiceURL,
		BankSlipURL: out.BankSlipURL,
	}

	if order.PaymentMethod == model.PaymentMethodPix {
		qr, err := c.pixQR(ctx, out.ID)
		if err != nil {
			// The charge exists; the storefront can refetch the QR later.
			c.logger.Warn("pix qr fetch failed", slog.String("payment_id", out.ID), slog.String("error", err.Error()))
		} else {
			refs.QRImage = qr.EncodedImage
			refs.QRPayload = qr.Payload
			refs.QRExpiration = parseExpiration(qr.ExpirationDate)
		}
	}

	return refs, nil
}

// Status fetches the charge settlement state.
func (c *HTTPClient) Status(ctx context.Context, paymentID string) (*StatusResult, error) {
	var out statusResponse
	resp, err := c.rest.R().SetContext(ctx).SetResult(&out).Get("/payments/" + paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPaymentProvider, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, domainErrors.ErrNotFound
	}
	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}
	return &StatusResult{Status: MapStatus(out.Status), PaidValue: out.Value}, nil
}

// Cancel voids a charge at the gateway.
func (c *HTTPClient) Cancel(ctx context.Context, paymentID string) error {
	resp, err := c.rest.R().SetContext(ctx).Delete("/payments/" + paymentID)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrPaymentProvider, err)
	}
	return c.checkResponse(resp)
}

// Refund requests a refund for a settled charge.
func (c *HTTPClient) Refund(ctx context.Context, paymentID string) error {
	resp, err := c.rest.R().SetContext(ctx).Post("/payments/" + paymentID + "/refund")
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrPaymentProvider, err)
	}
	return c.checkResponse(resp)
}

func (c *HTTPClient) pixQR(ctx context.Context, paymentID string) (*pixQRResponse, error) {
	var out pixQRResponse
	resp, err := c.rest.R().SetContext(ctx).SetResult(&out).Get("/payments/" + paymentID + "/pixQrCode")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPaymentProvider, err)
	}
	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) checkResponse(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return RateLimitError{RetryAfter: parseRetryAfter(resp.Header().Get("Retry-After"))}
	case resp.IsError():
		c.logger.Error("gateway request failed",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", string(resp.Body())),
		)
		return fmt.Errorf("%w: status %s", domainErrors.ErrPaymentProvider, resp.Status())
	default:
		return nil
	}
}

// MapStatus translates vendor status strings onto the domain payment status.
// Unknown values are treated as still pending.
func MapStatus(vendor string) model.PaymentStatus {
	switch vendor {
	case "PENDING", "AWAITING_PAYMENT", "AWAITING_RISK_ANALYSIS":
		return model.PaymentStatusPending
	case "CONFIRMED":
		return model.PaymentStatusConfirmed
	case "RECEIVED", "RECEIVED_IN_CASH":
		return model.PaymentStatusReceived
	case "OVERDUE":
		return model.PaymentStatusOverdue
	case "CANCELLED", "PAYMENT_DELETED":
		return model.PaymentStatusCancelled
	case "REFUNDED", "REFUND_REQUESTED":
		return model.PaymentStatusRefunded
	default:
		return model.PaymentStatusPending
	}
}

func parseExpiration(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}

var _ Client = (*HTTPClient)(nil)
