package shipping

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Quote is a single carrier option for a destination.
type Quote struct {
	Carrier       string  `json:"carrier"`
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimated_days"`
}

// Item describes one manifest line sent to the carrier API.
type Item struct {
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
}

// Quoter returns carrier options for a destination CEP.
type Quoter interface {
	Quote(ctx context.Context, destinationCEP string, items []Item) ([]Quote, error)
}

// defaultQuotes is served when the carrier API is unreachable so checkout
// never blocks on the provider.
var defaultQuotes = []Quote{
	{Carrier: "PAC", Cost: 24.90, EstimatedDays: 8},
	{Carrier: "SEDEX", Cost: 39.90, EstimatedDays: 3},
}

type quoteRequest struct {
	OriginCEP      string `json:"origin_cep"`
	DestinationCEP string `json:"destination_cep"`
	Items          []Item `json:"items"`
}

type quoteResponse struct {
	Quotes []Quote `json:"quotes"`
}

// HTTPQuoter fetches quotes from an external carrier aggregator.
type HTTPQuoter struct {
	client    *resty.Client
	originCEP string
	logger    *slog.Logger
}

// NewHTTPQuoter builds a quoter against the aggregator at baseURL. When
// baseURL is empty every quote request resolves to the static defaults.
func NewHTTPQuoter(baseURL, originCEP string, logger *slog.Logger) *HTTPQuoter {
	var client *resty.Client
	if baseURL != "" {
		client = resty.New().
			SetBaseURL(baseURL).
			SetTimeout(5 * time.Second).
			SetHeader("Content-Type", "application/json")
	}
	return &HTTPQuoter{client: client, originCEP: originCEP, logger: logger}
}

// Quote asks the aggregator for carrier options. Provider failures degrade
// to the static default table instead of failing the caller.
func (q *HTTPQuoter) Quote(ctx context.Context, destinationCEP string, items []Item) ([]Quote, error) {
	if destinationCEP == "" {
		return nil, fmt.Errorf("shipping: destination cep is required")
	}
	if q.client == nil {
		return defaultQuotes, nil
	}

	var out quoteResponse
	resp, err := q.client.R().
		SetContext(ctx).
		SetBody(quoteRequest{OriginCEP: q.originCEP, DestinationCEP: destinationCEP, Items: items}).
		SetResult(&out).
		Post("/quotes")
	if err != nil {
		q.logger.Warn("shipping quote fallback", "error", err)
		return defaultQuotes, nil
	}
	if resp.IsError() {
		q.logger.Warn("shipping quote fallback", "status", resp.StatusCode())
		return defaultQuotes, nil
	}
	if len(out.Quotes) == 0 {
		return defaultQuotes, nil
	}
	return out.Quotes, nil
}

var _ Quoter = (*HTTPQuoter)(nil)
