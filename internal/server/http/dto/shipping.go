package dto

import "github.com/vitrinepdv/vitrine/internal/adapter/shipping"

// ShippingQuoteRequest asks for carrier options to a destination.
type ShippingQuoteRequest struct {
	DestinationCEP string          `json:"destination_cep"`
	Items          []shipping.Item `json:"items,omitempty"`
}

// ShippingQuoteResponse lists the carrier options.
type ShippingQuoteResponse struct {
	Quotes []shipping.Quote `json:"quotes"`
}
