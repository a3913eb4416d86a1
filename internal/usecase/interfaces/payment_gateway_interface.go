package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider (PayPal).
//
// The booking-service uses it to create and capture an order for an
// appointment and persists the provider response payload for traceability.
// Retry/backoff is a caller responsibility; the gateway surfaces provider
// failures as-is.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, appointmentID string, amount float64, currency string) (orderID string, status string, response json.RawMessage, err error)
	CaptureOrder(ctx context.Context, orderID string) (status string, response json.RawMessage, err error)
	GetOrder(ctx context.Context, orderID string) (status string, response json.RawMessage, err error)
}
