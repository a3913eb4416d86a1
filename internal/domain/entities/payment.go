package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// "created" means a provider order exists but no funds moved yet;
// "captured" means the provider confirmed the charge.

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment is the payment entity persisted by the booking-service.
//
// Storage model (DynamoDB):
//   - PK: id (the provider order id)
//   - GSI1 (appointment_id-index): appointment_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. (We persist both because provider response schemas
//     vary between API versions.)

type Payment struct {
	ID            string        `json:"id"`
	AppointmentID string        `json:"appointment_id"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
