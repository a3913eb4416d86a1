package response

import (
	"medibook/internal/domain/entities"
	"time"
)

type PaymentResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		AppointmentID:      p.AppointmentID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
