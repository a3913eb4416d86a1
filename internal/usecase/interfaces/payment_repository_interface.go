package interfaces

import (
	"context"
	"medibook/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error)
}
