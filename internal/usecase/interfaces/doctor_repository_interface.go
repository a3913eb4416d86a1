package interfaces

import (
	"context"
	"medibook/internal/domain/entities"
)

// IDoctorRepository abstracts DynamoDB persistence for Doctor.
//
// The booking-service must be able to:
//   - register a doctor when the admin panel submits one
//   - list doctors, optionally filtered by specialty
//   - toggle availability without rewriting the whole record

type IDoctorRepository interface {
	Create(ctx context.Context, d entities.Doctor) (entities.Doctor, error)
	GetByID(ctx context.Context, id string) (entities.Doctor, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]entities.Doctor, error)
	ListAll(ctx context.Context) ([]entities.Doctor, error)
	UpdateAvailability(ctx context.Context, id string, available bool) (entities.Doctor, error)
}
