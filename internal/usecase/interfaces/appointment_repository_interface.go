package interfaces

import (
	"context"
	"medibook/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.AppointmentPaymentStatus) (entities.Appointment, error)
}
