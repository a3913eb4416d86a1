package response

import (
	"medibook/internal/domain/entities"
	"time"
)

type AppointmentResponse struct {
	ID            string    `json:"id"`
	DoctorID      string    `json:"doctor_id"`
	PatientID     string    `json:"patient_id"`
	PatientName   string    `json:"patient_name,omitempty"`
	SlotDate      string    `json:"slot_date"`
	SlotTime      string    `json:"slot_time"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		DoctorID:      a.DoctorID,
		PatientID:     a.PatientID,
		PatientName:   a.PatientName,
		SlotDate:      a.SlotDate,
		SlotTime:      a.SlotTime,
		Amount:        a.Amount,
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAppointment(a))
	}
	return out
}
