package entities

import "time"

// AppointmentStatus represents the lifecycle of a booked appointment.
//
// Domain notes:
//   - The booking-service is the source of truth for appointment state.
//   - Cancelling frees the doctor/slot pair for re-booking; completing does not.

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentPaymentStatus tracks whether the appointment has been paid for.

type AppointmentPaymentStatus string

const (
	AppointmentPaymentPending AppointmentPaymentStatus = "pending"
	AppointmentPaymentPaid    AppointmentPaymentStatus = "paid"
)

// Appointment is a doctor/patient booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (doctor_id-index): doctor_id
//   - GSI2 (patient_id-index): patient_id
//
// Slot representation:
//   - SlotDate is "2006-01-02", SlotTime is "15:04". A (doctor, date, time)
//     triple identifies a slot; at most one non-cancelled appointment may
//     occupy it.
type Appointment struct {
	ID            string                   `json:"id"`
	DoctorID      string                   `json:"doctor_id"`
	PatientID     string                   `json:"patient_id"`
	PatientName   string                   `json:"patient_name"`
	SlotDate      string                   `json:"slot_date"`
	SlotTime      string                   `json:"slot_time"`
	Amount        float64                  `json:"amount"`
	Status        AppointmentStatus        `json:"status"`
	PaymentStatus AppointmentPaymentStatus `json:"payment_status"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}
