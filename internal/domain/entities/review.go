package entities

import "time"

// Review is patient feedback about a doctor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (doctor_id-index): doctor_id
type Review struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	PatientID string    `json:"patient_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
