package entities

import "time"

// Doctor is a bookable practitioner persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (specialty-index): specialty
//
// Fees is the consultation price charged when an appointment with this
// doctor is booked; it is copied onto the appointment at booking time so
// later fee changes do not affect already-booked slots.
type Doctor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Fees      float64   `json:"fees"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
