package response

import (
	"medibook/internal/domain/entities"
	"time"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	PatientID string    `json:"patient_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		DoctorID:  r.DoctorID,
		PatientID: r.PatientID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromReviews(rs []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReview(r))
	}
	return out
}
