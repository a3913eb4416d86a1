package response

import (
	"medibook/internal/domain/entities"
	"time"
)

type DoctorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Fees      float64   `json:"fees"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDoctor(d entities.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Specialty: d.Specialty,
		Fees:      d.Fees,
		Available: d.Available,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDoctors(ds []entities.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDoctor(d))
	}
	return out
}
