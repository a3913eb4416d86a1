package request

import "strings"

// DoctorCreateRequest is the payload for registering a doctor.
type DoctorCreateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Specialty string  `json:"specialty" binding:"required"`
	Fees      float64 `json:"fees" binding:"required"`
}

func (r DoctorCreateRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r DoctorCreateRequest) ResolveSpecialty() string {
	return strings.TrimSpace(r.Specialty)
}

// DoctorAvailabilityRequest toggles whether a doctor can be booked.
//
// `available` is a pointer so "false" survives required-field binding.
type DoctorAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
