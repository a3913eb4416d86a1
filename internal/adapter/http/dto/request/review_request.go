package request

import "strings"

// ReviewCreateRequest is the payload for leaving doctor feedback.
type ReviewCreateRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (r ReviewCreateRequest) ResolvePatientID() string {
	return strings.TrimSpace(r.PatientID)
}
