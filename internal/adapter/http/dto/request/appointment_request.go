package request

import "strings"

// AppointmentCreateRequest is the payload for booking a slot with a doctor.
type AppointmentCreateRequest struct {
	DoctorID    string `json:"doctor_id" binding:"required"`
	PatientID   string `json:"patient_id" binding:"required"`
	PatientName string `json:"patient_name"`
	SlotDate    string `json:"slot_date" binding:"required"`
	SlotTime    string `json:"slot_time" binding:"required"`
}

func (r AppointmentCreateRequest) ResolveDoctorID() string {
	return strings.TrimSpace(r.DoctorID)
}

func (r AppointmentCreateRequest) ResolvePatientID() string {
	return strings.TrimSpace(r.PatientID)
}
