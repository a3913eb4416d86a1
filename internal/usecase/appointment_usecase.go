package usecase

import (
	"context"
	"errors"
	"log"
	"medibook/internal/domain/entities"
	"medibook/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrInvalidPatientID     = errors.New("invalid patient id")
	ErrInvalidSlot          = errors.New("invalid slot date/time")
	ErrDoctorNotAvailable   = errors.New("doctor not available")
	ErrSlotTaken            = errors.New("slot already booked")
	ErrAppointmentNotBooked = errors.New("appointment not in booked state")
)

const (
	slotDateLayout = "2006-01-02"
	slotTimeLayout = "15:04"
)

// BookAppointmentInput carries the booking command.
type BookAppointmentInput struct {
	DoctorID    string
	PatientID   string
	PatientName string
	SlotDate    string
	SlotTime    string
}

// IAppointmentUseCase encapsulates the booking lifecycle.
//
// Rules:
//   - a slot (doctor, date, time) holds at most one non-cancelled appointment
//   - the amount charged is the doctor's fee at booking time
//   - cancel frees the slot; complete does not

type IAppointmentUseCase interface {
	Book(ctx context.Context, in BookAppointmentInput) (entities.Appointment, error)
	Cancel(ctx context.Context, id string) (entities.Appointment, error)
	Complete(ctx context.Context, id string) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo       interfaces.IAppointmentRepository
	doctorRepo interfaces.IDoctorRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, doctorRepo interfaces.IDoctorRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, doctorRepo: doctorRepo}
}

func (u *AppointmentUseCase) Book(ctx context.Context, in BookAppointmentInput) (entities.Appointment, error) {
	in.DoctorID = strings.TrimSpace(in.DoctorID)
	if in.DoctorID == "" {
		return entities.Appointment{}, ErrInvalidDoctorID
	}
	in.PatientID = strings.TrimSpace(in.PatientID)
	if in.PatientID == "" {
		return entities.Appointment{}, ErrInvalidPatientID
	}
	in.SlotDate = strings.TrimSpace(in.SlotDate)
	in.SlotTime = strings.TrimSpace(in.SlotTime)
	if _, err := time.Parse(slotDateLayout, in.SlotDate); err != nil {
		return entities.Appointment{}, ErrInvalidSlot
	}
	if _, err := time.Parse(slotTimeLayout, in.SlotTime); err != nil {
		return entities.Appointment{}, ErrInvalidSlot
	}

	log.Printf("[booking][usecase] book start doctor_id=%s patient_id=%s slot=%s %s", in.DoctorID, in.PatientID, in.SlotDate, in.SlotTime)

	doctor, err := u.doctorRepo.GetByID(ctx, in.DoctorID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if doctor.ID == "" {
		return entities.Appointment{}, ErrDoctorNotFound
	}
	if !doctor.Available {
		log.Printf("[booking][usecase] doctor not available doctor_id=%s", in.DoctorID)
		return entities.Appointment{}, ErrDoctorNotAvailable
	}

	// Slot conflict check. The doctor GSI keeps this a single query; cancelled
	// appointments do not hold the slot.
	existing, err := u.repo.ListByDoctorID(ctx, in.DoctorID)
	if err != nil {
		return entities.Appointment{}, err
	}
	for _, a := range existing {
		if a.SlotDate == in.SlotDate && a.SlotTime == in.SlotTime && a.Status != entities.AppointmentStatusCancelled {
			log.Printf("[booking][usecase] slot taken doctor_id=%s slot=%s %s appointment_id=%s", in.DoctorID, in.SlotDate, in.SlotTime, a.ID)
			return entities.Appointment{}, ErrSlotTaken
		}
	}

	now := time.Now().UTC()
	a := entities.Appointment{
		ID:            uuid.NewString(),
		DoctorID:      in.DoctorID,
		PatientID:     in.PatientID,
		PatientName:   strings.TrimSpace(in.PatientName),
		SlotDate:      in.SlotDate,
		SlotTime:      in.SlotTime,
		Amount:        doctor.Fees,
		Status:        entities.AppointmentStatusBooked,
		PaymentStatus: entities.AppointmentPaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[booking][usecase] book failed doctor_id=%s err=%v", in.DoctorID, err)
		return entities.Appointment{}, err
	}
	log.Printf("[booking][usecase] book success appointment_id=%s amount=%.2f", created.ID, created.Amount)
	return created, nil
}

func (u *AppointmentUseCase) Cancel(ctx context.Context, id string) (entities.Appointment, error) {
	return u.transition(ctx, id, entities.AppointmentStatusCancelled)
}

func (u *AppointmentUseCase) Complete(ctx context.Context, id string) (entities.Appointment, error) {
	return u.transition(ctx, id, entities.AppointmentStatusCompleted)
}

func (u *AppointmentUseCase) transition(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	if a.Status != entities.AppointmentStatusBooked {
		return entities.Appointment{}, ErrAppointmentNotBooked
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Appointment{}, err
	}
	log.Printf("[booking][usecase] transition success appointment_id=%s status=%s", id, status)
	return updated, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, ErrInvalidDoctorID
	}
	return u.repo.ListByDoctorID(ctx, doctorID)
}

func (u *AppointmentUseCase) ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.repo.ListByPatientID(ctx, patientID)
}
