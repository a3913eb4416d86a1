package handlers

import (
	"context"
	"errors"
	request "medibook/internal/adapter/http/dto/request"
	response "medibook/internal/adapter/http/dto/response"
	"medibook/internal/domain/entities"
	"medibook/internal/usecase"
	"medibook/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

// AppointmentHandler handles HTTP requests for the booking lifecycle.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var payload request.AppointmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Book(c.Request.Context(), usecase.BookAppointmentInput{
		DoctorID:    payload.ResolveDoctorID(),
		PatientID:   payload.ResolvePatientID(),
		PatientName: payload.PatientName,
		SlotDate:    payload.SlotDate,
		SlotTime:    payload.SlotTime,
	})
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.patchAppointmentStatus(c, h.usecase.Cancel)
}

func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.patchAppointmentStatus(c, h.usecase.Complete)
}

func (h *AppointmentHandler) patchAppointmentStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Appointment, error),
) {
	appointment, err := updater(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.usecase.GetByID(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) ListAppointmentsByDoctor(c *gin.Context) {
	appointments, err := h.usecase.ListByDoctorID(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) ListAppointmentsByPatient(c *gin.Context) {
	appointments, err := h.usecase.ListByPatientID(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidDoctorID),
		errors.Is(err, usecase.ErrInvalidPatientID), errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDoctorNotFound):
		return pkg.NewDomainErrorSimple("DOCTOR_NOT_FOUND", "Doctor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDoctorNotAvailable):
		return pkg.NewDomainErrorSimple("DOCTOR_NOT_AVAILABLE", "Doctor not available for booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrSlotTaken):
		return pkg.NewDomainErrorSimple("SLOT_TAKEN", "Slot already booked", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotBooked):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_BOOKED", "Appointment is not in booked state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
