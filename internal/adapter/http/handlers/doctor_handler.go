package handlers

import (
	"errors"
	request "medibook/internal/adapter/http/dto/request"
	response "medibook/internal/adapter/http/dto/response"
	"medibook/internal/usecase"
	"medibook/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDoctorPayload = pkg.NewDomainErrorSimple("INVALID_DOCTOR_INPUT", "Invalid doctor payload", http.StatusBadRequest)
)

// DoctorHandler handles HTTP requests for the doctor catalog.

type DoctorHandler struct {
	usecase usecase.IDoctorUseCase
}

func NewDoctorHandler(uc usecase.IDoctorUseCase) *DoctorHandler {
	return &DoctorHandler{usecase: uc}
}

func (h *DoctorHandler) RegisterDoctor(c *gin.Context) {
	var payload request.DoctorCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDoctorPayload.HTTPStatus, errInvalidDoctorPayload.ToHTTPError())
		return
	}

	doctor, err := h.usecase.RegisterDoctor(c.Request.Context(), payload.ResolveName(), payload.ResolveSpecialty(), payload.Fees)
	if err != nil {
		appErr := mapDoctorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDoctor(doctor))
}

func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	doctor, err := h.usecase.GetByID(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		appErr := mapDoctorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDoctor(doctor))
}

// ListDoctors returns all doctors, optionally filtered by ?specialty=.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.usecase.List(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		appErr := mapDoctorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDoctors(doctors))
}

func (h *DoctorHandler) SetAvailability(c *gin.Context) {
	var payload request.DoctorAvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Available == nil {
		c.JSON(errInvalidDoctorPayload.HTTPStatus, errInvalidDoctorPayload.ToHTTPError())
		return
	}

	doctor, err := h.usecase.SetAvailability(c.Request.Context(), c.Param("doctor_id"), *payload.Available)
	if err != nil {
		appErr := mapDoctorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDoctor(doctor))
}

func mapDoctorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDoctorID), errors.Is(err, usecase.ErrInvalidDoctorName),
		errors.Is(err, usecase.ErrInvalidDoctorSpecialty), errors.Is(err, usecase.ErrInvalidDoctorFees):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDoctorNotFound):
		return pkg.NewDomainErrorSimple("DOCTOR_NOT_FOUND", "Doctor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
