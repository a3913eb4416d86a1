package handlers

import (
	"errors"
	"log"
	response "medibook/internal/adapter/http/dto/response"
	"medibook/internal/usecase"
	"medibook/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for appointment payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByAppointmentID charges a booked appointment using
// appointment_id in path. The order is created and captured in one call.
func (h *PaymentHandler) CreatePaymentByAppointmentID(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] create start appointment_id=%s", appointmentID)

	created, err := h.usecase.CreateAndCapture(c.Request.Context(), appointmentID)
	if err != nil {
		log.Printf("[payment][handler] create failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success appointment_id=%s payment_id=%s status=%s", appointmentID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByAppointmentID returns the latest payment for an appointment.
func (h *PaymentHandler) GetPaymentByAppointmentID(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] get-by-appointment start appointment_id=%s", appointmentID)

	payments, err := h.usecase.ListByAppointmentID(c.Request.Context(), appointmentID)
	if err != nil {
		log.Printf("[payment][handler] get-by-appointment failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-appointment not-found appointment_id=%s", appointmentID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-appointment success appointment_id=%s payment_id=%s status=%s", appointmentID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAppointmentID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayOrderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ORDER_NOT_FOUND", "Payment order not found at provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotPayable):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_PAYABLE", "Appointment not payable", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("APPOINTMENT_ALREADY_PAID", "Appointment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
