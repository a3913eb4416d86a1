package routes

import (
	"medibook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDoctors      = "/doctors"
	PathAppointments = "/appointments"
	PathPatients     = "/patients"
	PathPayments     = "/payments"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	doctorHandler *handlers.DoctorHandler,
	appointmentHandler *handlers.AppointmentHandler,
	paymentHandler *handlers.PaymentHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	doctors := rg.Group(PathDoctors)
	{
		doctors.POST("", doctorHandler.RegisterDoctor)
		doctors.GET("", doctorHandler.ListDoctors)
		doctors.GET("/:doctor_id", doctorHandler.GetDoctor)
		doctors.PATCH("/:doctor_id/availability", doctorHandler.SetAvailability)
		doctors.GET("/:doctor_id/appointments", appointmentHandler.ListAppointmentsByDoctor)
		doctors.POST("/:doctor_id/reviews", reviewHandler.AddReview)
		doctors.GET("/:doctor_id/reviews", reviewHandler.ListReviewsByDoctor)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.BookAppointment)
		appointments.GET("/:appointment_id", appointmentHandler.GetAppointment)
		appointments.POST("/:appointment_id/cancel", appointmentHandler.CancelAppointment)
		appointments.POST("/:appointment_id/complete", appointmentHandler.CompleteAppointment)
		appointments.POST("/:appointment_id/payments", paymentHandler.CreatePaymentByAppointmentID)
		appointments.GET("/:appointment_id/payments", paymentHandler.GetPaymentByAppointmentID)
	}

	patients := rg.Group(PathPatients)
	{
		patients.GET("/:patient_id/appointments", appointmentHandler.ListAppointmentsByPatient)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
