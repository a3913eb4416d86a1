package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/internal/adapter/http/handlers/mocks"
	"medibook/internal/domain/entities"
	"medibook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAppointmentHandler_BookAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.BookAppointment)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"doctor_id":"doc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("slot taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.BookAppointment)

		uc.EXPECT().Book(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, usecase.ErrSlotTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"doctor_id":"doc-1","patient_id":"pat-1","slot_date":"2026-09-01","slot_time":"10:30"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.BookAppointment)

		uc.EXPECT().Book(gomock.Any(), usecase.BookAppointmentInput{
			DoctorID:  "doc-1",
			PatientID: "pat-1",
			SlotDate:  "2026-09-01",
			SlotTime:  "10:30",
		}).Return(entities.Appointment{ID: "appt-1", DoctorID: "doc-1", PatientID: "pat-1", Status: entities.AppointmentStatusBooked}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"doctor_id":"doc-1","patient_id":"pat-1","slot_date":"2026-09-01","slot_time":"10:30"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "appt-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/cancel", h.CancelAppointment)

		uc.EXPECT().Cancel(gomock.Any(), "appt-1").Return(entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("complete on non-booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/complete", h.CompleteAppointment)

		uc.EXPECT().Complete(gomock.Any(), "appt-1").Return(entities.Appointment{}, usecase.ErrAppointmentNotBooked)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_Listings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by doctor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/doctors/:doctor_id/appointments", h.ListAppointmentsByDoctor)

		uc.EXPECT().ListByDoctorID(gomock.Any(), "doc-1").Return([]entities.Appointment{{ID: "appt-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/doctors/doc-1/appointments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by patient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/patients/:patient_id/appointments", h.ListAppointmentsByPatient)

		uc.EXPECT().ListByPatientID(gomock.Any(), "pat-1").Return(nil, usecase.ErrInvalidPatientID)

		req := httptest.NewRequest(http.MethodGet, "/v1/patients/pat-1/appointments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapAppointmentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAppointmentID, http.StatusBadRequest},
		{usecase.ErrInvalidDoctorID, http.StatusBadRequest},
		{usecase.ErrInvalidPatientID, http.StatusBadRequest},
		{usecase.ErrInvalidSlot, http.StatusBadRequest},
		{usecase.ErrDoctorNotFound, http.StatusNotFound},
		{usecase.ErrDoctorNotAvailable, http.StatusConflict},
		{usecase.ErrSlotTaken, http.StatusConflict},
		{usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{usecase.ErrAppointmentNotBooked, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapAppointmentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
