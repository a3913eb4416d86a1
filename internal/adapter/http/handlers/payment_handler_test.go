package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/internal/adapter/http/handlers/mocks"
	"medibook/internal/domain/entities"
	"medibook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePaymentByAppointmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/payments", h.CreatePaymentByAppointmentID)

		uc.EXPECT().CreateAndCapture(gomock.Any(), "appt-1").Return(entities.Payment{}, usecase.ErrAppointmentNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/payments", h.CreatePaymentByAppointmentID)

		uc.EXPECT().CreateAndCapture(gomock.Any(), "appt-1").Return(entities.Payment{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/payments", h.CreatePaymentByAppointmentID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndCapture(gomock.Any(), "appt-1").Return(entities.Payment{ID: "order-1", AppointmentID: "appt-1", Date: now, Status: entities.PaymentStatusCaptured}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "order-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentByAppointmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:appointment_id/payments", h.GetPaymentByAppointmentID)

		uc.EXPECT().ListByAppointmentID(gomock.Any(), "appt-1").Return(nil, usecase.ErrInvalidPaymentAppointmentID)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/appt-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:appointment_id/payments", h.GetPaymentByAppointmentID)

		uc.EXPECT().ListByAppointmentID(gomock.Any(), "appt-1").Return([]entities.Payment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/appt-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:appointment_id/payments", h.GetPaymentByAppointmentID)

		old := entities.Payment{ID: "old", AppointmentID: "appt-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusFailed}
		latest := entities.Payment{ID: "latest", AppointmentID: "appt-1", Date: time.Now(), Status: entities.PaymentStatusCaptured}
		uc.EXPECT().ListByAppointmentID(gomock.Any(), "appt-1").Return([]entities.Payment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/appt-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:payment_id", h.GetPayment)

	uc.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/order-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentAppointmentID, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayOrderNotFound, http.StatusNotFound},
		{usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{usecase.ErrAppointmentNotPayable, http.StatusConflict},
		{usecase.ErrAppointmentAlreadyPaid, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
