package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"medibook/internal/domain/entities"
	"medibook/internal/usecase/interfaces"
	"os"
	"strings"
	"time"
)

var (
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidPaymentAppointmentID = errors.New("invalid appointment_id")
	ErrAppointmentNotPayable       = errors.New("appointment not payable")
	ErrAppointmentAlreadyPaid      = errors.New("appointment already paid")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayOrderNotFound = errors.New("payment gateway order not found")
)

const defaultPaymentCurrency = "USD"

// IPaymentUseCase encapsulates the "create and capture payment" behavior.
//
// Requested behavior:
//   - Create a provider order for a booked appointment, capture it, persist
//     the payment and mark the appointment paid.

type IPaymentUseCase interface {
	CreateAndCapture(ctx context.Context, appointmentID string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo            interfaces.IPaymentRepository
	appointmentRepo interfaces.IAppointmentRepository
	gateway         interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, appointmentRepo interfaces.IAppointmentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, appointmentRepo: appointmentRepo, gateway: gateway}
}

func (u *PaymentUseCase) CreateAndCapture(ctx context.Context, appointmentID string) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-and-capture start raw_appointment_id=%q", appointmentID)
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		log.Printf("[payment][usecase] invalid appointment_id (empty)")
		return entities.Payment{}, ErrInvalidPaymentAppointmentID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured appointment_id=%s", appointmentID)
		return entities.Payment{}, errors.New("payment gateway not configured")
	}
	if u.appointmentRepo == nil {
		log.Printf("[payment][usecase] appointment repository not configured appointment_id=%s", appointmentID)
		return entities.Payment{}, errors.New("appointment repository not configured")
	}

	log.Printf("[payment][usecase] loading appointment appointment_id=%s", appointmentID)
	appt, err := u.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading appointment appointment_id=%s err=%v", appointmentID, err)
		return entities.Payment{}, err
	}
	if appt.ID == "" {
		log.Printf("[payment][usecase] appointment not found appointment_id=%s", appointmentID)
		return entities.Payment{}, ErrAppointmentNotFound
	}
	if appt.Status != entities.AppointmentStatusBooked {
		log.Printf("[payment][usecase] appointment not payable appointment_id=%s status=%s", appointmentID, appt.Status)
		return entities.Payment{}, ErrAppointmentNotPayable
	}
	if appt.PaymentStatus == entities.AppointmentPaymentPaid {
		log.Printf("[payment][usecase] appointment already paid appointment_id=%s", appointmentID)
		return entities.Payment{}, ErrAppointmentAlreadyPaid
	}
	log.Printf("[payment][usecase] appointment loaded appointment_id=%s amount=%.2f", appointmentID, appt.Amount)

	currency := paymentCurrency()

	log.Printf("[payment][usecase] creating provider order appointment_id=%s currency=%s", appointmentID, currency)
	orderID, orderStatus, _, err := u.gateway.CreateOrder(ctx, appointmentID, appt.Amount, currency)
	if err != nil {
		log.Printf("[payment][usecase] create order failed appointment_id=%s err=%v", appointmentID, err)
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] provider order created appointment_id=%s order_id=%s status=%s", appointmentID, orderID, orderStatus)

	captureStatus, captureResp, err := u.gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] capture failed appointment_id=%s order_id=%s err=%v", appointmentID, orderID, err)
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] capture success appointment_id=%s order_id=%s status=%s", appointmentID, orderID, captureStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(captureResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed appointment_id=%s err=%v", appointmentID, err)
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 orderID,
		AppointmentID:      appointmentID,
		Date:               now,
		Status:             entities.PaymentStatusCaptured,
		ProviderPayloadRaw: captureResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed appointment_id=%s payment_id=%s err=%v", appointmentID, p.ID, err)
		return entities.Payment{}, err
	}

	if _, err := u.appointmentRepo.UpdatePaymentStatus(ctx, appointmentID, entities.AppointmentPaymentPaid); err != nil {
		log.Printf("[payment][usecase] mark-paid failed appointment_id=%s payment_id=%s err=%v", appointmentID, created.ID, err)
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] create-and-capture success appointment_id=%s payment_id=%s status=%s", appointmentID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return nil, ErrInvalidPaymentAppointmentID
	}
	return u.repo.ListByAppointmentID(ctx, appointmentID)
}

func paymentCurrency() string {
	if v := strings.TrimSpace(os.Getenv("PAYMENT_CURRENCY")); v != "" {
		return strings.ToUpper(v)
	}
	return defaultPaymentCurrency
}

// classifyGatewayError maps provider failures onto usecase sentinels by the
// status embedded in the error text, keeping this layer decoupled from the
// gateway's concrete error types.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "status=401") || strings.Contains(msg, "status=403"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "status=404"):
		return ErrPaymentGatewayOrderNotFound
	case strings.Contains(msg, "status=400") || strings.Contains(msg, "status=422"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
