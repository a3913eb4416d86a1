package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"medibook/internal/usecase/interfaces"
)

var ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")

// PayPalGateway implements interfaces.IPaymentGateway on top of the PayPal
// Orders v2 API.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / PAYPAL_MOCK) short-circuits the provider
// entirely so local environments can run without credentials.
type PayPalGateway struct {
	client   *Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(client *Client) (*PayPalGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PayPalGateway{mockMode: true}, nil
	}

	if client == nil {
		log.Printf("[payment][gateway] paypal client not configured")
		return nil, ErrPayPalGatewayNotConfigured
	}
	log.Printf("[payment][gateway] PayPal client initialized")

	return &PayPalGateway{client: client}, nil
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	ReferenceID string      `json:"reference_id"`
	Amount      orderAmount `json:"amount"`
}

type orderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, appointmentID string, amount float64, currency string) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockOrder(appointmentID, amount, currency, "CREATED")
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrPayPalGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create-order start appointment_id=%s amount=%.2f", appointmentID, amount)

	req := orderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: appointmentID,
			Amount: orderAmount{
				CurrencyCode: currency,
				Value:        strconv.FormatFloat(amount, 'f', 2, 64),
			},
		}},
	}

	raw, err := g.client.MakeRequest(ctx, http.MethodPost, "/v2/checkout/orders", req, nil)
	if err != nil {
		log.Printf("[payment][gateway] create-order failed appointment_id=%s err=%v", appointmentID, err)
		return "", "", nil, err
	}

	ord, err := decodeOrder(raw)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create-order success order_id=%s status=%s", ord.ID, ord.Status)

	return ord.ID, ord.Status, raw, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		_, status, raw, err := g.mockOrder(orderID, 0, "", "COMPLETED")
		return status, raw, err
	}
	if g == nil || g.client == nil {
		return "", nil, ErrPayPalGatewayNotConfigured
	}
	log.Printf("[payment][gateway] capture-order start order_id=%s", orderID)

	raw, err := g.client.MakeRequest(ctx, http.MethodPost, fmt.Sprintf("/v2/checkout/orders/%s/capture", orderID), nil, nil)
	if err != nil {
		log.Printf("[payment][gateway] capture-order failed order_id=%s err=%v", orderID, err)
		return "", nil, err
	}

	ord, err := decodeOrder(raw)
	if err != nil {
		return "", nil, err
	}
	log.Printf("[payment][gateway] capture-order success order_id=%s status=%s", ord.ID, ord.Status)

	return ord.Status, raw, nil
}

func (g *PayPalGateway) GetOrder(ctx context.Context, orderID string) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		_, status, raw, err := g.mockOrder(orderID, 0, "", "COMPLETED")
		return status, raw, err
	}
	if g == nil || g.client == nil {
		return "", nil, ErrPayPalGatewayNotConfigured
	}

	raw, err := g.client.MakeRequest(ctx, http.MethodGet, fmt.Sprintf("/v2/checkout/orders/%s", orderID), nil, nil)
	if err != nil {
		return "", nil, err
	}

	ord, err := decodeOrder(raw)
	if err != nil {
		return "", nil, err
	}

	return ord.Status, raw, nil
}

func decodeOrder(raw json.RawMessage) (orderResponse, error) {
	var ord orderResponse
	if err := json.Unmarshal(raw, &ord); err != nil {
		return orderResponse{}, &MalformedResponseError{Body: raw, Err: err}
	}
	if ord.ID == "" {
		return orderResponse{}, &MalformedResponseError{Body: raw, Err: errors.New("order response missing id")}
	}
	return ord, nil
}

func (g *PayPalGateway) mockOrder(referenceID string, amount float64, currency string, status string) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	if referenceID != "" && status != "CREATED" {
		id = referenceID
	}
	resp := map[string]any{
		"id":          id,
		"status":      status,
		"create_time": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if referenceID != "" {
		resp["reference_id"] = referenceID
	}
	if amount > 0 {
		resp["amount"] = map[string]string{
			"currency_code": currency,
			"value":         strconv.FormatFloat(amount, 'f', 2, 64),
		}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] mock order id=%s status=%s", id, status)
	return id, status, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYPAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
