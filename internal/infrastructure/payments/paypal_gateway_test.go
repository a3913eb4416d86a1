package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayServer(t *testing.T) (*httptest.Server, *PayPalGateway) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		var req orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "CAPTURE", req.Intent)
		require.Len(t, req.PurchaseUnits, 1)
		assert.Equal(t, "appt-1", req.PurchaseUnits[0].ReferenceID)
		assert.Equal(t, "150.00", req.PurchaseUnits[0].Amount.Value)
		assert.Equal(t, "USD", req.PurchaseUnits[0].Amount.CurrencyCode)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ord-1","status":"CREATED"}`))
	})
	mux.HandleFunc("/v2/checkout/orders/ord-1/capture", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ord-1","status":"COMPLETED"}`))
	})
	mux.HandleFunc("/v2/checkout/orders/ord-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"ord-1","status":"COMPLETED"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gw, err := NewPayPalGateway(newTestClient(t, srv.URL))
	require.NoError(t, err)
	return srv, gw
}

func TestPayPalGateway_CreateOrder(t *testing.T) {
	_, gw := newGatewayServer(t)

	orderID, status, raw, err := gw.CreateOrder(context.Background(), "appt-1", 150, "USD")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", orderID)
	assert.Equal(t, "CREATED", status)
	assert.JSONEq(t, `{"id":"ord-1","status":"CREATED"}`, string(raw))
}

func TestPayPalGateway_CaptureOrder(t *testing.T) {
	_, gw := newGatewayServer(t)

	status, raw, err := gw.CaptureOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", status)
	assert.NotEmpty(t, raw)
}

func TestPayPalGateway_GetOrder(t *testing.T) {
	_, gw := newGatewayServer(t)

	status, _, err := gw.GetOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", status)
}

func TestPayPalGateway_CreateOrder_MissingID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"CREATED"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	gw, err := NewPayPalGateway(newTestClient(t, srv.URL))
	require.NoError(t, err)

	_, _, _, err = gw.CreateOrder(context.Background(), "appt-1", 10, "USD")
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestPayPalGateway_NotConfigured(t *testing.T) {
	_, err := NewPayPalGateway(nil)
	require.ErrorIs(t, err, ErrPayPalGatewayNotConfigured)
}

func TestPayPalGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	gw, err := NewPayPalGateway(nil)
	require.NoError(t, err)

	orderID, status, raw, err := gw.CreateOrder(context.Background(), "appt-1", 99.9, "USD")
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.Equal(t, "CREATED", status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "appt-1", resp["reference_id"])

	captured, _, err := gw.CaptureOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", captured)
}
