package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Environment:  EnvironmentSandbox,
	}, nil)
	require.NoError(t, err)
	c.baseURL = baseURL
	return c
}

func TestNewClient_Validation(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewClient(ClientConfig{Environment: EnvironmentSandbox}, nil)
		require.ErrorIs(t, err, ErrMissingPayPalCredentials)
	})

	t.Run("invalid environment", func(t *testing.T) {
		_, err := NewClient(ClientConfig{ClientID: "a", ClientSecret: "b", Environment: "staging"}, nil)
		require.ErrorIs(t, err, ErrInvalidPayPalEnvironment)
	})

	t.Run("base url selection", func(t *testing.T) {
		sandbox, err := NewClient(ClientConfig{ClientID: "a", ClientSecret: "b", Environment: EnvironmentSandbox}, nil)
		require.NoError(t, err)
		assert.Equal(t, sandboxBaseURL, sandbox.baseURL)

		live, err := NewClient(ClientConfig{ClientID: "a", ClientSecret: "b", Environment: EnvironmentLive}, nil)
		require.NoError(t, err)
		assert.Equal(t, liveBaseURL, live.baseURL)
	})
}

func TestClient_EnsureAccessToken_CachesUntilExpiry(t *testing.T) {
	var tokenCalls int64

	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&tokenCalls, 1)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})
	mux.HandleFunc("/v2/checkout/orders/ord-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ord-1","status":"CREATED"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	for i := 0; i < 3; i++ {
		_, err := c.MakeRequest(context.Background(), http.MethodGet, "/v2/checkout/orders/ord-1", nil, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), atomic.LoadInt64(&tokenCalls), "cached token must be reused without network calls")
}

func TestClient_EnsureAccessToken_SafetyMargin(t *testing.T) {
	var tokenCalls int64

	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&tokenCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	t0 := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	now := t0
	c.now = func() time.Time { return now }

	// Acquire at t0: valid until t0 + 3600s - 60s.
	_, err := c.ensureAccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), atomic.LoadInt64(&tokenCalls))

	now = t0.Add(3539 * time.Second)
	_, err = c.ensureAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&tokenCalls), "token still inside safety window")

	now = t0.Add(3540 * time.Second)
	_, err = c.ensureAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&tokenCalls), "exactly one new exchange after effective expiry")
}

func TestClient_EnsureAccessToken_AuthFailure(t *testing.T) {
	var authorized atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		if !authorized.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Client Authentication failed"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.ensureAccessToken(context.Background())
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Body, "invalid_client")

	// The cached slot must remain untouched by the failed exchange.
	assert.Empty(t, c.cachedToken)
	assert.True(t, c.tokenExpiry.IsZero())

	// A later successful exchange fills the slot normally.
	authorized.Store(true)
	tok, err := c.ensureAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T", tok)
}

func TestClient_EnsureAccessToken_MalformedResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.ensureAccessToken(context.Background())
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestClient_MakeRequest_GatewayError(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "message field preferred",
			status:     http.StatusBadRequest,
			body:       `{"message":"INVALID_REQUEST","details":[{"issue":"MISSING_REQUIRED_PARAMETER"}]}`,
			wantMsg:    "INVALID_REQUEST",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "error_description fallback",
			status:     http.StatusUnauthorized,
			body:       `{"error":"invalid_token","error_description":"Token signature verification failed"}`,
			wantMsg:    "Token signature verification failed",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "generic fallback",
			status:     http.StatusBadGateway,
			body:       `upstream unavailable`,
			wantMsg:    "payment gateway request failed",
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
			})
			mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			srv := httptest.NewServer(mux)
			defer srv.Close()

			c := newTestClient(t, srv.URL)

			_, err := c.MakeRequest(context.Background(), http.MethodPost, "/v2/checkout/orders", map[string]string{"intent": "CAPTURE"}, nil)
			var gwErr *GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tc.wantMsg, gwErr.Message)
			assert.Equal(t, tc.wantStatus, gwErr.StatusCode)
			assert.Equal(t, tc.body, string(gwErr.Raw))
		})
	}
}

func TestClient_MakeRequest_Headers(t *testing.T) {
	requestIDs := map[string]bool{}

	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "my-value", r.Header.Get("X-Custom"))

		id := r.Header.Get(requestIDHeader)
		assert.NotEmpty(t, id)
		assert.False(t, requestIDs[id], "request id must be fresh per call")
		requestIDs[id] = true

		_, _ = w.Write([]byte(`{"id":"ord-1","status":"CREATED"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	for i := 0; i < 2; i++ {
		raw, err := c.MakeRequest(context.Background(), http.MethodPost, "/v2/checkout/orders",
			map[string]string{"intent": "CAPTURE"}, map[string]string{"X-Custom": "my-value"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"ord-1","status":"CREATED"}`, string(raw))
	}
	assert.Len(t, requestIDs, 2)
}

func TestClient_MakeRequest_MalformedSuccessBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "T", TokenType: "Bearer", ExpiresIn: 3600})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.MakeRequest(context.Background(), http.MethodPost, "/v2/checkout/orders", nil, nil)
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestNewRequestID(t *testing.T) {
	format := regexp.MustCompile(`^\d+-[A-Za-z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := newRequestID()
		require.Regexp(t, format, id)
		require.False(t, seen[id], "request ids generated within the same millisecond must differ")
		seen[id] = true
	}
}

func TestAuthenticationError_Error(t *testing.T) {
	err := &AuthenticationError{Body: `{"error":"invalid_client"}`}
	assert.Contains(t, err.Error(), "invalid_client")
}

func TestGatewayError_Error(t *testing.T) {
	err := &GatewayError{Message: "INVALID_REQUEST", StatusCode: 400}
	assert.Contains(t, err.Error(), "INVALID_REQUEST")
	assert.Contains(t, err.Error(), "400")
}

func TestMalformedResponseError_Unwrap(t *testing.T) {
	inner := errors.New("bad shape")
	err := &MalformedResponseError{Err: inner}
	assert.ErrorIs(t, err, inner)
}
