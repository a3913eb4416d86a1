package payments

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Environment selects which PayPal host the client talks to. Fixed at
// construction; there is no runtime switching.
type Environment string

const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"

	tokenEndpoint = "/v1/oauth2/token"

	// tokenSafetyMargin is subtracted from the lifetime reported by the token
	// endpoint so a request is never issued with a token that expires
	// mid-flight.
	tokenSafetyMargin = 60 * time.Second

	requestIDHeader = "PayPal-Request-Id"
)

var (
	ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
	ErrInvalidPayPalEnvironment = errors.New(`PAYPAL_ENVIRONMENT must be "sandbox" or "live"`)
)

// AuthenticationError surfaces a non-success HTTP response from the token
// endpoint. It carries the raw response body text; the cached-token slot is
// left untouched when it is returned.
type AuthenticationError struct {
	Body string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("paypal authentication failed: %s", e.Body)
}

// GatewayError surfaces a non-success HTTP response from an authenticated
// request. Message is derived from the provider payload ("message", then
// "error_description", then a generic fallback); Raw keeps the full payload
// for diagnostics.
type GatewayError struct {
	Message    string
	StatusCode int
	Raw        json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("paypal api error: status=%d message=%s", e.StatusCode, e.Message)
}

// MalformedResponseError marks a success response whose body is not the JSON
// shape the provider documents. It is distinct from GatewayError so callers
// never see an undefined payload shape propagated as data.
type MalformedResponseError struct {
	Body []byte
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed paypal response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ClientConfig carries the client-credentials pair and target environment.
// Immutable after NewClient.
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	Environment  Environment
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type errorResponse struct {
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

// Client manages an OAuth2 client-credentials token against PayPal and
// issues authenticated REST calls.
//
// Token lifecycle: at most one token is held at a time; it is either absent
// or valid until (expiry - safety margin). Refresh replaces the slot
// wholesale and is serialized by a mutex, so concurrent callers hitting an
// expired slot coalesce into a single exchange.
//
// The client performs no retries; retry/backoff policy belongs to the
// caller. Timeouts come from the injected *http.Client or the request
// context.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	now          func() time.Time

	authMu      sync.Mutex
	cachedToken string
	tokenExpiry time.Time
}

func NewClient(cfg ClientConfig, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, ErrMissingPayPalCredentials
	}

	var baseURL string
	switch cfg.Environment {
	case EnvironmentSandbox:
		baseURL = sandboxBaseURL
	case EnvironmentLive:
		baseURL = liveBaseURL
	default:
		return nil, ErrInvalidPayPalEnvironment
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		clientID:     strings.TrimSpace(cfg.ClientID),
		clientSecret: strings.TrimSpace(cfg.ClientSecret),
		now:          time.Now,
	}, nil
}

// NewClientFromEnv constructs a client using PAYPAL_* environment variables.
// PAYPAL_ENVIRONMENT defaults to sandbox.
func NewClientFromEnv(httpClient *http.Client) (*Client, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(os.Getenv("PAYPAL_ENVIRONMENT"))))
	if env == "" {
		env = EnvironmentSandbox
	}

	return NewClient(ClientConfig{
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		Environment:  env,
	}, httpClient)
}

// ensureAccessToken returns the cached token without any network call while
// it is still inside its safety window, and performs a client-credentials
// exchange otherwise.
func (c *Client) ensureAccessToken(ctx context.Context) (string, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.cachedToken != "" && c.now().Before(c.tokenExpiry) {
		return c.cachedToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenEndpoint,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[payment][paypal] token exchange failed status=%d", resp.StatusCode)
		return "", &AuthenticationError{Body: string(body)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", &MalformedResponseError{Body: body, Err: err}
	}
	if tok.AccessToken == "" || tok.ExpiresIn <= 0 {
		return "", &MalformedResponseError{Body: body, Err: errors.New("token response missing access_token or expires_in")}
	}

	c.cachedToken = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenSafetyMargin)
	log.Printf("[payment][paypal] token refreshed expires_in=%ds", tok.ExpiresIn)

	return c.cachedToken, nil
}

// MakeRequest issues an authenticated call to baseURL+endpoint and returns
// the raw JSON body on success. Caller-supplied headers are applied first;
// Authorization, Content-Type, Accept and a freshly generated request-id
// header are always set on top of them.
func (c *Client) MakeRequest(ctx context.Context, method, endpoint string, payload any, headers map[string]string) (json.RawMessage, error) {
	token, err := c.ensureAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = strings.NewReader(string(b))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, newRequestID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var er errorResponse
		_ = json.Unmarshal(data, &er)
		msg := er.Message
		if msg == "" {
			msg = er.ErrorDescription
		}
		if msg == "" {
			msg = "payment gateway request failed"
		}
		log.Printf("[payment][paypal] request failed method=%s endpoint=%s status=%d message=%s", method, endpoint, resp.StatusCode, msg)
		return nil, &GatewayError{Message: msg, StatusCode: resp.StatusCode, Raw: data}
	}

	if len(data) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, &MalformedResponseError{Body: data, Err: errors.New("response body is not valid json")}
	}

	return data, nil
}

const requestIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newRequestID builds the per-call idempotency header value: current
// timestamp plus a short random alphanumeric suffix. Unique per call with
// overwhelming probability (62^8 suffix space); no global guarantee.
func newRequestID() string {
	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to the
		// nanosecond clock rather than aborting the payment call.
		return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatInt(time.Now().UnixNano()%1e9, 36)
	}
	for i, b := range suffix {
		suffix[i] = requestIDAlphabet[int(b)%len(requestIDAlphabet)]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
