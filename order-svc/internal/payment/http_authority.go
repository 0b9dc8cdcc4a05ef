package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrIntentNotFound = errors.New("payment intent not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPAuthority talks to a Stripe-compatible payment intents API.
type HTTPAuthority struct {
	baseURL   string
	secretKey string
	client    HTTPClient
}

func NewHTTPAuthority(baseURL, secretKey string, client HTTPClient) *HTTPAuthority {
	return &HTTPAuthority{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    client,
	}
}

type intentPayload struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type errorPayload struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *HTTPAuthority) CreateIntent(ctx context.Context, amountMinor int64, currency string) (AuthorityIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return AuthorityIntent{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	return a.do(req)
}

func (a *HTTPAuthority) RetrieveIntent(ctx context.Context, intentID string) (AuthorityIntent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v1/payment_intents/"+url.PathEscape(intentID), nil)
	if err != nil {
		return AuthorityIntent{}, err
	}
	return a.do(req)
}

func (a *HTTPAuthority) do(req *http.Request) (AuthorityIntent, error) {
	req.Header.Set("Authorization", "Bearer "+a.secretKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return AuthorityIntent{}, fmt.Errorf("payment authority request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AuthorityIntent{}, fmt.Errorf("read payment authority response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return AuthorityIntent{}, ErrIntentNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorPayload
		_ = json.Unmarshal(body, &apiErr)
		return AuthorityIntent{}, fmt.Errorf("payment authority returned %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	var payload intentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return AuthorityIntent{}, fmt.Errorf("decode payment intent: %w", err)
	}
	return AuthorityIntent{
		ID:           payload.ID,
		ClientSecret: payload.ClientSecret,
		AmountMinor:  payload.Amount,
		Currency:     payload.Currency,
		Status:       payload.Status,
	}, nil
}
