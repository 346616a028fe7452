package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amitprasad2007/AppFashion-sub000/internal/config"
	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
	apperrors "github.com/amitprasad2007/AppFashion-sub000/pkg/errors"
)

const idempotencyKeyHeader = "Idempotency-Key"

// TokenSource returns the current bearer token for a request. Session and
// auth state live with the caller, not inside the client.
type TokenSource func() string

// Client calls the AppFashion store backend
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a store backend HTTP client
func NewClient(cfg config.BackendConfig, token TokenSource, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchCart returns the authoritative server-side cart lines.
func (c *Client) FetchCart(ctx context.Context) ([]domain.CartLine, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/cart", nil, "")
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch cart: unmarshal response: %w", err)
	}
	return resp.Items, nil
}

// AddCartLine pushes one line into the server-side cart.
func (c *Client) AddCartLine(ctx context.Context, productID string, quantity int) error {
	req := addLineRequest{ProductID: productID, Quantity: quantity}
	if _, err := c.do(ctx, http.MethodPost, "/api/cart/add", req, ""); err != nil {
		return fmt.Errorf("add cart line %s: %w", productID, err)
	}
	return nil
}

// ClearCart empties the server-side cart. Called best-effort after a
// confirmed order.
func (c *Client) ClearCart(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodPost, "/api/cart/clear", nil, ""); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// CreateCODOrder creates a deferred-payment order. The idempotency key makes
// a retried call after a dropped response resolve to the already-created
// order instead of a duplicate.
func (c *Client) CreateCODOrder(ctx context.Context, payload domain.OrderSubmissionPayload, idempotencyKey string) (*domain.OrderRecord, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/checkout/cod", codOrderRequest{payload}, idempotencyKey)
	if err != nil {
		if apiErr, ok := err.(*apiError); ok {
			return nil, &apperrors.ErrSubmission{StatusCode: apiErr.status, Message: apiErr.message}
		}
		return nil, &apperrors.ErrSubmission{Message: err.Error()}
	}
	var record domain.OrderRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &apperrors.ErrSubmission{Message: "unmarshal order record: " + err.Error()}
	}
	return &record, nil
}

// CreateGatewayIntent asks the backend to mint an amount-bound gateway order
// for the given totals. The minor-unit conversion happens here, once.
func (c *Client) CreateGatewayIntent(ctx context.Context, totals domain.OrderTotals, customer domain.Customer, receipt string) (*domain.GatewayIntent, error) {
	req := intentRequest{
		AmountMinorUnits: domain.ToMinorUnits(totals.GrandTotal),
		Currency:         "INR",
		Receipt:          receipt,
		Customer:         customer,
	}
	body, err := c.do(ctx, http.MethodPost, "/api/payment/order", req, "")
	if err != nil {
		return nil, fmt.Errorf("create gateway intent: %w", err)
	}
	var intent domain.GatewayIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("create gateway intent: unmarshal response: %w", err)
	}
	if intent.AmountMinorUnits != req.AmountMinorUnits {
		return nil, fmt.Errorf("create gateway intent: amount mismatch: asked %d got %d",
			req.AmountMinorUnits, intent.AmountMinorUnits)
	}
	return &intent, nil
}

// VerifyPayment forwards the gateway's proof of payment plus the original
// order payload for authoritative verification and persistence.
func (c *Client) VerifyPayment(ctx context.Context, success domain.GatewaySuccess, payload domain.OrderSubmissionPayload, idempotencyKey string) (*domain.OrderRecord, error) {
	req := verifyRequest{
		PaymentID:      success.PaymentID,
		GatewayOrderID: success.GatewayOrderID,
		Signature:      success.Signature,
		Order:          payload,
	}
	body, err := c.do(ctx, http.MethodPost, "/api/payment/verify", req, idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	var record domain.OrderRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("verify payment: unmarshal order record: %w", err)
	}
	return &record, nil
}

// apiError is a non-2xx backend response with its parsed error envelope.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.status, e.message)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, idempotencyKey string) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("backend client not configured: base URL required")
	}

	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if idempotencyKey != "" {
		req.Header.Set(idempotencyKeyHeader, idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorResponse
		message := strings.TrimSpace(string(body))
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
			message = envelope.Error
			if envelope.Details != "" {
				message += ": " + envelope.Details
			}
		}
		return nil, &apiError{status: resp.StatusCode, message: message}
	}

	return body, nil
}
