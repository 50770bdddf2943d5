// Package zapi is the HTTP adapter for the Zapay vehicle debts API.
// It owns the wire shapes (snake_case JSON, monetary values in reais)
// and converts every payload through the schema layer before anything
// reaches a caller.
package zapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/boddenberg/zapay-go/internal/domain"
	"github.com/boddenberg/zapay-go/internal/infra/observability"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("zapi")

// DefaultBaseURL points at the Zapay sandbox. Production deployments
// override it via ZAPAY_API_URL or zapay.WithBaseURL.
const DefaultBaseURL = "https://api.sandbox.usezapay.com.br"

// Fallback error payload when the remote gives no parseable detail.
const (
	unknownErrorDetail = "Não foi possível completar a request"
	unknownErrorCode   = "Erro Desconhecido"
)

// Client wraps HTTP calls to the Zapay API. It implements port.API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewClient creates a Zapay API client.
func NewClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, logger *zap.Logger, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		logger:     logger,
		metrics:    metrics,
	}
}

// errorBody is the shape Zapay uses for 4xx error payloads.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

type httpResult struct {
	status int
	body   []byte
}

// doRequest executes one API call. A 200 returns the raw body; any other
// status maps to *domain.APIError and a failed round trip maps to
// *domain.TransportError. Only transport failures count against the
// circuit breaker, so a burst of caller mistakes cannot open it.
func (c *Client) doRequest(ctx context.Context, operation, method, path string, token domain.Token, reqBody any) ([]byte, error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordRequestDuration(operation, time.Since(start))
	}()

	var payload io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return nil, &domain.TransportError{Operation: operation, Err: err}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		c.logger.Error("zapi: failed to create request",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.TransportError{Operation: operation, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "JWT "+string(token))
	}

	result, err := c.cb.Execute(func() (any, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &httpResult{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		c.logger.Error("zapi: request failed",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		c.metrics.IncrTransportError(operation)
		return nil, &domain.TransportError{Operation: operation, Err: err}
	}

	res := result.(*httpResult)
	if res.status != http.StatusOK {
		apiErr := &domain.APIError{
			Status: res.status,
			Detail: unknownErrorDetail,
			Code:   unknownErrorCode,
		}
		if res.status >= 400 && res.status < 500 {
			var remote errorBody
			if jsonErr := json.Unmarshal(res.body, &remote); jsonErr == nil && remote.Detail != "" {
				apiErr.Detail = remote.Detail
				apiErr.Code = remote.Error
			}
		}
		c.logger.Warn("zapi: non-200 response",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.status),
			zap.String("detail", apiErr.Detail),
		)
		c.metrics.IncrAPIError(operation, res.status)
		return nil, apiErr
	}

	c.logger.Debug("zapi: request OK",
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("path", path),
	)
	return res.body, nil
}

func (c *Client) postJSON(ctx context.Context, operation, path string, token domain.Token, reqBody, out any) error {
	body, err := c.doRequest(ctx, operation, http.MethodPost, path, token, reqBody)
	if err != nil {
		return err
	}
	return c.decode(operation, body, out)
}

func (c *Client) getJSON(ctx context.Context, operation, path string, token domain.Token, out any) error {
	body, err := c.doRequest(ctx, operation, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	return c.decode(operation, body, out)
}

// decode treats an unparseable 200 body as a broken remote contract.
func (c *Client) decode(operation string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return c.integration(operation, fmt.Errorf("malformed response body: %w", err))
	}
	return nil
}

// integration wraps a contract violation found in a 200 payload.
func (c *Client) integration(operation string, err error) error {
	c.logger.Error("zapi: response failed validation",
		zap.String("operation", operation),
		zap.Error(err),
	)
	c.metrics.IncrValidationFailure(operation)
	return &domain.IntegrationError{Operation: operation, Err: err}
}
