package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

const maxResponseBytes = 1 << 20

// CallRecorder receives the outcome of every outbound call
type CallRecorder interface {
	GatewayCall(gateway, operation string, status int, elapsed time.Duration)
}

// RejectedError is a 4xx answer: the gateway is up but refused the request
type RejectedError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface for RejectedError
func (e *RejectedError) Error() string {
	return fmt.Sprintf("gateway refused request with HTTP %d: %s", e.StatusCode, e.Body)
}

// Is matches ErrGatewayRejected
func (e *RejectedError) Is(target error) bool {
	return target == errs.ErrGatewayRejected
}

// UpstreamError is a 5xx answer, counted against the breaker
type UpstreamError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface for UpstreamError
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gateway failed with HTTP %d: %s", e.StatusCode, e.Body)
}

// Call describes one outbound JSON request
type Call struct {
	Operation string // Metric and log label, e.g. stk_push
	Method    string
	URL       string
	Header    http.Header
	Body      any // Marshalled to JSON when not nil
	// Accept lets an adapter claim a non-2xx answer as a normal response,
	// e.g. a status endpoint that reports "still processing" with HTTP 500
	Accept func(status int, body []byte) bool
}

// Response is a raw gateway answer
type Response struct {
	StatusCode int
	Body       []byte
}

// Decode unmarshals the body into out
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}

// Client sends JSON requests to one gateway through its circuit breaker
type Client struct {
	gateway  string
	http     *http.Client
	breakers *BreakerSet
	recorder CallRecorder
	logger   coreport.Logger
}

// NewClient creates a client. recorder may be nil.
func NewClient(gateway string, httpClient *http.Client, breakers *BreakerSet, recorder CallRecorder, logger coreport.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		gateway:  gateway,
		http:     httpClient,
		breakers: breakers,
		recorder: recorder,
		logger:   logger.With(map[string]any{"gateway": gateway}),
	}
}

// Do sends the call. 4xx answers return *RejectedError, 5xx answers *UpstreamError,
// and an open breaker ErrGatewayUnavailable without touching the network.
func (c *Client) Do(ctx context.Context, call Call) (*Response, error) {
	var payload []byte
	if call.Body != nil {
		var err error
		if payload, err = json.Marshal(call.Body); err != nil {
			return nil, fmt.Errorf("encode %s request: %w", call.Operation, err)
		}
	}

	var resp *Response
	err := c.breakers.Execute(c.gateway, func() error {
		var sendErr error
		resp, sendErr = c.send(ctx, call, payload)
		return sendErr
	})
	if err != nil {
		if errors.Is(err, errs.ErrGatewayUnavailable) {
			c.logger.Warn("Gateway call short-circuited", map[string]any{"operation": call.Operation})
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, call Call, payload []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", call.Operation, err)
	}
	for key, values := range call.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	httpResp, err := c.http.Do(req)
	if err != nil {
		c.record(call.Operation, 0, start)
		return nil, fmt.Errorf("send %s request: %w", call.Operation, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	c.record(call.Operation, httpResp.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", call.Operation, err)
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Body: body}
	switch {
	case httpResp.StatusCode < 300:
		return resp, nil
	case call.Accept != nil && call.Accept(httpResp.StatusCode, body):
		return resp, nil
	case httpResp.StatusCode < 500:
		return nil, &RejectedError{StatusCode: httpResp.StatusCode, Body: snippet(body)}
	default:
		c.logger.Warn("Gateway returned server error", map[string]any{
			"operation": call.Operation,
			"status":    httpResp.StatusCode,
		})
		return nil, &UpstreamError{StatusCode: httpResp.StatusCode, Body: snippet(body)}
	}
}

func (c *Client) record(operation string, status int, start time.Time) {
	if c.recorder != nil {
		c.recorder.GatewayCall(c.gateway, operation, status, time.Since(start))
	}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 256 {
		return s[:256]
	}
	return s
}
