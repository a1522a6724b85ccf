package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spotlease/stripe-go/metrics"
)

const metricRequest = "request"

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes requests against the API.
type Client struct {
	cfg        *Config
	httpClient Doer
	logger     zerolog.Logger
	metrics    metrics.Recorder
}

// New creates a client for cfg. The client keeps its own copy of cfg, so
// SetAccount on one client leaves cfg and other clients built from it alone.
func New(cfg *Config, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
	}

	if cfg != nil {
		cfg = cfg.Derive(cfg.Account())
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     options.logger,
		metrics:    options.metrics,
	}
}

// Config returns the configuration the client resolves requests with.
func (c *Client) Config() *Config {
	return c.cfg
}

// WithAccount returns a client that acts on behalf of the connected
// account id. It shares the receiver's transport, logger and metrics; the
// receiver keeps its own account.
func (c *Client) WithAccount(id string) *Client {
	derived := *c
	derived.cfg = c.cfg.Derive(id)
	return &derived
}

// SetAccount changes this client's default account. Not safe while
// requests are in flight; use WithAccount instead.
func (c *Client) SetAccount(id string) {
	c.cfg.SetAccount(id)
}

// Execute resolves req, sends it exactly once and decodes the response.
//
// The returned error is one of *EncodeError, *TransportError,
// *DecodeError or *APIError. Nothing is retried.
func Execute[T any](ctx context.Context, c *Client, req *Request[T]) (*T, error) {
	labels := map[string]string{metrics.LabelMethod: req.method}

	resolved, err := Resolve(c.cfg, req)
	if err != nil {
		labels[metrics.LabelOutcome] = metrics.OutcomeEncodeError
		c.metrics.IncCounter(metricRequest, labels)
		return nil, err
	}

	requestID := uuid.NewString()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.method).
		Str("path", req.path).
		Bool("connected_account", resolved.Headers.Has(HeaderAccount)).
		Msg("Sending Stripe API request")

	start := time.Now()
	status, body, err := c.send(ctx, resolved)
	elapsed := time.Since(start)
	if err != nil {
		labels[metrics.LabelOutcome] = metrics.OutcomeTransportError
		c.record(labels, elapsed)
		return nil, err
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", status).
		Dur("duration", elapsed).
		Msg("Received Stripe API response")

	out, err := dispatch[T](status, body)
	labels[metrics.LabelOutcome] = outcomeOf(err)
	c.record(labels, elapsed)
	return out, err
}

// Get executes a GET request for path.
func Get[T any](ctx context.Context, c *Client, path string, query any) (*T, error) {
	return Execute(ctx, c, NewGet[T](path, query))
}

// Post executes a POST request for path.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	return Execute(ctx, c, NewPost[T](path, body))
}

// Delete executes a DELETE request for path.
func Delete[T any](ctx context.Context, c *Client, path string, query any) (*T, error) {
	return Execute(ctx, c, NewDelete[T](path, query))
}

// send performs the HTTP round trip and reads the whole body.
func (c *Client) send(ctx context.Context, resolved *ResolvedRequest) (int, []byte, error) {
	var bodyReader io.Reader
	if resolved.Body != nil {
		bodyReader = bytes.NewReader(resolved.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, resolved.Method, resolved.URL, bodyReader)
	if err != nil {
		return 0, nil, &TransportError{Method: resolved.Method, URL: resolved.URL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for _, h := range resolved.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, &TransportError{Method: resolved.Method, URL: resolved.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Method: resolved.Method, URL: resolved.URL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return resp.StatusCode, body, nil
}

func (c *Client) record(labels map[string]string, elapsed time.Duration) {
	c.metrics.IncCounter(metricRequest, labels)
	c.metrics.ObserveLatency(metricRequest, elapsed, labels)
}

func outcomeOf(err error) string {
	switch err.(type) {
	case nil:
		return metrics.OutcomeSuccess
	case *APIError:
		return metrics.OutcomeAPIError
	default:
		return metrics.OutcomeDecodeError
	}
}
