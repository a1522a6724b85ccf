package client

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/spotlease/stripe-go/metrics"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient Doer
	timeout    time.Duration
	logger     zerolog.Logger
	metrics    metrics.Recorder
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout: 30 * time.Second,
		logger:  zerolog.Nop(),
		metrics: metrics.Noop{},
	}
}

// WithHTTPClient sets the transport used to send requests. When set,
// WithTimeout has no effect; configure the timeout on the transport itself.
func WithHTTPClient(doer Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = doer
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger sets the logger for debug request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMetrics sets the recorder for request counts and latencies.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(o *clientOptions) {
		if recorder != nil {
			o.metrics = recorder
		}
	}
}
