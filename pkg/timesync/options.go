package timesync

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the Client.
type Option func(*config)

// WithHTTPClient sets a custom HTTP client, e.g. one with a shared transport
// or a proxy. Panics if client is nil.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		if client == nil {
			panic("timesync: http client cannot be nil")
		}
		cfg.httpClient = client
	}
}

// WithTimeout sets the per-request timeout. Panics if timeout is not positive.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		if timeout <= 0 {
			panic("timesync: timeout must be positive")
		}
		cfg.timeout = timeout
	}
}

// WithMaxRetries sets how many times a failed sample is retried.
// Zero disables retries.
func WithMaxRetries(retries uint64) Option {
	return func(cfg *config) {
		cfg.maxRetries = retries
	}
}

// WithBackoffBase sets the first Fibonacci backoff interval between retries.
// Panics if base is not positive.
func WithBackoffBase(base time.Duration) Option {
	return func(cfg *config) {
		if base <= 0 {
			panic("timesync: backoff base must be positive")
		}
		cfg.backoffBase = base
	}
}

// WithLogger sets a logger for sampling diagnostics. Without it the client
// stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			panic("timesync: logger cannot be nil")
		}
		cfg.logger = logger
	}
}
