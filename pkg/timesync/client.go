package timesync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// maxBodySize bounds how much of the response is read. An epoch millisecond
// timestamp needs far less.
const maxBodySize = 64

type config struct {
	httpClient  *http.Client
	timeout     time.Duration
	maxRetries  uint64
	backoffBase time.Duration
	logger      *slog.Logger
}

func defaultConfig() *config {
	return &config{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		timeout:     5 * time.Second,
		maxRetries:  2,
		backoffBase: 500 * time.Millisecond,
	}
}

// Client measures the offset between a remote clock and the local one using
// the time correction endpoints embedded in TOTP credentials.
// Zero value is not usable; use New to create instances.
type Client struct {
	cfg *config
}

// New returns a configured Client.
func New(opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}
	return &Client{cfg: cfg}
}

// Offset queries rawURL for the server's current time and returns how far
// the local clock deviates from it. Add the result to time.Now when deriving
// or validating codes on a host with a drifting clock.
//
// Transient failures (network errors, timeouts, 5xx and rate-limit statuses)
// are retried with Fibonacci backoff; other failures surface immediately.
func (c *Client) Offset(ctx context.Context, rawURL string) (time.Duration, error) {
	if err := validateURL(rawURL); err != nil {
		return 0, err
	}

	var offset time.Duration
	backoff := retry.WithMaxRetries(c.cfg.maxRetries, retry.NewFibonacci(c.cfg.backoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		sample, err := c.fetchOffset(ctx, rawURL)
		if err != nil {
			c.cfg.logger.DebugContext(ctx, "time sample failed",
				slog.String("url", rawURL),
				slog.Any("error", err),
			)
			return err
		}
		offset = sample
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.cfg.logger.DebugContext(ctx, "clock offset measured",
		slog.String("url", rawURL),
		slog.Duration("offset", offset),
	)
	return offset, nil
}

// fetchOffset takes a single sample. The request timeout is layered on top
// of the parent context so both constraints hold.
func (c *Client) fetchOffset(ctx context.Context, rawURL string) (time.Duration, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", "otpkit-timesync/1.0")

	start := time.Now()
	resp, err := c.cfg.httpClient.Do(req)
	rtt := time.Since(start)
	if err != nil {
		// Network failures and timeouts may clear on a later attempt.
		return 0, retry.RetryableError(fmt.Errorf("%w: %w", ErrSyncFailed, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		if isTemporaryStatus(resp.StatusCode) {
			return 0, retry.RetryableError(statusErr)
		}
		return 0, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		// A read cut short by the connection may clear on a later attempt.
		return 0, retry.RetryableError(fmt.Errorf("%w: %w", ErrSyncFailed, err))
	}
	server, err := parseServerTime(body, resp.Header.Get("Date"))
	if err != nil {
		return 0, err
	}

	// The server stamped its reply somewhere inside the round trip; the
	// midpoint is the best local estimate of that moment.
	local := start.Add(rtt / 2)
	return server.Sub(local), nil
}

// validateURL restricts endpoints to absolute http(s) URLs.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

// isTemporaryStatus reports whether a non-2xx status is worth retrying.
// Rate limiting and server-side failures may clear; other client errors
// will not change between attempts.
func isTemporaryStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return true
	}
	return statusCode >= 500
}

// parseServerTime reads the endpoint's idea of "now": a Unix epoch
// millisecond body, falling back to the HTTP Date header for endpoints that
// return no usable payload.
func parseServerTime(body []byte, date string) (time.Time, error) {
	if text := strings.TrimSpace(string(body)); text != "" {
		if msec, err := strconv.ParseInt(text, 10, 64); err == nil {
			return time.UnixMilli(msec), nil
		}
	}
	if date != "" {
		if stamp, err := http.ParseTime(date); err == nil {
			return stamp, nil
		}
	}
	return time.Time{}, ErrBadServerTime
}
