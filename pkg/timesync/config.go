package timesync

import "time"

type Config struct {
	Timeout     time.Duration `env:"TIMESYNC_TIMEOUT" envDefault:"5s"`         // Timeout is the maximum duration for one sample request.
	MaxRetries  uint64        `env:"TIMESYNC_MAX_RETRIES" envDefault:"2"`      // MaxRetries is how many times a failed sample is retried.
	BackoffBase time.Duration `env:"TIMESYNC_BACKOFF_BASE" envDefault:"500ms"` // BackoffBase is the first Fibonacci backoff interval between retries.
}

// NewFromConfig creates a new Client from the provided Config.
// Only positive values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configOpts := make([]Option, 0, 3)

	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.MaxRetries > 0 {
		configOpts = append(configOpts, WithMaxRetries(cfg.MaxRetries))
	}
	if cfg.BackoffBase > 0 {
		configOpts = append(configOpts, WithBackoffBase(cfg.BackoffBase))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
