package totp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg     Config
	loadErr error
	once    sync.Once
)

// Config carries process-wide settings read from the environment.
type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required"` // Base64-encoded AES-256 key for secrets at rest
}

// LoadConfig reads the configuration from the environment exactly once per
// process and returns the cached result on subsequent calls. The required
// tag rejects an unset variable; a set-but-empty value is rejected here.
func LoadConfig() (Config, error) {
	once.Do(func() {
		var parsed Config
		if loadErr = env.Parse(&parsed); loadErr != nil {
			return
		}
		if parsed.EncryptionKey == "" {
			loadErr = ErrEncryptionKeyNotSet
			return
		}
		cfg = parsed
	})
	if loadErr != nil {
		return Config{}, loadErr
	}
	return cfg, nil
}
