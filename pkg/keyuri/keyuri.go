package keyuri

import "strings"

const (
	schemeOTPAuth = "otpauth"
	typeTOTP      = "totp"
)

// Defaults applied when a key URI omits the corresponding query parameter.
const (
	DefaultAlgorithm = AlgorithmSHA1
	DefaultDigits    = 6
	DefaultPeriod    = 30
)

// Key is an immutable TOTP credential descriptor.
// The zero value is not usable; obtain instances from Parse, Migrate, or New.
type Key struct {
	secret            string
	algorithm         Algorithm
	digits            int
	period            int
	label             string
	issuer            string
	timeCorrectionURL string
}

// Type returns the OTP type segment of the URI. Only "totp" is supported.
func (k Key) Type() string { return typeTOTP }

// Secret returns the shared secret in unpadded Base32.
func (k Key) Secret() string { return k.secret }

// Algorithm returns the HMAC hash function used to derive codes.
func (k Key) Algorithm() Algorithm { return k.algorithm }

// Digits returns the configured code length. Values outside the usual 6..8
// range are preserved exactly as configured.
func (k Key) Digits() int { return k.digits }

// Period returns the code rotation interval in seconds.
func (k Key) Period() int { return k.period }

// Label identifies the account the credential belongs to.
func (k Key) Label() string { return k.label }

// Issuer names the service that issued the credential. May be empty.
func (k Key) Issuer() string { return k.issuer }

// TimeCorrectionURL returns the clock synchronization endpoint, or an empty
// string when the credential does not carry one.
func (k Key) TimeCorrectionURL() string { return k.timeCorrectionURL }

// HasTimeCorrection reports whether the credential carries a clock
// synchronization endpoint.
func (k Key) HasTimeCorrection() bool { return k.timeCorrectionURL != "" }

// Option configures optional Key fields for New.
type Option func(*keyConfig)

type keyConfig struct {
	algorithm         Algorithm
	digits            int
	period            int
	timeCorrectionURL string
}

// WithAlgorithm selects the HMAC hash function. Default is SHA1.
// New rejects values outside the defined Algorithm constants.
func WithAlgorithm(algorithm Algorithm) Option {
	return func(cfg *keyConfig) { cfg.algorithm = algorithm }
}

// WithDigits sets the code length. Default is 6.
func WithDigits(digits int) Option {
	return func(cfg *keyConfig) { cfg.digits = digits }
}

// WithPeriod sets the rotation interval in seconds. Default is 30.
func WithPeriod(period int) Option {
	return func(cfg *keyConfig) { cfg.period = period }
}

// WithTimeCorrectionURL attaches a clock synchronization endpoint.
// The URL must be absolute with an http or https scheme.
func WithTimeCorrectionURL(rawURL string) Option {
	return func(cfg *keyConfig) { cfg.timeCorrectionURL = rawURL }
}

// New assembles a Key from explicit values, applying the same field
// validation as Parse. The secret may carry trailing Base32 padding and is
// stored with the padding stripped. An empty issuer is allowed; the label is
// required.
func New(issuer, label, secret string, opts ...Option) (Key, error) {
	cfg := keyConfig{
		algorithm: DefaultAlgorithm,
		digits:    DefaultDigits,
		period:    DefaultPeriod,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	normalized, err := validateSecret(secret)
	if err != nil {
		return Key{}, err
	}
	if !cfg.algorithm.valid() {
		return Key{}, ErrInvalidAlgorithm
	}
	if cfg.timeCorrectionURL != "" {
		if err := validateTimeCorrectionURL(cfg.timeCorrectionURL); err != nil {
			return Key{}, err
		}
	}
	if strings.TrimSpace(label) == "" {
		return Key{}, ErrMissingLabel
	}

	return Key{
		secret:            normalized,
		algorithm:         cfg.algorithm,
		digits:            cfg.digits,
		period:            cfg.period,
		label:             label,
		issuer:            issuer,
		timeCorrectionURL: cfg.timeCorrectionURL,
	}, nil
}
