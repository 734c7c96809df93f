package keyuri

import "errors"

// Validation is fail-fast: the first failing check is the error surfaced and
// no partially valid Key is ever returned. Compare with errors.Is.
var (
	ErrInvalidScheme            = errors.New("key URI scheme must be otpauth")
	ErrInvalidType              = errors.New("only totp key URIs are supported")
	ErrMissingSecret            = errors.New("missing secret")
	ErrInvalidSecretEncoding    = errors.New("secret is not valid base32")
	ErrInvalidAlgorithm         = errors.New("algorithm must be SHA1, SHA256 or SHA512")
	ErrInvalidDigits            = errors.New("digits must be an integer")
	ErrInvalidPeriod            = errors.New("period must be an integer")
	ErrInvalidTimeCorrectionURL = errors.New("time correction URL must be an absolute http(s) URL")
	ErrMissingLabel             = errors.New("missing label")
	ErrInvalidLegacySettings    = errors.New("legacy settings must have at least 3 entries")
	ErrNilArgument              = errors.New("nil settings")
)
