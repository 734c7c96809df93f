package secretkey

import "errors"

var (
	ErrMissingKey       = errors.New("secret key is empty")
	ErrInvalidKey       = errors.New("secret key is not valid base32")
	ErrFailedToGenerate = errors.New("failed to generate secret key")
)
