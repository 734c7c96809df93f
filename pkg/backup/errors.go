package backup

import "errors"

var (
	ErrEmptyArchive     = errors.New("archive contains no credentials")
	ErrMalformedArchive = errors.New("failed to parse archive")
	ErrEmptyEntry       = errors.New("entry has no credential data")
	ErrExportFailed     = errors.New("failed to encode archive")
)
