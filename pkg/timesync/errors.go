package timesync

import "errors"

var (
	ErrInvalidURL       = errors.New("invalid time endpoint URL")
	ErrSyncFailed       = errors.New("failed to reach time endpoint")
	ErrUnexpectedStatus = errors.New("time endpoint returned unexpected status")
	ErrBadServerTime    = errors.New("time endpoint returned an unreadable timestamp")
)
