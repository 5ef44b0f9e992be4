package domain

import "errors"

var (
	ErrConfigIO          = errors.New("settings file unavailable")
	ErrUnknownSetting    = errors.New("unknown setting")
	ErrMissingCredential = errors.New("email and password are required")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrPageFetch         = errors.New("page fetch failed")
	ErrNoStream          = errors.New("no video url found in page")
	ErrToolMissing       = errors.New("download tool not available")
	ErrToolFailed        = errors.New("download tool exited with error")
	ErrInvalidURL        = errors.New("url must start with http:// or https://")
	ErrInvalidFilename   = errors.New("filename contains invalid characters")
)
