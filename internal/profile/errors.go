package profile

import "errors"

var (
	// ErrNotFound indicates the personal information file does not exist.
	ErrNotFound = errors.New("profile file not found")

	// ErrParse indicates the file exists but is not valid JSON.
	ErrParse = errors.New("profile file is not valid JSON")

	// ErrInvalid indicates the file parsed but required fields are missing
	// or empty. A partial profile is never used.
	ErrInvalid = errors.New("profile is incomplete")
)
