package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the target struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidPolicyFile is returned when a referenced policy file cannot be read or parsed
	ErrInvalidPolicyFile = errors.New("invalid policy file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
