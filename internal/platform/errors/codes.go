// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Record errors
	CodeDuplicateID Code = "DUPLICATE_IDENTIFIER"
	CodeNotFound    Code = "NOT_FOUND"

	// User errors
	CodeUserEmptyEmail   Code = "USER_EMPTY_EMAIL"
	CodeUserInvalidEmail Code = "USER_INVALID_EMAIL"

	// Storage errors
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)
