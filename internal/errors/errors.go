package errors

import (
	"errors"
)

// Sentinel errors for the pitchside error taxonomy
var (
	// ErrDuplicateName - a function name registered twice (misconfiguration, fatal at startup)
	ErrDuplicateName = errors.New("duplicate function name")

	// ErrUnknownFunction - the model named a function that is not in the registry
	ErrUnknownFunction = errors.New("unknown function")

	// ErrInvalidArgument - the model supplied arguments that fail schema validation
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataAccess - the store is unreachable or holds a malformed record
	ErrDataAccess = errors.New("data access failure")

	// ErrModelUnavailable - the completion call timed out or the provider is down
	ErrModelUnavailable = errors.New("model unavailable")
)

// Kind returns the machine-readable error kind for observability.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateName):
		return "ErrDuplicateName"
	case errors.Is(err, ErrUnknownFunction):
		return "ErrUnknownFunction"
	case errors.Is(err, ErrInvalidArgument):
		return "ErrInvalidArgument"
	case errors.Is(err, ErrDataAccess):
		return "ErrDataAccess"
	case errors.Is(err, ErrModelUnavailable):
		return "ErrModelUnavailable"
	default:
		return "Unknown"
	}
}

// IsKind checks if error belongs to a specific taxonomy category.
func IsKind(err error, category error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, category)
}
