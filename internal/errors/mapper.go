package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DuplicateName wraps a registration collision.
func DuplicateName(name string) error {
	return fmt.Errorf("function %q already registered: %w", name, ErrDuplicateName)
}

// UnknownFunction wraps a dispatch against an unregistered name.
func UnknownFunction(name string) error {
	return fmt.Errorf("function %q is not registered: %w", name, ErrUnknownFunction)
}

// InvalidArgument wraps a validation failure, naming the offending parameter.
func InvalidArgument(param, reason string) error {
	return fmt.Errorf("parameter %q %s: %w", param, reason, ErrInvalidArgument)
}

// DataAccess wraps an infrastructure failure in the store.
func DataAccess(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %v: %w", message, err, ErrDataAccess)
	}
	return fmt.Errorf("%s: %w", message, ErrDataAccess)
}

// ModelUnavailable wraps a provider outage or timeout.
func ModelUnavailable(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %v: %w", message, err, ErrModelUnavailable)
	}
	return fmt.Errorf("%s: %w", message, ErrModelUnavailable)
}

// MapModelError maps a provider error into the taxonomy. Context cancellation
// propagates as-is so callers can distinguish a departed client from an outage.
func MapModelError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ModelUnavailable("completion timed out", err)
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "timeout"), strings.Contains(errStr, "deadline exceeded"):
		return ModelUnavailable("completion timed out", err)
	case strings.Contains(errStr, "rate limit"), strings.Contains(errStr, "quota"), strings.Contains(errStr, "too many requests"):
		return ModelUnavailable("provider rate limited", err)
	case strings.Contains(errStr, "network"), strings.Contains(errStr, "connection"), strings.Contains(errStr, "unreachable"):
		return ModelUnavailable("provider unreachable", err)
	default:
		return ModelUnavailable("completion failed", err)
	}
}

// MapStoreError maps a driver or lookup error into the taxonomy. A store
// timeout is a data access failure, not a missing entity.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, ErrDataAccess) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DataAccess("store lookup timed out", err)
	}
	return DataAccess("store lookup failed", err)
}
