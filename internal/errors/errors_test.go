package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"duplicate name", DuplicateName("get_team_insights"), "ErrDuplicateName"},
		{"unknown function", UnknownFunction("get_weather"), "ErrUnknownFunction"},
		{"invalid argument", InvalidArgument("team_name", "is required"), "ErrInvalidArgument"},
		{"data access", DataAccess("query failed", nil), "ErrDataAccess"},
		{"model unavailable", ModelUnavailable("timed out", nil), "ErrModelUnavailable"},
		{"foreign error", errors.New("something else"), "Unknown"},
		{"wrapped sentinel", fmt.Errorf("outer: %w", ErrDataAccess), "ErrDataAccess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestInvalidArgument_NamesParameter(t *testing.T) {
	err := InvalidArgument("team_name", "is required")
	assert.Contains(t, err.Error(), "team_name")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMapModelError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", context.DeadlineExceeded, ErrModelUnavailable},
		{"timeout text", errors.New("request timeout after 30s"), ErrModelUnavailable},
		{"rate limit", errors.New("429: rate limit exceeded"), ErrModelUnavailable},
		{"network", errors.New("connection refused"), ErrModelUnavailable},
		{"anything else", errors.New("internal server error"), ErrModelUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, MapModelError(tt.in), tt.want)
		})
	}

	assert.Nil(t, MapModelError(nil))
	// Cancellation is the caller's problem, not an outage.
	assert.Equal(t, context.Canceled, MapModelError(context.Canceled))
}

func TestMapStoreError(t *testing.T) {
	assert.Nil(t, MapStoreError(nil))
	assert.Equal(t, context.Canceled, MapStoreError(context.Canceled))

	deadline := MapStoreError(context.DeadlineExceeded)
	assert.ErrorIs(t, deadline, ErrDataAccess)
	assert.Contains(t, deadline.Error(), "timed out")

	// Errors already in the taxonomy pass through without re-wrapping.
	wrapped := DataAccess("malformed record", nil)
	assert.Equal(t, wrapped, MapStoreError(wrapped))

	assert.ErrorIs(t, MapStoreError(errors.New("disk I/O error")), ErrDataAccess)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(UnknownFunction("get_weather"), ErrUnknownFunction))
	assert.False(t, IsKind(UnknownFunction("get_weather"), ErrInvalidArgument))
	assert.False(t, IsKind(nil, ErrUnknownFunction))
}
