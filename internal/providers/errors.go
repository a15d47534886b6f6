package providers

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable is returned when a provider is missing or short-circuited.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrNoStats means the upstream answered but had no rows for the player.
	ErrNoStats = errors.New("no stats available")
)

// Error kinds used for logging and metrics.
const (
	KindNetwork     = "network"
	KindRateLimit   = "rate_limit"
	KindSchema      = "schema"
	KindField       = "field"
	KindUnavailable = "unavailable"
	KindNoStats     = "no_stats"
	KindCanceled    = "canceled"
	KindUnknown     = "unknown"
)

// UpstreamError captures transport failures and non-2xx responses.
type UpstreamError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Provider, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// SchemaError means the payload did not have the expected resultSets shape.
type SchemaError struct {
	Endpoint string
	Reason   string
	Err      error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid response: %s: %v", e.Endpoint, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid response: %s", e.Endpoint, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// FieldError means a single row field was missing or had the wrong type.
type FieldError struct {
	Endpoint string
	Field    string
	Row      int
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: row %d field %s: %v", e.Endpoint, e.Row, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// ErrorKind classifies err into one of the Kind* constants.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var (
		rlErr     *RateLimitError
		upErr     *UpstreamError
		schemaErr *SchemaError
		fieldErr  *FieldError
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.As(err, &rlErr):
		return KindRateLimit
	case errors.As(err, &fieldErr):
		return KindField
	case errors.As(err, &schemaErr):
		return KindSchema
	case errors.As(err, &upErr):
		return KindNetwork
	case errors.Is(err, ErrProviderUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrNoStats):
		return KindNoStats
	default:
		return KindUnknown
	}
}
