package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDataUnavailable reports that the upstream source could not be reached or answered badly.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrNotFound reports a valid identifier with no record behind it.
	ErrNotFound = errors.New("not found")
)

// RateLimitError captures rate limit responses from upstream providers.
// It classifies as ErrDataUnavailable.
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

func (e *RateLimitError) Unwrap() error {
	return ErrDataUnavailable
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// Unavailable wraps cause so that it classifies as ErrDataUnavailable while keeping its message.
func Unavailable(provider string, cause error) error {
	if cause == nil {
		return nil
	}
	if errors.Is(cause, ErrDataUnavailable) || errors.Is(cause, ErrNotFound) {
		return cause
	}
	return fmt.Errorf("%s: %w: %w", provider, ErrDataUnavailable, cause)
}
