package advisor

import (
	"errors"
	"fmt"
)

// ErrUnconfigured means no API key is present. Callers treat this as a
// prompt-to-configure condition, never as a fatal error.
var ErrUnconfigured = errors.New("advisor: no API key configured")

// RequestError wraps any transport, auth or generation-service failure.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("advisor: request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
