package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError means no usable response arrived: DNS, dial, TLS, or timeout.
// Callers render a generic connectivity message for these.
type RequestError struct {
	Timeout bool
	Err     error
}

func (e *RequestError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a non-2xx response. Message carries the server's structured
// {"error": ...} text verbatim when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// DecodeError is a 2xx response whose body does not decode into the expected
// entity shape. A strict upgrade over trusting the wire.
type DecodeError struct {
	Entity string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Entity, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusUnauthorized
}

// IsValidation reports whether err is a non-401 4xx response; the server's
// message, when present, is suitable for direct display.
func IsValidation(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) &&
		ae.StatusCode >= 400 && ae.StatusCode < 500 &&
		ae.StatusCode != http.StatusUnauthorized
}

// IsServer reports whether err is a 5xx response.
func IsServer(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode >= 500
}

// IsUnavailable reports whether err is a transport-level failure (no
// response at all).
func IsUnavailable(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsTimeout reports whether err is specifically a timed-out request.
func IsTimeout(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Timeout
}
