// Package errors provides the failure taxonomy for the client SDK.
// Every failure is annotated with the request that produced it and passed
// through to the caller unchanged otherwise.
package errors

import (
	"errors"
	"fmt"
)

// Kind tells callers at which stage a request failed.
type Kind int

const (
	// KindTransport means no response was received.
	// Examples: connection refused, DNS failure, deadline exceeded.
	KindTransport Kind = iota

	// KindHTTP means a response arrived with a non-2xx status.
	KindHTTP

	// KindEncoding means the request could not be built from the input.
	// Example: an upload part without a reader.
	KindEncoding
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "Transport"
	case KindHTTP:
		return "HTTP"
	case KindEncoding:
		return "Encoding"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// RequestError wraps a failure with the originating request.
type RequestError struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int    // HTTP status code (0 unless Kind is KindHTTP)
	Body       []byte // Raw response body
	Message    string // Value of the backend's "error" field, when present
	Err        error  // The original error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	switch {
	case e.Kind == KindHTTP && e.Message != "":
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	case e.Kind == KindHTTP:
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	default:
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match status sentinels such as ErrNotFound.
func (e *RequestError) Is(target error) bool {
	var s *statusError
	if errors.As(target, &s) {
		return e.Kind == KindHTTP && e.StatusCode == s.code
	}
	return false
}

// As returns the first RequestError in err's chain.
func As(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsKind reports whether err carries a RequestError of kind k.
func IsKind(err error, k Kind) bool {
	re, ok := As(err)
	return ok && re.Kind == k
}
