package client

import (
	"github.com/hyw-webpics/webpics/client/internal/errors"
)

// RequestError is returned for every failed call. It carries the request's
// method and path, plus status code and body for HTTP failures.
type RequestError = errors.RequestError

// Kind classifies a RequestError.
type Kind = errors.Kind

// Failure kinds.
const (
	KindTransport = errors.KindTransport
	KindHTTP      = errors.KindHTTP
	KindEncoding  = errors.KindEncoding
)

// Status sentinels; match with errors.Is.
var (
	ErrBadRequest   = errors.ErrBadRequest
	ErrUnauthorized = errors.ErrUnauthorized
	ErrForbidden    = errors.ErrForbidden
	ErrNotFound     = errors.ErrNotFound
	ErrConflict     = errors.ErrConflict
)

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool { return errors.IsKind(err, errors.KindTransport) }

// IsHTTP reports whether err is a non-2xx response.
func IsHTTP(err error) bool { return errors.IsKind(err, errors.KindHTTP) }

// IsEncoding reports whether err means the request could not be built.
func IsEncoding(err error) bool { return errors.IsKind(err, errors.KindEncoding) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if re, ok := errors.As(err); ok {
		return re.StatusCode
	}
	return 0
}
