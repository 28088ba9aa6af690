package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// statusError is a sentinel matched by RequestError.Is on status code.
type statusError struct{ code int }

func (s *statusError) Error() string {
	return fmt.Sprintf("HTTP %d %s", s.code, http.StatusText(s.code))
}

// Status sentinels for errors.Is.
var (
	ErrBadRequest   error = &statusError{http.StatusBadRequest}
	ErrUnauthorized error = &statusError{http.StatusUnauthorized}
	ErrForbidden    error = &statusError{http.StatusForbidden}
	ErrNotFound     error = &statusError{http.StatusNotFound}
	ErrConflict     error = &statusError{http.StatusConflict}
)

// NewHTTPError creates an error for a non-2xx response. The backend's
// {"error": "..."} message is extracted when the body has that shape.
func NewHTTPError(method, path string, statusCode int, body []byte) *RequestError {
	var eb struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &eb)
	return &RequestError{
		Kind:       KindHTTP,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
		Message:    eb.Error,
		Err:        fmt.Errorf("unexpected status %d", statusCode),
	}
}

// NewTransportError creates an error for a request that got no response.
func NewTransportError(method, path string, err error) *RequestError {
	return &RequestError{
		Kind:   KindTransport,
		Method: method,
		Path:   path,
		Err:    err,
	}
}

// NewEncodingError creates an error for input that could not be encoded.
func NewEncodingError(method, path string, err error) *RequestError {
	return &RequestError{
		Kind:   KindEncoding,
		Method: method,
		Path:   path,
		Err:    err,
	}
}
