package client

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDTransport tags each outgoing request with X-Request-ID unless the
// caller already set one.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(HeaderRequestID) != "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set(HeaderRequestID, uuid.NewString())
	return t.base.RoundTrip(cloned)
}
