package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options are applied before the request-id and debug transports are
// installed, so a transport supplied via WithHTTPClient ends up underneath
// them. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithTokenProvider sets where the bearer token is read from. Without it no
// Authorization header is ever sent.
func WithTokenProvider(p TokenProvider) Option {
	return func(c *Client) error {
		if p == nil {
			return errors.New("token provider cannot be nil")
		}
		c.tokens = p
		return nil
	}
}

// WithAdminToken sets the value sent in X-Admin-Token on admin-scoped calls.
// The backend's real admin check is the session cookie from Admin.Login;
// this value is only a capability marker.
func WithAdminToken(tok string) Option {
	return func(c *Client) error {
		if tok == "" {
			return errors.New("admin token cannot be empty")
		}
		c.adminToken = tok
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero. It applies regardless of option order.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient uses a copy of hc as the underlying http.Client. Its
// Transport and Jar become the base of the gateway stack; hc itself is never
// modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithCookieJar sets the jar holding the admin session cookie. It applies
// regardless of option order.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) error {
		if jar == nil {
			return errors.New("cookie jar cannot be nil")
		}
		c.jar = jar
		return nil
	}
}

// WithHeader adds a default header sent on every request. Authorization is
// owned by the token interceptor and cannot be set here.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if strings.EqualFold(key, HeaderAuthorization) {
			return errors.New("authorization header is set by the token provider")
		}
		c.headers[http.CanonicalHeaderKey(key)] = value
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include request bodies in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithLogger routes resty's internal diagnostics to l. The default is silent.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}
