package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/hyw-webpics/webpics/client/internal/api"
	"github.com/hyw-webpics/webpics/devmode"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the HTTP gateway to the webpics backend. It is safe for
// concurrent use. Every request it sends passes through the bearer-token
// interceptor.
type Client struct {
	baseURL    string
	http       *http.Client
	rc         *resty.Client
	jar        http.CookieJar
	timeout    time.Duration
	tokens     TokenProvider
	adminToken string
	headers    map[string]string
	debug      bool
	log        zerolog.Logger

	Auth       *AuthService
	Categories *CategoryService
	Images     *ImageService
	Admin      *AdminService
}

// Client satisfies the request seam used by the facades.
var _ api.Sender = (*Client)(nil)

// New constructs a Client for the API rooted at baseURL (for example
// "http://localhost:3000/api"). Additional options can be provided via
// functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: 30 * time.Second},
		tokens:     noToken{},
		adminToken: devmode.AdminToken,
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		log: zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.jar != nil {
		c.http.Jar = c.jar
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	c.wrapTransport()

	c.rc = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetHeaders(c.headers).
		SetRetryCount(0).
		SetLogger(restyLogger{c.log})
	c.rc.OnBeforeRequest(c.injectBearerToken)

	c.Auth = &AuthService{s: c}
	c.Categories = &CategoryService{s: c}
	c.Images = &ImageService{s: c}
	c.Admin = &AdminService{s: c}
	return c, nil
}

// NewFromConfig constructs a Client from a loaded Config. Options passed
// here are applied after the ones derived from cfg. An empty AdminToken keeps
// the devmode placeholder.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	var base []Option
	if cfg.AdminToken != "" {
		base = append(base, WithAdminToken(cfg.AdminToken))
	}
	if cfg.Timeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.Timeout))
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// Cookies returns the cookies the jar would send on admin requests, such as
// the admin session cookie.
func (c *Client) Cookies() []*http.Cookie {
	u, err := parseURL(c.baseURL + "/admin/")
	if err != nil {
		return nil
	}
	return c.http.Jar.Cookies(u)
}

// SetCookies seeds the jar, for example with a persisted admin session.
func (c *Client) SetCookies(cookies []*http.Cookie) error {
	u, err := parseURL(c.baseURL)
	if err != nil {
		return err
	}
	c.http.Jar.SetCookies(u, cookies)
	return nil
}

// wrapTransport installs the request-id and (optionally) debug transports
// beneath resty.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	c.http.Transport = &requestIDTransport{base: base}
}

// restyLogger routes resty's internal messages to zerolog at debug level.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Debug().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
