package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hyw-webpics/webpics/client/internal/api"
	"github.com/hyw-webpics/webpics/client/internal/errors"
	"github.com/hyw-webpics/webpics/client/internal/types"
)

// Header names set by the gateway.
const (
	HeaderAuthorization = "Authorization"
	HeaderAdminToken    = "X-Admin-Token"
	HeaderRequestID     = "X-Request-ID"
)

// Send executes a single request. It does not retry; a non-2xx status or a
// transport failure is returned as *RequestError annotated with the request's
// method and path. A 2xx JSON body is decoded into out when out is non-nil.
func (c *Client) Send(ctx context.Context, req api.Request, out any) error {
	start := time.Now()
	r := c.rc.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	for k, v := range c.headersFor(req.Scope) {
		r.SetHeader(k, v)
	}

	switch {
	case req.Multipart():
		parts := make([]*resty.MultipartField, 0, len(req.Files))
		for _, f := range req.Files {
			parts = append(parts, &resty.MultipartField{
				Param:       req.FileField,
				FileName:    f.Name,
				ContentType: types.ContentTypeFor(f),
				Reader:      f.Reader,
			})
		}
		r.SetMultipartFields(parts...)
		if len(req.Fields) > 0 {
			form := url.Values{}
			for _, fld := range req.Fields {
				form.Add(fld.Name, fld.Value)
			}
			r.SetFormDataFromValues(form)
		}
	case req.Body != nil:
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		observeRequest(req, "error", start)
		return errors.NewTransportError(req.Method, req.Path, err)
	}
	observeRequest(req, statusClass(resp.StatusCode()), start)

	if !resp.IsSuccess() {
		return errors.NewHTTPError(req.Method, req.Path, resp.StatusCode(), resp.Body())
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.Path, err)
	}
	return nil
}

// headersFor resolves a capability scope to concrete headers. This is the
// only place the admin capability value is attached.
func (c *Client) headersFor(scope api.Scope) map[string]string {
	switch scope {
	case api.ScopeAdmin:
		return map[string]string{HeaderAdminToken: c.adminToken}
	default:
		return nil
	}
}

// injectBearerToken is registered as resty's before-request hook and runs for
// every request. A non-empty token sets Authorization; otherwise the header
// is removed so it is never sent empty. No other header is touched.
func (c *Client) injectBearerToken(_ *resty.Client, r *resty.Request) error {
	tok, err := c.tokens.Token(r.Context())
	if err != nil {
		return fmt.Errorf("read auth token: %w", err)
	}
	if tok == "" {
		r.Header.Del(HeaderAuthorization)
		return nil
	}
	r.Header.Set(HeaderAuthorization, "Bearer "+tok)
	return nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return u, nil
}
