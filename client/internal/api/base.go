package api

import (
	"context"
	"net/url"

	"github.com/hyw-webpics/webpics/client/internal/errors"
	"github.com/hyw-webpics/webpics/client/internal/types"
)

// Scope tags a request with the capability it needs. The gateway resolves a
// scope to concrete headers; builders never set auth headers themselves.
type Scope int

const (
	// ScopePublic needs no credentials.
	ScopePublic Scope = iota
	// ScopeUser relies on the bearer token injected for every request.
	ScopeUser
	// ScopeAdminSession opens or closes the admin session itself.
	ScopeAdminSession
	// ScopeAdmin requires the admin capability header.
	ScopeAdmin
)

// String names the scope for logs and metrics.
func (s Scope) String() string {
	switch s {
	case ScopePublic:
		return "public"
	case ScopeUser:
		return "user"
	case ScopeAdminSession:
		return "admin_session"
	case ScopeAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Field is a plain multipart form field.
type Field struct {
	Name  string
	Value string
}

// Request describes one call. It is built per call and discarded afterwards.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded when non-nil. Ignored when Files is set.
	Body any
	// Files are sent as multipart parts under FileField, in order.
	Files     []types.File
	FileField string
	// Fields are appended to a multipart body after Files.
	Fields []Field
	Scope  Scope
}

// Multipart reports whether the request body is multipart/form-data.
func (r Request) Multipart() bool { return len(r.Files) > 0 }

// Sender executes a Request and decodes a 2xx JSON response into out
// (when out is non-nil). Non-2xx responses and transport failures are
// returned as *errors.RequestError.
type Sender interface {
	Send(ctx context.Context, req Request, out any) error
}

// checkContext reports an already finished ctx as a transport failure of
// method and path, so the error looks like one from a canceled round trip.
func checkContext(ctx context.Context, method, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTransportError(method, path, err)
	}
	return nil
}
