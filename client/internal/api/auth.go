package api

import (
	"context"
	"net/http"

	"github.com/hyw-webpics/webpics/client/internal/types"
)

// Register creates a new user account. Credential shape is validated by the server.
func Register(ctx context.Context, s Sender, username, password string) (*types.RegisterResponse, error) {
	if err := checkContext(ctx, http.MethodPost, "/auth/register"); err != nil {
		return nil, err
	}
	var out types.RegisterResponse
	err := s.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   types.Credentials{Username: username, Password: password},
		Scope:  ScopePublic,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token. Persisting the token is
// the caller's job.
func Login(ctx context.Context, s Sender, username, password string) (*types.AuthResponse, error) {
	if err := checkContext(ctx, http.MethodPost, "/auth/login"); err != nil {
		return nil, err
	}
	var out types.AuthResponse
	err := s.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   types.Credentials{Username: username, Password: password},
		Scope:  ScopePublic,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the user owning the current bearer token.
func Me(ctx context.Context, s Sender) (*types.User, error) {
	if err := checkContext(ctx, http.MethodGet, "/auth/me"); err != nil {
		return nil, err
	}
	var out types.User
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Scope:  ScopeUser,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
