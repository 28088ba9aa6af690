package client

import (
	"context"

	"github.com/hyw-webpics/webpics/client/internal/api"
)

// AuthService groups account endpoints under /auth.
type AuthService struct{ s api.Sender }

// Register creates a user account.
func (a *AuthService) Register(ctx context.Context, username, password string) (*RegisterResponse, error) {
	return api.Register(ctx, a.s, username, password)
}

// Login exchanges credentials for a bearer token. The client does not store
// the token; hand it to whatever backs the TokenProvider.
func (a *AuthService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	return api.Login(ctx, a.s, username, password)
}

// Me returns the user the current bearer token belongs to.
func (a *AuthService) Me(ctx context.Context) (*User, error) {
	return api.Me(ctx, a.s)
}
