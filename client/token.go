package client

import "context"

// TokenProvider supplies the bearer token for outgoing requests. It is read
// on every request and never written by the client. An empty token means no
// user is logged in.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenProvider.
type TokenFunc func(ctx context.Context) (string, error)

// Token calls f.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken returns a provider that always yields tok.
func StaticToken(tok string) TokenProvider {
	return TokenFunc(func(context.Context) (string, error) { return tok, nil })
}

type noToken struct{}

func (noToken) Token(context.Context) (string, error) { return "", nil }
