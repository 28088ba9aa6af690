// Package tokenstore persists the small amount of client-side state the
// webpics client needs between runs: the user's bearer token and the admin
// session cookie. Stores satisfy client.TokenProvider through Token.
package tokenstore

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	KeyToken        = "token"
	KeyAdminSession = "admin_session"
)

// ErrEmptyKey is returned when a key is empty.
var ErrEmptyKey = errors.New("tokenstore: empty key")

// Store is a string key-value store. Get reports found=false for a missing
// key without an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// tokenOf reads KeyToken from s; a missing key is an empty token.
func tokenOf(ctx context.Context, s Store) (string, error) {
	v, _, err := s.Get(ctx, KeyToken)
	return v, err
}
