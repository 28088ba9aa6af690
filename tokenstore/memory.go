package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMemory returns a Memory seeded with vals.
func NewMemory(vals map[string]string) *Memory {
	m := &Memory{vals: make(map[string]string, len(vals))}
	for k, v := range vals {
		m.vals[k] = v
	}
	return m
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vals == nil {
		m.vals = make(map[string]string)
	}
	m.vals[key] = value
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}

// Token returns the stored bearer token, or "" when none is stored.
func (m *Memory) Token(ctx context.Context) (string, error) { return tokenOf(ctx, m) }
