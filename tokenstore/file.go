package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns ~/.webpics/credentials.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".webpics", "credentials.yaml"), nil
}

// File is a Store backed by a YAML map on an afero filesystem. Every Get
// re-reads the file so values written by another process are picked up.
// A missing file reads as an empty store.
type File struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex // serializes read-modify-write within this process
}

// NewFile returns a File store at path on fsys. A nil fsys means the OS filesystem.
func NewFile(fsys afero.Fs, path string) *File {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &File{fs: fsys, path: path}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get implements Store.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	vals, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := vals[key]
	return v, ok, nil
}

// Set implements Store.
func (f *File) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	vals, err := f.load()
	if err != nil {
		return err
	}
	vals[key] = value
	return f.save(vals)
}

// Delete implements Store. Deleting the last key removes the file.
func (f *File) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	vals, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := vals[key]; !ok {
		return nil
	}
	delete(vals, key)
	if len(vals) == 0 {
		if err := f.fs.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", f.path, err)
		}
		return nil
	}
	return f.save(vals)
}

// Token returns the stored bearer token, or "" when none is stored.
func (f *File) Token(ctx context.Context) (string, error) { return tokenOf(ctx, f) }

func (f *File) load() (map[string]string, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	vals := map[string]string{}
	if err := yaml.Unmarshal(b, &vals); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return vals, nil
}

// save replaces the file atomically via a temp file and rename.
func (f *File) save(vals map[string]string) error {
	b, err := yaml.Marshal(vals)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
