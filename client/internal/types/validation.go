package types

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNoFiles is returned when an upload is attempted with an empty sequence
var ErrNoFiles = errors.New("no files to upload")

// ErrNilReader is returned when a File carries no content reader
var ErrNilReader = errors.New("file has no reader")

// ErrNoFileName is returned when a File has an empty name
var ErrNoFileName = errors.New("file has no name")

// ------------------------------
// Upload validation
// ------------------------------

// ValidateFiles checks every upload part and reports all problems at once.
// Credential shape and ids are left to the server.
func ValidateFiles(files []File) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	var result *multierror.Error
	for i, f := range files {
		if strings.TrimSpace(f.Name) == "" {
			result = multierror.Append(result, fmt.Errorf("file %d: %w", i, ErrNoFileName))
		}
		if f.Reader == nil {
			result = multierror.Append(result, fmt.Errorf("file %d (%s): %w", i, f.Name, ErrNilReader))
		}
	}
	return result.ErrorOrNil()
}

// ContentTypeFor returns f.ContentType, or a type derived from the file
// extension, or application/octet-stream.
func ContentTypeFor(f File) string {
	if f.ContentType != "" {
		return f.ContentType
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
