package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// ID is an opaque resource identifier. The backend emits integer ids; callers
// treat them as strings and they are echoed into request paths verbatim.
// In JSON bodies a canonical integer is written as a number, anything else as
// a string.
type ID string

// String returns the identifier as-is.
func (id ID) String() string { return string(id) }

// MarshalJSON writes canonical decimal integers as JSON numbers so they match
// the backend's int64 fields. Other values, including "", stay strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// User represents an authenticated account
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

// Category groups approved images
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Image status values reported by the backend.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Image represents an uploaded image and its moderation state
type Image struct {
	ID           ID         `json:"id"`
	Filename     string     `json:"filename"`
	OriginalName string     `json:"original_name"`
	UploaderID   ID         `json:"uploader_id"`
	CategoryID   *ID        `json:"category_id"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
}

// Stats holds moderation counters for the admin dashboard
type Stats struct {
	TotalImages     int `json:"total_images"`
	PendingImages   int `json:"pending_images"`
	ApprovedImages  int `json:"approved_images"`
	TotalCategories int `json:"total_categories"`
}
