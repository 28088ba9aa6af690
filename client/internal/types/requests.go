package types

import (
	"io"
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// Credentials holds a username/password pair for register and login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginRequest holds the shared admin password
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// CategoryInput holds parameters for creating or updating a category
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ApproveRequest is the body of a single approval
type ApproveRequest struct {
	CategoryID ID `json:"category_id"`
}

// BulkApproveRequest is the body of a bulk approval. IDs keep caller order.
type BulkApproveRequest struct {
	IDs        []ID `json:"ids"`
	CategoryID ID   `json:"category_id"`
}

// BulkDeleteRequest is the body of a bulk delete. IDs keep caller order.
type BulkDeleteRequest struct {
	IDs []ID `json:"ids"`
}

// File is one upload part. Reader is consumed when the request is sent.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// ImageFilter narrows the admin image listing. Zero values are not sent.
type ImageFilter struct {
	Page   int
	Limit  int
	Status string
	// Extra is passed through to the query string unchanged.
	Extra map[string]string
}

// Values renders the filter as query parameters.
func (f ImageFilter) Values() url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	for k, v := range f.Extra {
		q.Set(k, v)
	}
	return q
}
