package client

import "github.com/hyw-webpics/webpics/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Identifiers and inputs
	ID            = types.ID
	CategoryInput = types.CategoryInput
	File          = types.File
	ImageFilter   = types.ImageFilter

	// Domain entities
	User     = types.User
	Category = types.Category
	Image    = types.Image
	Stats    = types.Stats

	// Responses
	Message          = types.Message
	AuthResponse     = types.AuthResponse
	RegisterResponse = types.RegisterResponse
	ImagePage        = types.ImagePage
	PendingImages    = types.PendingImages
	UploadedImage    = types.UploadedImage
	UploadResponse   = types.UploadResponse
)

// Image status values.
const (
	StatusPending  = types.StatusPending
	StatusApproved = types.StatusApproved
)

// IDs converts plain strings to a slice of ID, preserving order.
func IDs(ss ...string) []ID {
	out := make([]ID, len(ss))
	for i, s := range ss {
		out[i] = ID(s)
	}
	return out
}
