package types

// ------------------------------
// Response Types
// ------------------------------

// Message is the generic acknowledgement body returned by mutations
type Message struct {
	Message string `json:"message"`
}

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterResponse is returned by a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ImagePage wraps paginated image listings
type ImagePage struct {
	Images []Image `json:"images"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// PendingImages wraps the moderation queue
type PendingImages struct {
	Images []Image `json:"images"`
	Count  int     `json:"count"`
}

// UploadedImage identifies a freshly stored upload
type UploadedImage struct {
	ID       ID     `json:"id"`
	Filename string `json:"filename"`
}

// UploadResponse is returned by the upload endpoint
type UploadResponse struct {
	Message string        `json:"message"`
	Image   UploadedImage `json:"image"`
}

// ErrorBody is the failure shape used by the backend: {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}
