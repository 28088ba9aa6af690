// Package devmode provides shared configuration for development mode.
package devmode

// AdminToken is the admin capability value the development backend accepts in
// the X-Admin-Token header. It is a placeholder: the backend's real check is
// the admin_session cookie issued by /admin/login. Never rely on this value
// for production authorization.
const AdminToken = "admin"

// BaseURL is the API root of a locally running backend.
const BaseURL = "http://localhost:3000/api"
