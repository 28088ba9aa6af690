package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings. Values are taken from environment variables
// with the prefix "WEBPICS_". Example: WEBPICS_BASE_URL=https://pics.example/api .
type Config struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3000/api"`

	// AdminToken is the X-Admin-Token capability value. Empty means
	// devmode.AdminToken.
	AdminToken string `envconfig:"ADMIN_TOKEN"`

	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"DEBUG"   default:"false"`

	// TokenFile is where the CLI persists the bearer token and admin session.
	// Empty means ~/.webpics/credentials.yaml.
	TokenFile string `envconfig:"TOKEN_FILE"`
}

// LoadConfig populates Config from environment variables (prefix WEBPICS_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("WEBPICS", &c)
}
