package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the webfront needs to run. The backend API is the
// only external collaborator; everything else is presentation.
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":3000"`

	// APIBaseURL is the backend origin plus the /api prefix,
	// e.g. http://localhost:5000/api.
	APIBaseURL string `envconfig:"API_BASE_URL" required:"true"`

	// PlaceholderImage is shown wherever a product has no image_url.
	PlaceholderImage string `envconfig:"PLACEHOLDER_IMAGE" default:"https://via.placeholder.com/300x200?text=Sem+Imagem"`

	// RedirectDelay is how long a login/register success message stays on
	// screen before the page navigates away.
	RedirectDelay time.Duration `envconfig:"REDIRECT_DELAY" default:"1s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	var cfg Config
	if err := envconfig.Process("WEBFRONT", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_BASE_URL %q is not an absolute URL", cfg.APIBaseURL)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return &cfg, nil
}
