package royalmail

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the environment-driven client settings. Variables carry the
// ROYALMAIL_ prefix, e.g. ROYALMAIL_CLIENT_ID.
type Config struct {
	ClientID     string        `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string        `envconfig:"CLIENT_SECRET" required:"true"`
	BaseURL      string        `envconfig:"BASE_URL"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT"`

	// The suppression switches, inverted so the zero value keeps the
	// default raise-on-error behaviour.
	SuppressTrackingErrors  bool `envconfig:"SUPPRESS_TRACKING_ERRORS"`
	SuppressTechnicalErrors bool `envconfig:"SUPPRESS_TECHNICAL_ERRORS"`
}

// NewFromEnv constructs a Client from ROYALMAIL_* environment variables.
// Explicit options are applied after the environment-derived ones and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("royalmail", &cfg); err != nil {
		return nil, errors.Wrap(err, "royalmail config")
	}

	envOpts := make([]Option, 0, 4)
	if cfg.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPTimeout > 0 {
		envOpts = append(envOpts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.SuppressTrackingErrors {
		envOpts = append(envOpts, WithoutTrackingErrors())
	}
	if cfg.SuppressTechnicalErrors {
		envOpts = append(envOpts, WithoutTechnicalErrors())
	}

	c := New(cfg.ClientID, cfg.ClientSecret, append(envOpts, opts...)...)
	return c, nil
}
