package authgate

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	Secret           string        `env:"AUTHGATE_SECRET,required"`
	Issuer           string        `env:"AUTHGATE_ISSUER" envDefault:"authgate"`
	AccessTTL        time.Duration `env:"AUTHGATE_ACCESS_TTL" envDefault:"30m"`
	RefreshTTL       time.Duration `env:"AUTHGATE_REFRESH_TTL" envDefault:"168h"`
	RefreshPrefix    string        `env:"AUTHGATE_REFRESH_PREFIX" envDefault:"refresh_token"`
	RevocationPrefix string        `env:"AUTHGATE_BLACKLIST_PREFIX" envDefault:"blacklist"`
	RateLimitEnabled bool          `env:"AUTHGATE_RATE_LIMIT" envDefault:"false"`
	MaxLoginAttempts int           `env:"AUTHGATE_MAX_LOGIN_ATTEMPTS" envDefault:"10"`
	LoginCooldown    time.Duration `env:"AUTHGATE_LOGIN_COOLDOWN" envDefault:"15m"`
	AuditEnabled     bool          `env:"AUTHGATE_AUDIT" envDefault:"false"`
	MetricsEnabled   bool          `env:"AUTHGATE_METRICS" envDefault:"true"`
}

// ConfigFromEnv builds a Config from AUTHGATE_* environment variables,
// layered over [DefaultConfig]. AUTHGATE_SECRET is required; everything
// else has a default.
func ConfigFromEnv() (Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Token.Secret = []byte(ec.Secret)
	cfg.Token.Issuer = ec.Issuer
	cfg.Token.AccessTTL = ec.AccessTTL
	cfg.Token.RefreshTTL = ec.RefreshTTL
	cfg.Stores.RefreshPrefix = ec.RefreshPrefix
	cfg.Stores.RevocationPrefix = ec.RevocationPrefix
	cfg.RateLimit.Enabled = ec.RateLimitEnabled
	cfg.RateLimit.MaxLoginAttempts = ec.MaxLoginAttempts
	cfg.RateLimit.LoginCooldown = ec.LoginCooldown
	cfg.Audit.Enabled = ec.AuditEnabled
	cfg.Metrics.Enabled = ec.MetricsEnabled

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
