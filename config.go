package authgate

import (
	"errors"
	"time"
)

// Config is the full engine configuration. Zero values are not usable;
// start from [DefaultConfig] and override.
type Config struct {
	Token     TokenConfig
	Password  PasswordConfig
	Stores    StoreConfig
	RateLimit RateLimitConfig
	Audit     AuditConfig
	Metrics   MetricsConfig
}

// TokenConfig configures the signed-claims codec. The secret is symmetric,
// configured once per process, and must be at least 32 bytes.
type TokenConfig struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Leeway     time.Duration
}

// PasswordConfig holds Argon2id cost parameters.
type PasswordConfig struct {
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// StoreConfig sets the Redis key prefixes for the two token keyspaces.
type StoreConfig struct {
	RefreshPrefix    string
	RevocationPrefix string
}

// RateLimitConfig configures the optional login throttle.
type RateLimitConfig struct {
	Enabled          bool
	EnableIPThrottle bool
	MaxLoginAttempts int
	LoginCooldown    time.Duration
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the production baseline: 30 minute access tokens,
// 7 day refresh tokens, Argon2id at 64 MB / t=3 / p=2, metrics on, audit
// and rate limiting off until explicitly enabled.
func DefaultConfig() Config {
	return Config{
		Token: TokenConfig{
			Issuer:     "authgate",
			AccessTTL:  30 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
		Password: PasswordConfig{
			Memory:      64 * 1024,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Stores: StoreConfig{
			RefreshPrefix:    "refresh_token",
			RevocationPrefix: "blacklist",
		},
		RateLimit: RateLimitConfig{
			Enabled:          false,
			EnableIPThrottle: true,
			MaxLoginAttempts: 10,
			LoginCooldown:    15 * time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Token.Secret = append([]byte(nil), cfg.Token.Secret...)
	return out
}

func validateConfig(cfg Config) error {
	if len(cfg.Token.Secret) < 32 {
		return errors.New("token secret must be at least 32 bytes")
	}
	if cfg.Token.AccessTTL <= 0 || cfg.Token.RefreshTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.MaxLoginAttempts <= 0 {
			return errors.New("rate limit requires a positive attempt budget")
		}
		if cfg.RateLimit.LoginCooldown <= 0 {
			return errors.New("rate limit requires a positive cooldown")
		}
	}
	return nil
}
