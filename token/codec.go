package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSignature is returned when a token's signature does not
	// verify or the compact structure is malformed.
	ErrInvalidSignature = errors.New("token signature invalid")
	// ErrExpired is returned when a structurally valid token is past its
	// expiry instant.
	ErrExpired = errors.New("token expired")
)

// Config holds the codec's signing parameters. The secret is symmetric and
// configured once per process.
type Config struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Leeway     time.Duration
}

// Codec mints and verifies compact HS256-signed claim tokens. The signing
// algorithm is fixed; verification pins HS256 through the parser's
// valid-methods list so algorithm-substitution inputs fail before any claim
// is inspected.
type Codec struct {
	config Config
}

// Claims is the claim set carried by both access and refresh tokens:
// subject, role, and the registered expiry/issued-at/issuer/jti fields.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// RemainingLifetime reports how long the claims stay valid past now,
// clamped at zero for already-expired tokens.
func (c *Claims) RemainingLifetime(now time.Time) time.Duration {
	if c == nil || c.ExpiresAt == nil {
		return 0
	}
	remaining := c.ExpiresAt.Time.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NewCodec validates the configuration and returns a ready Codec.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Secret) < 32 {
		return nil, errors.New("token secret must be at least 32 bytes")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	if cfg.RefreshTTL < cfg.AccessTTL {
		return nil, errors.New("refresh TTL must not be shorter than access TTL")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}

	return &Codec{config: cfg}, nil
}

// MintAccess signs a short-lived access token for the subject and role.
func (c *Codec) MintAccess(subject, role string) (string, error) {
	return c.mint(subject, role, c.config.AccessTTL)
}

// MintRefresh signs a long-lived refresh token for the subject and role.
// The role claim is carried so a refresh can mint a new access token
// without a second user lookup.
func (c *Codec) MintRefresh(subject, role string) (string, error) {
	return c.mint(subject, role, c.config.RefreshTTL)
}

func (c *Codec) mint(subject, role string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject must not be empty")
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    c.config.Issuer,
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.config.Secret)
}

// Verify checks signature integrity first and expiry second, and returns
// the decoded claims only when both pass. Malformed structure and signature
// mismatch are indistinguishable to the caller ([ErrInvalidSignature]);
// both paths run a full parse plus HMAC, which is the best-effort timing
// posture available under a symmetric secret.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if c.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(c.config.Leeway))
	}
	if c.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(c.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return c.config.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalidSignature
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidSignature
	}

	return claims, nil
}
