package authgate

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/authgate/authgate/internal/audit"
	"github.com/authgate/authgate/internal/rate"
	"github.com/authgate/authgate/internal/stores"
	"github.com/authgate/authgate/password"
	"github.com/authgate/authgate/token"
)

// Engine is the session lifecycle core. Construct one through [Builder];
// after Build it is immutable and safe for concurrent use.
type Engine struct {
	codec        *token.Codec
	hasher       *password.Hasher
	refreshStore *stores.RefreshStore
	revocations  *stores.RevocationStore
	limiter      *rate.Limiter
	audit        *audit.Dispatcher
	metrics      *Metrics
	userProvider UserProvider

	refreshTTL time.Duration
	ready      bool
}

// revocationID derives the blacklist key for a token string. Hashing keeps
// token material out of Redis and lets revocation be checked before any
// signature work.
func revocationID(tokenStr string) string {
	sum := sha256.Sum256([]byte(tokenStr))
	return hex.EncodeToString(sum[:])
}

// Login verifies the identifier/password pair against the [UserProvider]
// and, on success, mints an access/refresh pair and records the refresh
// token under the subject. A second login for the same subject overwrites
// the stored refresh token, superseding the previous one.
//
// Unknown identifiers and wrong passwords both return
// [ErrInvalidCredentials].
func (e *Engine) Login(ctx context.Context, identifier, pass string) (*TokenPair, error) {
	if e == nil || !e.ready {
		return nil, ErrEngineNotReady
	}

	ip := clientIPFromContext(ctx)

	if e.limiter != nil {
		if err := e.limiter.Check(ctx, identifier, ip); err != nil {
			if errors.Is(err, rate.ErrRateLimited) {
				e.metrics.Inc(MetricLoginRateLimited)
				e.emit(ctx, AuditLoginRateLimited, identifier, ip, false, ErrLoginRateLimited)
				return nil, ErrLoginRateLimited
			}
			e.metrics.Inc(MetricStoreError)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	user, err := e.userProvider.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, e.loginFailure(ctx, identifier, ip)
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	if !e.hasher.Verify(pass, user.PasswordHash) {
		return nil, e.loginFailure(ctx, identifier, ip)
	}

	access, err := e.codec.MintAccess(user.Identifier, user.Role)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}
	refresh, err := e.codec.MintRefresh(user.Identifier, user.Role)
	if err != nil {
		return nil, fmt.Errorf("mint refresh token: %w", err)
	}

	if err := e.refreshStore.Put(ctx, user.Identifier, refresh, e.refreshTTL); err != nil {
		e.metrics.Inc(MetricStoreError)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if e.limiter != nil {
		// Best effort. A failed reset only costs the user leftover budget.
		_ = e.limiter.Reset(ctx, identifier, ip)
	}

	e.metrics.Inc(MetricLoginSuccess)
	e.emit(ctx, AuditLoginSuccess, user.Identifier, ip, true, nil)

	return &TokenPair{
		AccessToken:  access,
		TokenType:    TokenTypeBearer,
		RefreshToken: refresh,
	}, nil
}

func (e *Engine) loginFailure(ctx context.Context, identifier, ip string) error {
	if e.limiter != nil {
		if err := e.limiter.RecordFailure(ctx, identifier, ip); err != nil && errors.Is(err, rate.ErrRateLimited) {
			e.metrics.Inc(MetricLoginRateLimited)
			e.emit(ctx, AuditLoginRateLimited, identifier, ip, false, ErrLoginRateLimited)
			return ErrLoginRateLimited
		}
	}
	e.metrics.Inc(MetricLoginFailure)
	e.emit(ctx, AuditLoginFailure, identifier, ip, false, ErrInvalidCredentials)
	return ErrInvalidCredentials
}

// Refresh exchanges a refresh token for a fresh access token. The presented
// token must verify, carry subject and role claims, and byte-match the one
// currently stored for its subject; anything else is [ErrRefreshInvalid].
// The stored refresh token is left in place, so it can be reused until it
// expires or is superseded by a new login.
func (e *Engine) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if e == nil || !e.ready {
		return nil, ErrEngineNotReady
	}

	ip := clientIPFromContext(ctx)

	claims, err := e.codec.Verify(refreshToken)
	if err != nil {
		return nil, e.refreshFailure(ctx, "", ip)
	}
	subject := claims.Subject
	if subject == "" || claims.Role == "" {
		return nil, e.refreshFailure(ctx, subject, ip)
	}

	stored, err := e.refreshStore.Get(ctx, subject)
	if err != nil {
		if errors.Is(err, stores.ErrRefreshNotFound) {
			return nil, e.refreshFailure(ctx, subject, ip)
		}
		e.metrics.Inc(MetricStoreError)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		return nil, e.refreshFailure(ctx, subject, ip)
	}

	access, err := e.codec.MintAccess(subject, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	e.metrics.Inc(MetricRefreshSuccess)
	e.emit(ctx, AuditRefreshSuccess, subject, ip, true, nil)

	return &TokenPair{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
	}, nil
}

func (e *Engine) refreshFailure(ctx context.Context, subject, ip string) error {
	e.metrics.Inc(MetricRefreshFailure)
	e.emit(ctx, AuditRefreshFailure, subject, ip, false, ErrRefreshInvalid)
	return ErrRefreshInvalid
}

// Logout blacklists an access token for the remainder of its lifetime.
// An already-expired token is a silent no-op: it can no longer authorize
// anything, so there is nothing to revoke. A token that fails signature
// or structural checks returns [ErrTokenMalformed].
func (e *Engine) Logout(ctx context.Context, accessToken string) error {
	if e == nil || !e.ready {
		return ErrEngineNotReady
	}

	ip := clientIPFromContext(ctx)

	claims, err := e.codec.Verify(accessToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil
		}
		return ErrTokenMalformed
	}

	ttl := claims.RemainingLifetime(time.Now())
	if err := e.revocations.Add(ctx, revocationID(accessToken), ttl); err != nil {
		e.metrics.Inc(MetricStoreError)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metrics.Inc(MetricLogout)
	e.emit(ctx, AuditLogout, claims.Subject, ip, true, nil)
	return nil
}

// LogoutAll revokes the presented access token and additionally drops the
// subject's stored refresh token, ending the session on every device that
// depends on it.
func (e *Engine) LogoutAll(ctx context.Context, accessToken string) error {
	if e == nil || !e.ready {
		return ErrEngineNotReady
	}

	ip := clientIPFromContext(ctx)

	claims, err := e.codec.Verify(accessToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil
		}
		return ErrTokenMalformed
	}

	ttl := claims.RemainingLifetime(time.Now())
	if err := e.revocations.Add(ctx, revocationID(accessToken), ttl); err != nil {
		e.metrics.Inc(MetricStoreError)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := e.refreshStore.Delete(ctx, claims.Subject); err != nil {
		e.metrics.Inc(MetricStoreError)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metrics.Inc(MetricLogoutAll)
	e.emit(ctx, AuditLogoutAll, claims.Subject, ip, true, nil)
	return nil
}

// MetricsSnapshot returns the engine counters at this instant.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil {
		return 0
	}
	return e.audit.Dropped()
}

// Close drains and stops the audit dispatcher. The engine must not be
// used afterwards.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.audit.Close()
}

func (e *Engine) emit(ctx context.Context, eventType, subject, ip string, success bool, cause error) {
	if e.audit == nil {
		return
	}
	ev := audit.Event{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Subject:   subject,
		IP:        ip,
		Success:   success,
	}
	if cause != nil {
		ev.Error = cause.Error()
	}
	e.audit.Emit(ctx, ev)
}
