package authgate

import (
	"context"
	"errors"
	"fmt"

	"github.com/authgate/authgate/token"
)

// Authorize validates an access token and optionally enforces a role.
// Checks run in a fixed order so callers get a stable error for any given
// token state:
//
//  1. empty token: [ErrUnauthenticated]
//  2. revocation blacklist: [ErrTokenRevoked]
//  3. signature and expiry: [ErrTokenExpired] or [ErrTokenInvalid]
//  4. role claim vs requiredRole: [ErrPermissionDenied]
//
// The blacklist runs before signature verification, so a revoked token is
// rejected as revoked even after its signature would have failed anyway.
// Pass requiredRole == "" to skip the role check.
func (e *Engine) Authorize(ctx context.Context, accessToken, requiredRole string) (Principal, error) {
	if e == nil || !e.ready {
		return Principal{}, ErrEngineNotReady
	}

	if accessToken == "" {
		return Principal{}, ErrUnauthenticated
	}

	revoked, err := e.revocations.Contains(ctx, revocationID(accessToken))
	if err != nil {
		e.metrics.Inc(MetricStoreError)
		return Principal{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if revoked {
		e.metrics.Inc(MetricAuthorizeRevoked)
		return Principal{}, ErrTokenRevoked
	}

	claims, err := e.codec.Verify(accessToken)
	if err != nil {
		e.metrics.Inc(MetricAuthorizeDenied)
		if errors.Is(err, token.ErrExpired) {
			return Principal{}, ErrTokenExpired
		}
		return Principal{}, ErrTokenInvalid
	}

	if requiredRole != "" && claims.Role != requiredRole {
		e.metrics.Inc(MetricAuthorizeDenied)
		return Principal{}, ErrPermissionDenied
	}

	e.metrics.Inc(MetricAuthorizeSuccess)
	return Principal{Subject: claims.Subject, Role: claims.Role}, nil
}
