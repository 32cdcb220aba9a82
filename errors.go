package authgate

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the login path cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is the sentinel a [UserProvider] returns for an
	// absent identifier. The engine never exposes it to callers.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnauthenticated is returned when no token accompanies a guarded
	// request.
	ErrUnauthenticated = errors.New("missing credentials")
	// ErrTokenInvalid is returned when an access token fails signature or
	// structural verification.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned when an otherwise valid access token is
	// past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenRevoked is returned when an access token appears in the
	// revocation blacklist, regardless of its signature or expiry.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrTokenMalformed is returned by Logout when the presented token
	// cannot be decoded at all.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrRefreshInvalid collapses every refresh failure (bad signature,
	// expiry, missing claims, superseded or unknown token) into one
	// caller-visible kind.
	ErrRefreshInvalid = errors.New("invalid refresh token")
	// ErrPermissionDenied is returned when the token's role claim does not
	// match the required role.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrLoginRateLimited is returned when the login throttle budget for
	// an identifier or IP is exhausted.
	ErrLoginRateLimited = errors.New("login rate limited")
	// ErrStoreUnavailable wraps refresh/revocation store outages. Requests
	// carrying it are denied, never silently authorized.
	ErrStoreUnavailable = errors.New("token store unavailable")
	// ErrEngineNotReady is returned from methods on an engine that was not
	// built through [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")
)
