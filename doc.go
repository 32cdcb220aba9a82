// Package authgate implements the bearer credential lifecycle for an HTTP
// service: access/refresh token issuance, stateful refresh tracking,
// blacklist-based revocation, and role-gated authorization derived from
// token claims.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build]. All mutable state lives in Redis behind two independent
// TTL-native keyspaces (refresh_token:<subject> and blacklist:<token-id>),
// so multiple processes can share one deployment.
//
// # Architecture boundaries
//
// authgate is the public surface. It exposes [Engine], [Builder], [Config],
// the sentinel error taxonomy, and the audit/metrics value types. Store and
// throttle coordination lives under internal/ and is never exported. HTTP
// routing, the user credential database, and third-party identity-provider
// flows are external collaborators: callers implement [UserProvider] and
// wire handlers through the middleware and httpapi sub-packages.
//
// # What this package must NOT do
//
//   - Expose Redis clients or key layouts in its public API.
//   - Reveal whether a username exists: unknown user and wrong password are
//     the same [ErrInvalidCredentials].
//   - Treat a store outage as an authorization: revocation and refresh
//     lookups fail closed.
package authgate
