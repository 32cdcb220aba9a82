// Package middleware exposes HTTP middleware adapters for role-gated
// authorization built on top of authgate.Engine.Authorize.
//
// # Guards
//
//   - [RequireAuthenticated] admits any valid, unrevoked access token.
//   - [RequireRole] additionally matches the token's role claim.
//
// Each guard reads the Authorization header, calls Engine.Authorize, and
// injects the resulting Principal into the request context for handlers to
// read back with [PrincipalFromContext].
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// implement authorization logic itself.
//
// # What this package must NOT do
//
//   - Parse or create tokens directly (delegates to Engine).
//   - Access Redis (Engine handles I/O).
//   - Make authorization decisions beyond pass/reject from
//     Engine.Authorize.
package middleware
