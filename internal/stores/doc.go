// Package stores provides the two Redis-backed, TTL-native keyspaces the
// engine depends on: the per-subject refresh token registry and the access
// token revocation blacklist.
//
// # Design
//
// Each store is a thin prefix-keyed wrapper over atomic per-key Redis
// commands. Expiry is delegated to Redis TTLs: stale refresh tokens and
// redundant revocation entries disappear without any cleanup pass. The two
// keyspaces are independent and never require joint atomicity.
//
// # What this package must NOT do
//
//   - Import the root package or make authorization decisions.
//   - Persist plaintext token material in the revocation keyspace (callers
//     pass an opaque token identifier).
//   - Mask store outages: Redis failures surface as ErrRedisUnavailable so
//     the engine can fail closed.
package stores
