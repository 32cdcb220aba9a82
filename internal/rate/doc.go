// Package rate implements the Redis-backed fixed-window login throttle.
//
// Counters are kept per identifier and optionally per client IP. The
// window TTL is set on the first failure in a window; successful logins
// clear the counters. The limiter shares the engine's Redis client so the
// budget survives process restarts and multi-process deployment.
package rate
