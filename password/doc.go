// Package password provides one-way credential hashing with Argon2id.
//
// Hashes are self-describing PHC strings, so cost parameters can be raised
// over time without invalidating stored credentials. Verification never
// errors on malformed input: an unparseable hash is simply a non-match,
// which keeps the login path's failure behavior uniform.
package password
