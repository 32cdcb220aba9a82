// Package token implements the signed claim codec used for access and
// refresh tokens.
//
// Tokens are compact three-part JWS strings signed with a process-wide
// symmetric secret under a fixed HS256 algorithm. Verification order is a
// hard invariant: the signature gates all claim inspection, and expiry is
// only evaluated on a structurally valid, correctly signed token.
//
// The codec is stateless. Both failure kinds are reported as typed sentinel
// errors ([ErrInvalidSignature], [ErrExpired]) so callers can branch with
// errors.Is rather than matching message text.
package token
