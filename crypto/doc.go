// Package crypto contains the cryptographic routines of the liability
// attestation pipeline, to:
// - hash arbitrary data (`Digest`) using sha256
// - authenticate data under a key (`Hmac`) using hmac-sha256
// - derive per-account and per-attestation keys
// - encode and decode the lowercase-hex and base32 wire forms
// - generate uniform random integers from a cryptographically strong source.
package crypto
