// Package crypto provides cryptographic primitives for provably fair random
// value generation.
//
// This package implements the commitment scheme underlying the fair value
// exchange protocol:
//
//   - Uniform integer draws over an inclusive range, using rejection sampling
//     over a cryptographically secure random source so no modulo bias exists
//   - Single-use 256-bit secret keys
//   - HMAC-SHA256 keyed commitments binding a party to a secret value before
//     the counterparty contributes
//
// The crypto package provides low-level primitives that are used by the
// higher-level exchange protocol.
//
// # Commitments
//
// A Commitment fixes a uniformly drawn value together with a fresh secret
// key. Its Digest is HMAC-SHA256(key, value): the digest can be published
// immediately, and the value cannot be derived from it or a matching digest
// forged without the key. Revealing the key later lets anyone verify the
// value was fixed all along. Keys are generated per commitment and must
// never be reused.
//
// # Entropy
//
// All randomness flows through an injected io.Reader so tests can supply a
// deterministic source. Production callers pass crypto/rand.Reader. A source
// failure surfaces as ErrEntropyUnavailable and is never retried.
package crypto
