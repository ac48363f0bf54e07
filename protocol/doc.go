// Package protocol implements the fair value exchange protocol: a
// commit-then-combine scheme producing a single random value in a range that
// neither party could have biased alone.
//
// # Exchange Workflow
//
// One exchange round moves through four strictly ordered phases:
//
//  1. Commit: the computer draws a uniform secret value and a fresh 256-bit
//     key, and publishes HMAC-SHA256(key, value). The value is now fixed and
//     cannot be changed.
//
//  2. Contribute: the user supplies a number modulo the range width. The
//     only information available to the user at this point is the digest,
//     from which the committed value is computationally infeasible to
//     derive.
//
//  3. Reveal: the computer discloses its value and the key so the user can
//     check the digest was honest.
//
//  4. Combine: the result is (computer + user) mod width, mapped back into
//     the range. Because the computer committed first and the user chose
//     blind, the result is uniform regardless of either party's strategy.
//
// The user may also ask for help (the round re-prompts without advancing) or
// cancel (the round aborts; the committed key is simply never revealed,
// which is an acceptable terminal condition since that round's fairness
// proof is no longer needed).
//
// # Auditability
//
// Every round's range, digest, revealed value, key, and combination
// arithmetic are written to the display sink, and an optional Transcript
// accumulates the same records with a running SHA3-256 digest so a third
// party can audit a whole session after the fact.
//
// Exactly one exchange round is in flight at a time; rounds are never
// interleaved.
package protocol
