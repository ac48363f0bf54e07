package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"
	"strconv"
)

// Commitment binds the committer to a uniformly drawn secret value.
// The Digest is safe to publish immediately; Value and Key stay secret until
// the reveal step of the exchange round that created the commitment. Both
// the key and the value are drawn fresh for every commitment.
type Commitment struct {
	// Key is the single-use HMAC key, revealed at the end of the round.
	Key SecretKey

	// Value is the committed value, uniform over the requested range.
	Value int

	// Digest is HMAC-SHA256(Key, Value), shown to the counterparty before
	// they contribute.
	Digest Digest
}

// Generate draws a uniform value in [min, max] together with a fresh secret
// key and computes the binding digest. The random source is consumed for the
// key first and the value second.
func Generate(random io.Reader, min, max int) (*Commitment, error) {
	if min > max {
		return nil, ErrBadRange
	}

	key, err := NewSecretKey(random)
	if err != nil {
		return nil, err
	}

	value, err := UniformInt(random, min, max)
	if err != nil {
		return nil, err
	}

	return &Commitment{
		Key:    key,
		Value:  value,
		Digest: ComputeDigest(key, value),
	}, nil
}

// ComputeDigest returns HMAC-SHA256 of the decimal encoding of value under
// key. The decimal encoding keeps the digest stable across integer widths
// and hand-verifiable with standard tools.
func ComputeDigest(key SecretKey, value int) Digest {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(strconv.Itoa(value)))
	return Digest(mac.Sum(nil))
}

// Verify reports whether digest commits to value under key.
// Used by the counterparty (and tests) to check the reveal was honest.
func Verify(key SecretKey, value int, digest Digest) bool {
	return ComputeDigest(key, value).Equal(digest)
}
