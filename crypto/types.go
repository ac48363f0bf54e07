package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// KeySize is the byte length of commitment secret keys (256 bits).
const KeySize = 32

// SecretKey is the single-use secret behind one commitment.
// It is revealed at the end of the exchange round that created it so the
// counterparty can verify the commitment digest, and must never be reused.
type SecretKey []byte

// NewSecretKeyFromBytes creates a SecretKey from a byte slice.
// This function makes a copy of the input data to ensure immutability.
func NewSecretKeyFromBytes(data []byte) SecretKey {
	k := make([]byte, len(data))
	copy(k, data)
	return SecretKey(k)
}

// NewSecretKeyFromString creates a SecretKey from a hex-encoded string.
func NewSecretKeyFromString(data string) (SecretKey, error) {
	rawBytes, err := hex.DecodeString(data)
	if err != nil {
		return SecretKey{}, err
	}
	return NewSecretKeyFromBytes(rawBytes), nil
}

// Bytes returns the key as a byte slice.
// This method should be used carefully before the key is meant to be revealed.
func (k SecretKey) Bytes() []byte {
	return k
}

// String returns a hex-encoded string representation of the key.
// This is the form shown to the user during the reveal step.
func (k SecretKey) String() string {
	return hex.EncodeToString(k)
}

// Digest is a keyed commitment digest (HMAC-SHA256 of a committed value).
// Publishing the digest binds the committer to the value without revealing
// it: without the key the counterparty can neither recover the value nor
// forge a digest matching a different one.
type Digest []byte

// NewDigestFromBytes creates a Digest from a byte slice.
// This function makes a copy of the input data to ensure immutability.
func NewDigestFromBytes(data []byte) Digest {
	d := make([]byte, len(data))
	copy(d, data)
	return Digest(d)
}

// NewDigestFromString creates a Digest from a hex-encoded string.
// Both upper and lower case input is accepted.
func NewDigestFromString(data string) (Digest, error) {
	rawBytes, err := hex.DecodeString(strings.ToLower(data))
	if err != nil {
		return Digest{}, err
	}
	return NewDigestFromBytes(rawBytes), nil
}

// Bytes returns the digest as a byte slice.
func (d Digest) Bytes() []byte {
	return d
}

// Equal compares two digests in constant time.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d, other) == 1
}

// String returns an uppercase hex representation of the digest.
// Uppercase is the canonical display form shown to the user before their
// contribution is requested.
func (d Digest) String() string {
	return strings.ToUpper(hex.EncodeToString(d))
}
