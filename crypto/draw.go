package crypto

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrEntropyUnavailable indicates the secure random source failed to supply
// bytes. This is fatal to the caller: a broken entropy source cannot be
// assumed to self-heal, so draws are never retried after it.
var ErrEntropyUnavailable = errors.New("crypto: entropy source unavailable")

// ErrBadRange indicates a draw was requested with min greater than max.
var ErrBadRange = errors.New("crypto: min must not exceed max")

// UniformInt draws an integer uniformly from [min, max] inclusive using the
// provided random source.
//
// The draw is exactly uniform: 64-bit samples are rejected and redrawn
// whenever they fall outside the largest multiple of the range width
// representable in 64 bits, so no modulo bias is introduced for any width.
func UniformInt(random io.Reader, min, max int) (int, error) {
	if min > max {
		return 0, ErrBadRange
	}

	width := uint64(max-min) + 1
	if width == 1 {
		// Degenerate range with a single outcome; no entropy consumed.
		return min, nil
	}

	// rem = 2^64 mod width. Samples in [2^64-rem, 2^64) map unevenly onto
	// the range and must be rejected.
	rem := (math.MaxUint64%width + 1) % width

	var buf [8]byte
	for {
		if _, err := io.ReadFull(random, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		sample := binary.BigEndian.Uint64(buf[:])
		if rem != 0 && sample >= math.MaxUint64-rem+1 {
			continue
		}
		return min + int(sample%width), nil
	}
}

// NewSecretKey generates a fresh 256-bit secret key from the random source.
func NewSecretKey(random io.Reader) (SecretKey, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(random, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return SecretKey(key), nil
}
