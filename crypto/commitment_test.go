package crypto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdice/fairdice/testutil"
)

func TestGenerate_ValueInRange(t *testing.T) {
	random := testutil.DeterministicEntropy(1)

	for i := 0; i < 500; i++ {
		commitment, err := Generate(random, 0, 5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, commitment.Value, 0)
		assert.LessOrEqual(t, commitment.Value, 5)
		assert.Len(t, commitment.Key.Bytes(), KeySize)
	}
}

func TestGenerate_DegenerateRange(t *testing.T) {
	commitment, err := Generate(testutil.DeterministicEntropy(2), 7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, commitment.Value)
	// The commitment is still fully formed for the single-outcome range.
	assert.True(t, Verify(commitment.Key, commitment.Value, commitment.Digest))
}

func TestGenerate_BadRange(t *testing.T) {
	_, err := Generate(testutil.DeterministicEntropy(3), 5, 4)
	assert.ErrorIs(t, err, ErrBadRange)
}

func TestGenerate_EntropyFailure(t *testing.T) {
	_, err := Generate(testutil.FailingEntropy(), 0, 5)
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
}

func TestGenerate_FreshKeyPerCommitment(t *testing.T) {
	random := testutil.DeterministicEntropy(4)

	first, err := Generate(random, 0, 5)
	require.NoError(t, err)
	second, err := Generate(random, 0, 5)
	require.NoError(t, err)

	assert.NotEqual(t, first.Key.String(), second.Key.String())
}

func TestComputeDigest_Deterministic(t *testing.T) {
	key := NewSecretKeyFromBytes(make([]byte, KeySize))

	assert.Equal(t, ComputeDigest(key, 3).String(), ComputeDigest(key, 3).String())
	assert.NotEqual(t, ComputeDigest(key, 3).String(), ComputeDigest(key, 4).String())

	flipped := NewSecretKeyFromBytes(make([]byte, KeySize))
	flipped[0] ^= 1
	assert.NotEqual(t, ComputeDigest(key, 3).String(), ComputeDigest(flipped, 3).String())
}

func TestComputeDigest_NoCollisionsObserved(t *testing.T) {
	random := testutil.DeterministicEntropy(5)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key, err := NewSecretKey(random)
		require.NoError(t, err)
		digest := ComputeDigest(key, i%10).String()
		assert.False(t, seen[digest], "digest collision at iteration %d", i)
		seen[digest] = true
	}
}

func TestVerify(t *testing.T) {
	commitment, err := Generate(testutil.DeterministicEntropy(6), 0, 5)
	require.NoError(t, err)

	assert.True(t, Verify(commitment.Key, commitment.Value, commitment.Digest))
	assert.False(t, Verify(commitment.Key, commitment.Value+1, commitment.Digest))

	tampered := NewSecretKeyFromBytes(commitment.Key.Bytes())
	tampered[0] ^= 1
	assert.False(t, Verify(tampered, commitment.Value, commitment.Digest))
}

func TestDigest_DisplayForm(t *testing.T) {
	commitment, err := Generate(testutil.DeterministicEntropy(7), 0, 5)
	require.NoError(t, err)

	// Uppercase hex, 64 characters for HMAC-SHA256.
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{64}$`), commitment.Digest.String())
	// Keys are revealed in lowercase hex.
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), commitment.Key.String())
}

func TestDigest_RoundTrip(t *testing.T) {
	commitment, err := Generate(testutil.DeterministicEntropy(8), 0, 5)
	require.NoError(t, err)

	parsed, err := NewDigestFromString(commitment.Digest.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(commitment.Digest))

	key, err := NewSecretKeyFromString(commitment.Key.String())
	require.NoError(t, err)
	assert.True(t, Verify(key, commitment.Value, commitment.Digest))
}
