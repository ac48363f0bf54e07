package protocol

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/fairdice/fairdice/crypto"
)

// RoundRecord is the audit record of one exchange round. Cancelled rounds
// carry only the published digest; the key and values stay zero because the
// reveal never happened.
type RoundRecord struct {
	Purpose          string
	Min, Max         int
	Digest           crypto.Digest
	Revealed         bool
	ComputerValue    int
	UserContribution int
	Key              crypto.SecretKey
	Combined         int
}

// Transcript accumulates the audit records of every exchange round in a
// session. Its digest commits to the full ordered history so a third party
// can check that no round was altered or dropped after the fact.
//
// The game runs on a single logical thread, so Transcript does no locking.
type Transcript struct {
	records []RoundRecord
}

// NewTranscript creates an empty session transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds one round record in session order.
func (t *Transcript) Append(record RoundRecord) {
	t.records = append(t.records, record)
}

// Len returns the number of recorded rounds.
func (t *Transcript) Len() int {
	return len(t.records)
}

// Records returns a copy of all records in session order.
func (t *Transcript) Records() []RoundRecord {
	out := make([]RoundRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Digest returns SHA3-256 over the deterministic encoding of all records.
// Two transcripts have equal digests exactly when every field of every
// record matches in order.
func (t *Transcript) Digest() [32]byte {
	h := sha3.New256()
	var scratch [8]byte

	writeInt := func(v int) {
		binary.BigEndian.PutUint64(scratch[:], uint64(int64(v)))
		h.Write(scratch[:])
	}
	writeBytes := func(b []byte) {
		writeInt(len(b))
		h.Write(b)
	}

	writeInt(len(t.records))
	for _, r := range t.records {
		writeBytes([]byte(r.Purpose))
		writeInt(r.Min)
		writeInt(r.Max)
		writeBytes(r.Digest.Bytes())
		if !r.Revealed {
			writeInt(0)
			continue
		}
		writeInt(1)
		writeInt(r.ComputerValue)
		writeInt(r.UserContribution)
		writeBytes(r.Key.Bytes())
		writeInt(r.Combined)
	}

	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}
