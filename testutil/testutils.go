package testutil

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fairdice/fairdice/dice"
)

// DeterministicEntropy returns a reader producing an unlimited byte stream
// fully determined by seed. The stream is SHA-256 of (seed, counter) blocks,
// which is statistically uniform, so it also serves distribution tests.
func DeterministicEntropy(seed uint64) io.Reader {
	return &hashStream{seed: seed}
}

type hashStream struct {
	seed    uint64
	counter uint64
	buf     []byte
}

func (h *hashStream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(h.buf) == 0 {
			var block [16]byte
			binary.BigEndian.PutUint64(block[:8], h.seed)
			binary.BigEndian.PutUint64(block[8:], h.counter)
			h.counter++
			sum := sha256.Sum256(block[:])
			h.buf = sum[:]
		}
		copied := copy(p[n:], h.buf)
		h.buf = h.buf[copied:]
		n += copied
	}
	return n, nil
}

// ErrEntropyBroken is the error returned by FailingEntropy reads.
var ErrEntropyBroken = errors.New("testutil: entropy source broken")

// FailingEntropy returns a reader whose every read fails with
// ErrEntropyBroken.
func FailingEntropy() io.Reader {
	return failingReader{}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, ErrEntropyBroken
}

// ScriptedLines builds a reader from canned console input lines, each
// terminated with a newline, as if the user had typed them in order.
func ScriptedLines(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// CaptureDisplay implements a line-based display sink that records every
// formatted line for later assertions. Safe for concurrent use.
type CaptureDisplay struct {
	mu    sync.Mutex
	lines []string
}

// NewCaptureDisplay creates an empty capture display.
func NewCaptureDisplay() *CaptureDisplay {
	return &CaptureDisplay{}
}

// Printf records a formatted line.
func (c *CaptureDisplay) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of all recorded lines in write order.
func (c *CaptureDisplay) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// IndexOf returns the index of the first recorded line containing substr,
// or -1 if no line matches.
func (c *CaptureDisplay) IndexOf(substr string) int {
	for i, line := range c.Lines() {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Contains reports whether any recorded line contains substr.
func (c *CaptureDisplay) Contains(substr string) bool {
	return c.IndexOf(substr) >= 0
}

// ClassicDice returns the standard non-transitive triple
// [2,2,4,4,9,9], [6,8,1,1,8,6], [7,5,3,7,5,3].
// Each die beats the next one cyclically with probability 5/9.
func ClassicDice() []dice.Die {
	set, err := dice.ParseSet([]string{"2,2,4,4,9,9", "6,8,1,1,8,6", "7,5,3,7,5,3"})
	if err != nil {
		panic("testutil: classic dice must parse: " + err.Error())
	}
	return set
}
