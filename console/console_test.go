package console

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdice/fairdice/protocol"
	"github.com/fairdice/fairdice/testutil"
)

func TestPrompter_ContributionParsesNumber(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testutil.ScriptedLines("3"), &out)
	defer p.Close()

	n, err := p.Contribution(context.Background(), "roll", 6)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rendered := out.String()
	assert.Contains(t, rendered, "Add your number modulo 6.")
	assert.Contains(t, rendered, "0 - 0")
	assert.Contains(t, rendered, "5 - 5")
	assert.Contains(t, rendered, "X - exit")
	assert.Contains(t, rendered, "? - help")
}

func TestPrompter_ContributionCancelAndHelp(t *testing.T) {
	cases := []struct {
		line string
		want error
	}{
		{"x", protocol.ErrCancelled},
		{"X", protocol.ErrCancelled},
		{"?", protocol.ErrHelpRequested},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			p := NewPrompter(testutil.ScriptedLines(tc.line), &bytes.Buffer{})
			defer p.Close()

			_, err := p.Contribution(context.Background(), "roll", 2)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPrompter_ContributionRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testutil.ScriptedLines("banana", "9", "-1", "1"), &out)
	defer p.Close()

	n, err := p.Contribution(context.Background(), "roll", 6)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), `Invalid selection "banana"`)
	assert.Contains(t, out.String(), `Invalid selection "9"`)
}

func TestPrompter_EndOfInputIsCancellation(t *testing.T) {
	p := NewPrompter(testutil.ScriptedLines(), &bytes.Buffer{})
	defer p.Close()

	_, err := p.Contribution(context.Background(), "roll", 2)
	assert.ErrorIs(t, err, protocol.ErrCancelled)
}

func TestPrompter_ContextCancellationUnblocksAsk(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No input ever arrives; the cancelled context must unwind the read.
	blocked := make(chan struct{})
	p := NewPrompter(blockingReader{unblock: blocked}, &bytes.Buffer{})
	defer p.Close()
	defer close(blocked)

	_, err := p.Ask(ctx, "Your selection: ")
	assert.ErrorIs(t, err, protocol.ErrCancelled)
}

type blockingReader struct {
	unblock chan struct{}
}

func (r blockingReader) Read([]byte) (int, error) {
	<-r.unblock
	return 0, nil
}

func TestPrompter_SelectReturnsIndex(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testutil.ScriptedLines("2"), &out)
	defer p.Close()

	choice, err := p.Select(context.Background(), "Choose your dice:", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, choice)
	assert.Contains(t, out.String(), "Choose your dice:")
	assert.Contains(t, out.String(), "0 - a")
	assert.Contains(t, out.String(), "2 - c")
}

func TestPrompter_SelectRejectsOutOfRange(t *testing.T) {
	p := NewPrompter(testutil.ScriptedLines("3", "0"), &bytes.Buffer{})
	defer p.Close()

	choice, err := p.Select(context.Background(), "Choose your dice:", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 0, choice)
}

func TestPrompter_AskTrims(t *testing.T) {
	p := NewPrompter(testutil.ScriptedLines("  hello  "), &bytes.Buffer{})
	defer p.Close()

	line, err := p.Ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestSink_WritesLines(t *testing.T) {
	var out bytes.Buffer
	sink := NewSink(&out)
	sink.Printf("My roll result is %d.", 9)
	assert.Equal(t, "My roll result is 9.\n", out.String())
}
