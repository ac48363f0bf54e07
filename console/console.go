// Package console implements the interactive line-based collaborators the
// game consumes: a prompter that reads selections from an input stream and
// a display sink. Both are plain io adapters so tests can substitute
// scripted input and capture output.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fairdice/fairdice/protocol"
)

// Prompter reads user selections line by line. Input is pumped through a
// goroutine so a blocked read unwinds when the context is cancelled (for
// example on an interrupt); end of input is treated as cancellation.
//
// Every interactive prompt accepts a numeric selection, X/x to cancel, and
// ? for help. Out-of-range or non-numeric selections are re-prompted with
// guidance, without limit, and never escalate.
type Prompter struct {
	out       io.Writer
	lines     chan string
	done      chan struct{}
	closeOnce sync.Once
}

// NewPrompter creates a prompter reading from in and echoing prompts to
// out. The caller must Close it on every exit path.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case p.lines <- scanner.Text():
			case <-p.done:
				return
			}
		}
	}()
	return p
}

// Close releases the input channel. Pending and future reads report
// cancellation.
func (p *Prompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// Ask writes prompt and returns the next input line, trimmed. Context
// cancellation, a closed prompter, and end of input all surface as
// protocol.ErrCancelled.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", protocol.ErrCancelled
	case <-p.done:
		return "", protocol.ErrCancelled
	case line, ok := <-p.lines:
		if !ok {
			return "", protocol.ErrCancelled
		}
		return strings.TrimSpace(line), nil
	}
}

// Contribution implements protocol.InputProvider: it renders the modulo
// menu and solicits a number in [0, width-1].
func (p *Prompter) Contribution(ctx context.Context, purpose string, width int) (int, error) {
	fmt.Fprintf(p.out, "Add your number modulo %d.\n", width)
	for i := 0; i < width; i++ {
		fmt.Fprintf(p.out, "%d - %d\n", i, i)
	}
	fmt.Fprintln(p.out, "X - exit")
	fmt.Fprintln(p.out, "? - help")

	for {
		line, err := p.Ask(ctx, "Your selection: ")
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(line) {
		case "x":
			return 0, protocol.ErrCancelled
		case "?":
			return 0, protocol.ErrHelpRequested
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= width {
			fmt.Fprintf(p.out, "Invalid selection %q: enter a number between 0 and %d, X to exit, or ? for help.\n", line, width-1)
			continue
		}
		return n, nil
	}
}

// Select implements the game menu: it renders a titled option list and
// solicits one choice, returning its index.
func (p *Prompter) Select(ctx context.Context, title string, options []string) (int, error) {
	fmt.Fprintln(p.out, title)
	for i, option := range options {
		fmt.Fprintf(p.out, "%d - %s\n", i, option)
	}
	fmt.Fprintln(p.out, "X - exit")
	fmt.Fprintln(p.out, "? - help")

	for {
		line, err := p.Ask(ctx, "Your selection: ")
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(line) {
		case "x":
			return 0, protocol.ErrCancelled
		case "?":
			return 0, protocol.ErrHelpRequested
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= len(options) {
			fmt.Fprintf(p.out, "Invalid selection %q: enter a number between 0 and %d, X to exit, or ? for help.\n", line, len(options)-1)
			continue
		}
		return n, nil
	}
}

// Sink is the production display: one formatted line per call.
type Sink struct {
	w io.Writer
}

// NewSink creates a display sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Printf implements protocol.Display.
func (s *Sink) Printf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}
