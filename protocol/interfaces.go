package protocol

import (
	"context"
	"errors"
)

// ErrCancelled indicates the user aborted the current operation, either
// explicitly at a prompt or via an interrupt. It is a normal terminal
// condition, not a fault: callers unwind to a clean exit.
var ErrCancelled = errors.New("protocol: cancelled by user")

// ErrHelpRequested indicates the user asked for contextual help instead of
// answering a prompt. The pending operation is not consumed; the caller
// shows help and re-solicits.
var ErrHelpRequested = errors.New("protocol: help requested")

// InputProvider solicits the user's contribution for one exchange round.
// Implementations prompt interactively; tests substitute a scripted
// provider.
type InputProvider interface {
	// Contribution asks the user for an integer in [0, width-1]. It may
	// return ErrHelpRequested or ErrCancelled instead of a value. Locally
	// recoverable input mistakes (non-numeric, out of range) are re-prompted
	// by the provider itself and never surface here.
	Contribution(ctx context.Context, purpose string, width int) (int, error)
}

// Display is the line-based output sink for protocol audit lines and game
// messages. Implementations write to the console; tests capture the lines.
type Display interface {
	// Printf writes one formatted line. A trailing newline is implied.
	Printf(format string, args ...any)
}
