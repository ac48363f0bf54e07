package protocol

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/fairdice/fairdice/crypto"
)

// Exchanger runs fair value exchange rounds against a single user. It holds
// no per-round state: each Exchange call creates and destroys one
// commitment.
type Exchanger struct {
	random     io.Reader
	provider   InputProvider
	display    Display
	help       func()
	transcript *Transcript
	log        zerolog.Logger
}

// NewExchanger creates an exchanger drawing randomness from random and
// interacting through provider and display. Pass crypto/rand.Reader in
// production.
func NewExchanger(random io.Reader, provider InputProvider, display Display) *Exchanger {
	return &Exchanger{
		random:   random,
		provider: provider,
		display:  display,
		log:      zerolog.Nop(),
	}
}

// SetHelp installs the callback invoked when the provider reports
// ErrHelpRequested. The round re-prompts after the callback returns.
func (e *Exchanger) SetHelp(fn func()) {
	e.help = fn
}

// SetTranscript attaches a session transcript that every round is recorded
// to, including rounds cancelled before the reveal.
func (e *Exchanger) SetTranscript(t *Transcript) {
	e.transcript = t
}

// SetLogger attaches a logger for phase-level debug events.
func (e *Exchanger) SetLogger(log zerolog.Logger) {
	e.log = log
}

// Exchange runs one full round and returns the fair value in [min, max].
//
// The phase order is fixed: commit, contribute, reveal, combine. The
// commitment digest is displayed before the user's contribution is
// requested, and the value, key, and combination arithmetic are displayed
// after, so the round is auditable by a third party reading the output.
//
// Returns ErrCancelled if the user aborts at the contribution prompt; the
// commitment key is then never revealed. Entropy source failures surface as
// crypto.ErrEntropyUnavailable and are fatal to the session.
func (e *Exchanger) Exchange(ctx context.Context, min, max int, purpose string) (*ExchangeResult, error) {
	width := max - min + 1

	phase := PhaseCommit
	commitment, err := crypto.Generate(e.random, min, max)
	if err != nil {
		return nil, fmt.Errorf("commit for %s: %w", purpose, err)
	}
	e.log.Debug().Str("purpose", purpose).Stringer("phase", phase).
		Int("min", min).Int("max", max).Msg("commitment published")

	e.display.Printf("%s", purpose)
	e.display.Printf("I selected a random value in the range %d..%d (HMAC=%s).", min, max, commitment.Digest)

	phase = phase.Advance()
	var contribution int
	for {
		contribution, err = e.provider.Contribution(ctx, purpose, width)
		if errors.Is(err, ErrHelpRequested) {
			// The commitment stays pending; help does not consume the round.
			if e.help != nil {
				e.help()
			}
			continue
		}
		if errors.Is(err, ErrCancelled) {
			e.recordCancelled(purpose, min, max, commitment)
			e.log.Debug().Str("purpose", purpose).Msg("round cancelled before reveal")
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("contribution for %s: %w", purpose, err)
		}
		if contribution < 0 || contribution >= width {
			return nil, fmt.Errorf("contribution %d out of range [0, %d)", contribution, width)
		}
		break
	}

	phase = phase.Advance()
	e.log.Debug().Str("purpose", purpose).Stringer("phase", phase).Msg("commitment revealed")
	e.display.Printf("My number is %d (KEY=%s).", commitment.Value, commitment.Key)

	phase = phase.Advance()
	e.log.Debug().Str("purpose", purpose).Stringer("phase", phase).Msg("combining contributions")
	combined := Combine(min, max, commitment.Value, contribution)
	e.display.Printf("The fair number generation result is %d + %d = %d (mod %d).",
		commitment.Value-min, contribution, combined-min, width)

	result := &ExchangeResult{
		Purpose:          purpose,
		Min:              min,
		Max:              max,
		ComputerValue:    commitment.Value,
		UserContribution: contribution,
		Key:              commitment.Key,
		Digest:           commitment.Digest,
		Combined:         combined,
	}
	e.recordCompleted(result)
	e.log.Debug().Str("purpose", purpose).Int("result", combined).Msg("exchange complete")
	return result, nil
}

func (e *Exchanger) recordCompleted(result *ExchangeResult) {
	if e.transcript == nil {
		return
	}
	e.transcript.Append(RoundRecord{
		Purpose:          result.Purpose,
		Min:              result.Min,
		Max:              result.Max,
		Digest:           result.Digest,
		Revealed:         true,
		ComputerValue:    result.ComputerValue,
		UserContribution: result.UserContribution,
		Key:              result.Key,
		Combined:         result.Combined,
	})
}

func (e *Exchanger) recordCancelled(purpose string, min, max int, commitment *crypto.Commitment) {
	if e.transcript == nil {
		return
	}
	// The key is withheld: a digested-but-unrevealed commitment is the
	// expected shape of a cancelled round.
	e.transcript.Append(RoundRecord{
		Purpose: purpose,
		Min:     min,
		Max:     max,
		Digest:  commitment.Digest,
	})
}
