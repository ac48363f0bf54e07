// Package game implements the game orchestrator: an explicit state machine
// sequencing first-player determination, dice selection with the exclusion
// rule, rolling, and adjudication. Every fairness-critical random decision
// runs through the fair value exchange protocol; the computer's own die pick
// is deliberately the one non-cryptographic draw (see Config.Pick).
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/fairdice/fairdice/dice"
	"github.com/fairdice/fairdice/probability"
	"github.com/fairdice/fairdice/protocol"
)

// Menu presents a titled option list and returns the chosen index. It may
// return protocol.ErrCancelled or protocol.ErrHelpRequested instead of a
// choice; invalid selections are re-prompted by the implementation and never
// surface.
type Menu interface {
	Select(ctx context.Context, title string, options []string) (int, error)
}

// ErrNoDice indicates a session was created without a dice set.
var ErrNoDice = errors.New("game: dice set is empty")

// Config assembles a session's collaborators.
type Config struct {
	// Dice is the validated, immutable dice set for the session.
	Dice []dice.Die

	// Random is the secure entropy source for commitments and rolls.
	// Production callers pass crypto/rand.Reader.
	Random io.Reader

	// Provider solicits exchange contributions from the user.
	Provider protocol.InputProvider

	// Menu drives die selection prompts.
	Menu Menu

	// Display is the line sink for all game and audit output.
	Display protocol.Display

	// Pick selects the computer's die uniformly from n remaining options.
	// This draw is not fairness-critical: the pick is public and
	// irrevocable before the user chooses, so no adversarial stake is
	// attached to it. Defaults to math/rand/v2. Tests inject a fixed pick.
	Pick func(n int) int
}

// Session owns all mutable game state for one play-through. A session is
// single-use: Run drives it from the initial state to a terminal one.
type Session struct {
	dice       []dice.Die
	exchanger  *protocol.Exchanger
	menu       Menu
	display    protocol.Display
	pick       func(n int) int
	transcript *protocol.Transcript
	log        zerolog.Logger
	cancelled  *atomic.Bool

	state       State
	userFirst   bool
	computerDie int
	userDie     int
	compRoll    int
	userRoll    int
	outcome     Outcome
}

// NewSession wires a session from its collaborators.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Dice) == 0 {
		return nil, ErrNoDice
	}
	pick := cfg.Pick
	if pick == nil {
		pick = rand.IntN
	}

	s := &Session{
		dice:        cfg.Dice,
		menu:        cfg.Menu,
		display:     cfg.Display,
		pick:        pick,
		transcript:  protocol.NewTranscript(),
		log:         zerolog.Nop(),
		cancelled:   atomic.NewBool(false),
		state:       StateDeterminingFirstPlayer,
		computerDie: -1,
		userDie:     -1,
	}

	s.exchanger = protocol.NewExchanger(cfg.Random, cfg.Provider, cfg.Display)
	s.exchanger.SetHelp(s.showHelp)
	s.exchanger.SetTranscript(s.transcript)
	return s, nil
}

// SetLogger attaches a logger for state transition debug events. The
// exchanger inherits it.
func (s *Session) SetLogger(log zerolog.Logger) {
	s.log = log
	s.exchanger.SetLogger(log)
}

// Cancel requests session termination. Used by the interrupt handler; the
// session funnels it through the same exit transition as a menu cancel.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

// State returns the current machine state.
func (s *Session) State() State {
	return s.state
}

// Transcript returns the session's audit transcript.
func (s *Session) Transcript() *protocol.Transcript {
	return s.transcript
}

// Run drives the state machine to a terminal state and returns the outcome.
// User cancellation is a normal result (OutcomeExited, nil error); a non-nil
// error means an unrecoverable fault such as entropy failure.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	for {
		if s.cancelled.Load() && s.state != StateExited && s.state != StateCompleted {
			s.transition(StateExited)
		}

		var err error
		switch s.state {
		case StateDeterminingFirstPlayer:
			err = s.determineFirstPlayer(ctx)
		case StateSelectingDice:
			err = s.selectDice(ctx)
		case StateRolling:
			err = s.roll(ctx)
		case StateAdjudicating:
			s.adjudicate()
		case StateExited:
			s.outcome = OutcomeExited
			s.finish()
			return s.outcome, nil
		case StateCompleted:
			s.finish()
			return s.outcome, nil
		default:
			return OutcomeUnspecified, fmt.Errorf("game: invalid state %d", int(s.state))
		}

		if errors.Is(err, protocol.ErrCancelled) {
			s.transition(StateExited)
			continue
		}
		if err != nil {
			return OutcomeUnspecified, err
		}
	}
}

func (s *Session) transition(next State) {
	s.log.Debug().Stringer("from", s.state).Stringer("to", next).Msg("state transition")
	s.state = next
}

func (s *Session) determineFirstPlayer(ctx context.Context) error {
	result, err := s.exchanger.Exchange(ctx, 0, 1, "Let's determine who makes the first move.")
	if err != nil {
		return err
	}

	// 0: the computer moves first, 1: the user moves first.
	s.userFirst = result.Combined == 1
	if s.userFirst {
		s.display.Printf("You make the first move.")
	} else {
		s.display.Printf("I make the first move.")
	}
	s.transition(StateSelectingDice)
	return nil
}

func (s *Session) selectDice(ctx context.Context) error {
	if s.userFirst {
		if err := s.userPickDie(ctx); err != nil {
			return err
		}
		s.computerPickDie()
	} else {
		s.computerPickDie()
		if err := s.userPickDie(ctx); err != nil {
			return err
		}
	}
	s.transition(StateRolling)
	return nil
}

// computerPickDie picks uniformly from the dice the user has not taken.
// The exclusion rule: a die already taken is never available again.
func (s *Session) computerPickDie() {
	available := s.availableDice()
	s.computerDie = available[s.pick(len(available))]
	s.display.Printf("I choose the [%s] die.", s.dice[s.computerDie])
}

func (s *Session) userPickDie(ctx context.Context) error {
	available := s.availableDice()
	options := make([]string, len(available))
	for i, idx := range available {
		options[i] = s.dice[idx].String()
	}

	for {
		choice, err := s.menu.Select(ctx, "Choose your dice:", options)
		if errors.Is(err, protocol.ErrHelpRequested) {
			s.showHelp()
			continue
		}
		if err != nil {
			return err
		}
		s.userDie = available[choice]
		s.display.Printf("You choose the [%s] die.", s.dice[s.userDie])
		return nil
	}
}

// availableDice returns indices of the dice neither player has taken yet.
func (s *Session) availableDice() []int {
	available := make([]int, 0, len(s.dice))
	for i := range s.dice {
		if i == s.computerDie || i == s.userDie {
			continue
		}
		available = append(available, i)
	}
	return available
}

func (s *Session) roll(ctx context.Context) error {
	order := []bool{s.userFirst, !s.userFirst}
	for _, userTurn := range order {
		if userTurn {
			if err := s.rollUser(ctx); err != nil {
				return err
			}
		} else {
			if err := s.rollComputer(ctx); err != nil {
				return err
			}
		}
	}
	s.transition(StateAdjudicating)
	return nil
}

func (s *Session) rollComputer(ctx context.Context) error {
	die := s.dice[s.computerDie]
	result, err := s.exchanger.Exchange(ctx, 0, die.Size()-1, "It's time for my roll.")
	if err != nil {
		return err
	}
	s.compRoll = die.Face(result.Combined)
	s.display.Printf("My roll result is %d.", s.compRoll)
	return nil
}

func (s *Session) rollUser(ctx context.Context) error {
	die := s.dice[s.userDie]
	result, err := s.exchanger.Exchange(ctx, 0, die.Size()-1, "It's time for your roll.")
	if err != nil {
		return err
	}
	s.userRoll = die.Face(result.Combined)
	s.display.Printf("Your roll result is %d.", s.userRoll)
	return nil
}

// adjudicate compares the two rolls: strictly greater wins, equal ties.
// This is the n=1 case of the probability engine's comparison rule.
func (s *Session) adjudicate() {
	switch {
	case s.userRoll > s.compRoll:
		s.outcome = OutcomeUserWins
		s.display.Printf("You win (%d > %d)!", s.userRoll, s.compRoll)
	case s.compRoll > s.userRoll:
		s.outcome = OutcomeComputerWins
		s.display.Printf("I win (%d > %d)!", s.compRoll, s.userRoll)
	default:
		s.outcome = OutcomeTie
		s.display.Printf("It's a tie (%d = %d)!", s.userRoll, s.compRoll)
	}
	s.transition(StateCompleted)
}

// finish emits the session audit digest covering every exchange round,
// including any round cancelled before its reveal.
func (s *Session) finish() {
	if s.transcript.Len() == 0 {
		return
	}
	digest := s.transcript.Digest()
	s.display.Printf("Session audit digest over %d round(s): %X.", s.transcript.Len(), digest)
	s.log.Info().Stringer("outcome", s.outcome).Int("rounds", s.transcript.Len()).Msg("session finished")
}

// showHelp renders the pairwise win probability table. Invoked on any help
// request; the pending prompt is re-issued afterwards.
func (s *Session) showHelp() {
	var b strings.Builder
	probability.RenderTable(&b, s.dice)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		s.display.Printf("%s", line)
	}
}
