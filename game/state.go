package game

// State is the orchestrator's position in the game state machine. Exactly
// one state is active at a time; transitions happen on a single logical
// thread.
type State int

const (
	StateDeterminingFirstPlayer State = iota
	StateSelectingDice
	StateRolling
	StateAdjudicating
	StateExited
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateDeterminingFirstPlayer:
		return "determining first player"
	case StateSelectingDice:
		return "selecting dice"
	case StateRolling:
		return "rolling"
	case StateAdjudicating:
		return "adjudicating"
	case StateExited:
		return "exited"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of one game session.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeUserWins
	OutcomeComputerWins
	OutcomeTie
	OutcomeExited
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnspecified:
		return "unspecified"
	case OutcomeUserWins:
		return "user wins"
	case OutcomeComputerWins:
		return "computer wins"
	case OutcomeTie:
		return "tie"
	case OutcomeExited:
		return "exited"
	default:
		return "unknown"
	}
}
