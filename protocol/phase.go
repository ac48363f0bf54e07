package protocol

// Phase identifies a step within one exchange round. Phases are strictly
// ordered and only ever advance; a round that cannot complete is abandoned,
// never rewound.
type Phase int

const (
	PhaseCommit Phase = iota
	PhaseContribute
	PhaseReveal
	PhaseCombine
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseCommit:
		return "commit"
	case PhaseContribute:
		return "contribute"
	case PhaseReveal:
		return "reveal"
	case PhaseCombine:
		return "combine"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Advance returns the next phase, saturating at PhaseDone.
func (p Phase) Advance() Phase {
	if p >= PhaseDone {
		return PhaseDone
	}
	return p + 1
}

// IsAfter reports whether p is strictly later in the round than p2.
func (p Phase) IsAfter(p2 Phase) bool {
	return p > p2
}
