// Package dice implements the immutable dice model for the fair dice game.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FaceCount is the number of faces every die must have.
// All dice in one session share this fixed face count; it is validated at
// construction time.
const FaceCount = 6

// MinDice is the smallest playable dice set. Fewer dice would make the
// exclusion rule degenerate (the second player would have no choice).
const MinDice = 3

// ErrTooFewDice indicates fewer than MinDice dice were supplied.
var ErrTooFewDice = errors.New("dice: at least 3 dice are required")

// ErrFaceCount indicates a die does not have exactly FaceCount faces.
var ErrFaceCount = errors.New("dice: each die must have exactly 6 faces")

// ErrBadFace indicates a face value that is not an integer.
var ErrBadFace = errors.New("dice: face values must be integers")

// Die is one die's ordered face values plus its ordinal label within the
// session's dice set. Dice are immutable after construction.
type Die struct {
	faces []int
	label int
}

// New constructs a die from its ordered face values.
// The face slice is copied so later mutation by the caller cannot reach the
// die. The label is the die's zero-based position in the session set.
func New(label int, faces []int) (Die, error) {
	if len(faces) != FaceCount {
		return Die{}, fmt.Errorf("%w, got %d", ErrFaceCount, len(faces))
	}
	copied := make([]int, len(faces))
	copy(copied, faces)
	return Die{faces: copied, label: label}, nil
}

// Face returns the value of the face at index i in [0, Size()).
func (d Die) Face(i int) int {
	return d.faces[i]
}

// Size returns the die's face count.
func (d Die) Size() int {
	return len(d.faces)
}

// Label returns the die's zero-based ordinal within the session set.
func (d Die) Label() int {
	return d.label
}

// String renders the die as its comma-separated face list, matching the
// command-line argument form.
func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

// Parse parses one die from a comma-separated list of integer face values.
func Parse(label int, arg string) (Die, error) {
	parts := strings.Split(arg, ",")
	faces := make([]int, 0, len(parts))
	for _, part := range parts {
		face, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Die{}, fmt.Errorf("%w: %q in %q", ErrBadFace, part, arg)
		}
		faces = append(faces, face)
	}
	die, err := New(label, faces)
	if err != nil {
		return Die{}, fmt.Errorf("%w in %q", err, arg)
	}
	return die, nil
}

// ParseSet parses a full dice set from command-line arguments, one die per
// argument. At least MinDice dice are required and every die must have
// exactly FaceCount faces.
// Per-die validation runs before the set-size check so a malformed die is
// reported even when too few dice were supplied.
func ParseSet(args []string) ([]Die, error) {
	set := make([]Die, 0, len(args))
	for i, arg := range args {
		die, err := Parse(i, arg)
		if err != nil {
			return nil, fmt.Errorf("die %d: %w", i+1, err)
		}
		set = append(set, die)
	}
	if len(set) < MinDice {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewDice, len(set))
	}
	return set, nil
}
