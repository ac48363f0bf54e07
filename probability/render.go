package probability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fairdice/fairdice/dice"
)

// RenderTable writes a plain-text table of pairwise win probabilities for
// the dice set, one row per user die. Probabilities are the exact rationals
// from Matrix rendered with four decimal places; the diagonal is the 1/2
// display convention, not a playable pairing.
func RenderTable(w io.Writer, set []dice.Die) {
	matrix := Matrix(set)

	headers := make([]string, len(set))
	width := len("User dice")
	for i, die := range set {
		headers[i] = die.String()
		if len(headers[i]) > width {
			width = len(headers[i])
		}
	}
	// Widest possible cell is the diagonal marker "- (0.5000)".
	if width < 10 {
		width = 10
	}

	fmt.Fprintln(w, "Probability of the win for the user:")

	divider := "+" + strings.Repeat(strings.Repeat("-", width+2)+"+", len(set)+1)
	fmt.Fprintln(w, divider)

	fmt.Fprintf(w, "| %-*s |", width, "User dice")
	for _, h := range headers {
		fmt.Fprintf(w, " %-*s |", width, h)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)

	for i, die := range set {
		fmt.Fprintf(w, "| %-*s |", width, die.String())
		for j := range set {
			cell := matrix[i][j].FloatString(4)
			if i == j {
				cell = "- (" + cell + ")"
			}
			fmt.Fprintf(w, " %-*s |", width, cell)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, divider)
	}
}
