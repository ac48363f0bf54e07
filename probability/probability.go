package probability

import (
	"math/big"

	"github.com/fairdice/fairdice/dice"
)

// WinProbability returns P(a rolls strictly greater than b) as an exact
// rational, counted over every face pair of the two dice.
func WinProbability(a, b dice.Die) *big.Rat {
	wins := 0
	for i := 0; i < a.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			if a.Face(i) > b.Face(j) {
				wins++
			}
		}
	}
	return big.NewRat(int64(wins), int64(a.Size()*b.Size()))
}

// Matrix returns the full pairwise win probability matrix for a dice set:
// matrix[i][j] = P(die i beats die j). The diagonal is fixed at 1/2 by
// display convention; a die is never compared against itself in play.
func Matrix(set []dice.Die) [][]*big.Rat {
	matrix := make([][]*big.Rat, len(set))
	for i := range set {
		matrix[i] = make([]*big.Rat, len(set))
		for j := range set {
			if i == j {
				matrix[i][j] = big.NewRat(1, 2)
				continue
			}
			matrix[i][j] = WinProbability(set[i], set[j])
		}
	}
	return matrix
}

// Beats reports whether a beats b, that is P(a > b) > 1/2.
func Beats(a, b dice.Die) bool {
	return WinProbability(a, b).Cmp(big.NewRat(1, 2)) > 0
}

// IsNonTransitiveCycle reports whether the dice at the given indices form a
// beating cycle: each die beats the next, and the last beats the first.
func IsNonTransitiveCycle(set []dice.Die, order []int) bool {
	if len(order) < 3 {
		return false
	}
	for i, idx := range order {
		next := order[(i+1)%len(order)]
		if !Beats(set[idx], set[next]) {
			return false
		}
	}
	return true
}
