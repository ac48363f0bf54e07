// Package probability computes exact pairwise win probabilities for dice
// sets. It is the mathematical definition of "beats" used by the game: die A
// beats die B when A's face strictly exceeds B's in more than half of all
// face pairings.
//
// All probabilities are exact rationals computed over the full Cartesian
// product of face pairs; nothing is sampled. The package has no mutable
// state and no side effects; everything is derived from the immutable dice
// model on demand.
package probability
