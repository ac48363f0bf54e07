package protocol

import (
	"github.com/fairdice/fairdice/crypto"
)

// ExchangeResult is the ephemeral outcome of one completed exchange round.
// It is produced and consumed within the round: the key it carries has been
// revealed and must not be reused.
type ExchangeResult struct {
	// Purpose is the caller-supplied label for what the round decided.
	Purpose string

	// Min and Max delimit the inclusive result range.
	Min, Max int

	// ComputerValue is the value the computer committed to before the user
	// contributed.
	ComputerValue int

	// UserContribution is the user's number modulo the range width.
	UserContribution int

	// Key is the commitment key, revealed during the round.
	Key crypto.SecretKey

	// Digest is the commitment digest published before the contribution.
	Digest crypto.Digest

	// Combined is the final fair value in [Min, Max].
	Combined int
}

// Combine folds the two contributions into the final value:
// (computer - min + user) mod width + min. Both inputs being independent
// and at least one uniform makes the sum uniform over the range.
func Combine(min, max, computerValue, userContribution int) int {
	width := max - min + 1
	return (computerValue-min+userContribution)%width + min
}
