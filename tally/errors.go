package tally

import "github.com/pkg/errors"

var (
	// ErrInput reports a malformed or unreadable election file.
	ErrInput = errors.New("rcv: invalid election input")
	// ErrTallyInvariant reports a candidate status outside the known set.
	ErrTallyInvariant = errors.New("rcv: tally invariant violated")
	// ErrNoResult reports a tally with no active candidate and fewer than two
	// candidates tied on minimum votes.
	ErrNoResult         = errors.New("rcv: tally ended without a winner or tie")
	ErrUnknownCandidate = errors.New("rcv: unknown candidate")
)
