package tally

import (
	"fmt"
	"strings"
)

// NoCandidate marks the end of a ballot's preferences and is returned when a
// ballot has no further candidate to count for.
const NoCandidate = -1

// Ballot is one voter's ranked preference list plus a cursor into it.
// Once a ballot sits in a Tally it is owned by exactly one bucket; callers
// must only read it.
type Ballot struct {
	ID          int
	preferences []int
	pos         int
	next        *Ballot // 同一个bucket中的下一张选票
}

// NewBallot copies prefs, truncating at the first negative id and at
// MaxCandidates entries.
func NewBallot(id int, prefs []int) *Ballot {
	n := len(prefs)
	if n > MaxCandidates {
		n = MaxCandidates
	}
	b := &Ballot{ID: id, preferences: make([]int, 0, n)}
	for _, p := range prefs[:n] {
		if p < 0 {
			break
		}
		b.preferences = append(b.preferences, p)
	}
	return b
}

// Preferences returns a copy of the ranked candidate ids.
func (b *Ballot) Preferences() []int {
	out := make([]int, len(b.preferences))
	copy(out, b.preferences)
	return out
}

// Position is the index of the currently counted preference.
func (b *Ballot) Position() int {
	return b.pos
}

// Current returns the candidate id at the cursor, or NoCandidate when the
// cursor is past the last preference or on an id r does not know.
func (b *Ballot) Current(r *Registry) int {
	if b.pos >= len(b.preferences) {
		return NoCandidate
	}
	id := b.preferences[b.pos]
	if !r.Valid(id) {
		return NoCandidate
	}
	return id
}

// NextCandidate moves the cursor forward until it rests on a preference that
// r reports as eligible and returns that candidate. The cursor is left on the
// match. When the preferences run out, or an unknown id is reached, the
// cursor stops there and NoCandidate is returned.
func (b *Ballot) NextCandidate(r *Registry) int {
	for b.pos < len(b.preferences) {
		id := b.preferences[b.pos]
		if !r.Valid(id) {
			return NoCandidate
		}
		if r.Eligible(id) {
			return id
		}
		b.pos++
	}
	return NoCandidate
}

// Skip advances the cursor by one position, never past the end.
func (b *Ballot) Skip() {
	if b.pos < len(b.preferences) {
		b.pos++
	}
}

// String renders the ballot as "#0017: 3 <0> 2  1 " with the cursor
// position in angle brackets.
func (b *Ballot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%04d:", b.ID)
	for i, p := range b.preferences {
		if i == b.pos {
			fmt.Fprintf(&sb, "<%d> ", p)
		} else {
			fmt.Fprintf(&sb, " %d ", p)
		}
	}
	return sb.String()
}

// snapshot copies the ballot without its bucket link.
func (b *Ballot) snapshot() Ballot {
	return Ballot{ID: b.ID, preferences: b.preferences, pos: b.pos}
}
