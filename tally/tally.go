package tally

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Tally is the candidate registry, the ballot partition and the invalid
// count of one election. It is mutated in place each round and is not safe
// for concurrent use.
type Tally struct {
	reg    *Registry
	part   *Partition
	opts   Options
	nextID int
}

func New(names []string, opts Options) (*Tally, error) {
	reg, err := NewRegistry(names)
	if err != nil {
		return nil, err
	}
	return &Tally{
		reg:    reg,
		part:   NewPartition(reg),
		opts:   opts,
		nextID: 1,
	}, nil
}

// AddBallot creates the next ballot in read order and assigns it to its
// first preference.
func (t *Tally) AddBallot(prefs []int) *Ballot {
	b := NewBallot(t.nextID, prefs)
	t.nextID++
	t.part.Assign(b)
	return b
}

func (t *Tally) CandidateCount() int {
	return t.reg.Len()
}

func (t *Tally) Candidate(id int) (Candidate, error) {
	return t.reg.Get(id)
}

func (t *Tally) Candidates() []Candidate {
	return t.reg.Candidates()
}

func (t *Tally) InvalidCount() int {
	return t.part.InvalidLen()
}

// TotalBallots is the number of ballots loaded, valid or not.
func (t *Tally) TotalBallots() int {
	return t.part.Total()
}

// ValidVotes sums the vote counts of all candidates.
func (t *Tally) ValidVotes() int {
	total := 0
	t.reg.Visit(func(c Candidate) {
		total += c.Votes
	})
	return total
}

func (t *Tally) Ballots(id int) ([]Ballot, error) {
	if !t.reg.Valid(id) {
		return nil, errors.Wrapf(ErrUnknownCandidate, "candidate %d", id)
	}
	return t.part.Ballots(id), nil
}

func (t *Tally) InvalidBallots() []Ballot {
	return t.part.InvalidBallots()
}

// TransferFirst moves the first ballot counted for candidate id to its next
// eligible preference, or to the invalid bucket. An empty bucket is a no-op.
func (t *Tally) TransferFirst(id int) error {
	if !t.reg.Valid(id) {
		return errors.Wrapf(ErrUnknownCandidate, "transfer from candidate %d", id)
	}
	tr, ok := t.part.TransferFirst(id)
	if !ok {
		return nil
	}
	from := t.reg.candidates[tr.From]
	if tr.Invalid() {
		t.opts.Trace(LevelVoteTransfers, "transferred vote to invalid",
			zap.Stringer("vote", tr.Ballot),
			zap.Int("from", from.ID),
			zap.String("from_name", from.Name))
		return nil
	}
	to := t.reg.candidates[tr.To]
	t.opts.Trace(LevelVoteTransfers, "transferred vote",
		zap.Stringer("vote", tr.Ballot),
		zap.Int("from", from.ID),
		zap.String("from_name", from.Name),
		zap.Int("to", to.ID),
		zap.String("to_name", to.Name))
	return nil
}

// SetMinVoteCandidates marks every candidate that is not dropped and holds
// the minimum vote count as StatusMinVotes. Ties are all marked.
func (t *Tally) SetMinVoteCandidates() {
	lowest := -1
	t.reg.Visit(func(c Candidate) {
		if c.Status == StatusDropped {
			return
		}
		if lowest == -1 || c.Votes < lowest {
			lowest = c.Votes
		}
	})
	if lowest == -1 {
		t.opts.Trace(LevelMinVote, "no minimum vote count found")
		return
	}
	t.opts.Trace(LevelMinVote, "minimum vote count", zap.Int("votes", lowest))

	for i := range t.reg.candidates {
		c := t.reg.candidates[i]
		if c.Status == StatusDropped || c.Votes != lowest {
			continue
		}
		t.reg.setStatus(i, StatusMinVotes)
		t.opts.Trace(LevelMinVote, "minimum vote count for candidate",
			zap.Int("candidate", c.ID),
			zap.String("name", c.Name))
	}
}

// DropMinVoteCandidates drains each StatusMinVotes candidate in id order and
// then marks it dropped. A minimum-vote candidate later in the order is still
// a valid destination while an earlier one drains.
func (t *Tally) DropMinVoteCandidates() {
	for i := range t.reg.candidates {
		if t.reg.Status(i) != StatusMinVotes {
			continue
		}
		for t.part.Len(i) > 0 {
			// i is always valid here.
			_ = t.TransferFirst(i)
		}
		t.reg.setStatus(i, StatusDropped)
		c := t.reg.candidates[i]
		t.opts.Trace(LevelDropMinVotes, "dropped candidate",
			zap.Int("candidate", c.ID),
			zap.String("name", c.Name))
	}
}

// Condition classifies the tally from its status counts.
func (t *Tally) Condition() (Condition, error) {
	active, minVotes, _, unknown := t.reg.CountStatus()
	if unknown > 0 {
		return ConditionError, errors.Wrapf(ErrTallyInvariant, "%d candidates with unknown status", unknown)
	}
	switch {
	case active == 1:
		return ConditionWinner, nil
	case active > 1:
		return ConditionContinue, nil
	case minVotes > 1:
		return ConditionTie, nil
	}
	return ConditionError, errors.Wrapf(ErrNoResult, "%d active, %d with minimum votes", active, minVotes)
}

// Release unlinks all ballots. The tally must not be used afterwards.
func (t *Tally) Release() {
	t.part.Release()
}
