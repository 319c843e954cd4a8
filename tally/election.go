package tally

// Snapshot is a copy of the tally taken once per round, after the previous
// round's minimum-vote candidates were dropped.
type Snapshot struct {
	Round      int
	Candidates []Candidate
	Invalid    int
	// Buckets and InvalidBallots are filled only at LevelShowVotes.
	Buckets        [][]Ballot
	InvalidBallots []Ballot
}

// ValidVotes sums the candidate counts of the snapshot.
func (s Snapshot) ValidVotes() int {
	total := 0
	for _, c := range s.Candidates {
		total += c.Votes
	}
	return total
}

// Reporter receives one snapshot per round. Votes is only called when the
// verbosity reaches LevelShowVotes.
type Reporter interface {
	Round(s Snapshot)
	Votes(s Snapshot)
}

type nopReporter struct{}

func (nopReporter) Round(Snapshot) {}
func (nopReporter) Votes(Snapshot) {}

// Outcome is the terminal result of an election.
type Outcome struct {
	Condition Condition
	Rounds    int
	Winner    Candidate
	Tied      []Candidate
	// Err is set when Condition is ConditionError.
	Err error
}

// Election drives a Tally through rounds until a terminal condition.
type Election struct {
	tally    *Tally
	reporter Reporter
}

func NewElection(t *Tally, r Reporter) *Election {
	if r == nil {
		r = nopReporter{}
	}
	return &Election{tally: t, reporter: r}
}

// Step runs one round: drop the candidates marked in the previous round,
// report, mark the new minimum and classify.
func (e *Election) Step(round int) (Condition, error) {
	t := e.tally
	t.DropMinVoteCandidates()

	snap := Snapshot{
		Round:      round,
		Candidates: t.Candidates(),
		Invalid:    t.InvalidCount(),
	}
	e.reporter.Round(snap)
	if t.opts.Verbosity.Enabled(LevelShowVotes) {
		snap.Buckets = make([][]Ballot, t.reg.Len())
		for i := range snap.Buckets {
			snap.Buckets[i] = t.part.Ballots(i)
		}
		snap.InvalidBallots = t.part.InvalidBallots()
		e.reporter.Votes(snap)
	}

	t.SetMinVoteCandidates()
	return t.Condition()
}

// Run loops until the condition is terminal and assembles the outcome.
func (e *Election) Run() Outcome {
	var (
		round = 1
		cond  Condition
		err   error
	)
	for {
		cond, err = e.Step(round)
		if cond.Terminal() {
			break
		}
		round++
	}

	out := Outcome{Condition: cond, Rounds: round, Err: err}
	switch cond {
	case ConditionWinner:
		e.tally.reg.Visit(func(c Candidate) {
			if c.Status == StatusActive {
				out.Winner = c
			}
		})
	case ConditionTie:
		e.tally.reg.Visit(func(c Candidate) {
			if c.Status == StatusMinVotes {
				out.Tied = append(out.Tied, c)
			}
		})
	}
	return out
}
