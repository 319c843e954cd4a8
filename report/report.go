// Package report renders election progress as text: the per-round table,
// the ballot dump and the final outcome. ParseTable reads a printed table
// back into rows.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"rcv/tally"
)

const tableHeader = "NUM COUNT %PERC S NAME"

var hundred = decimal.NewFromInt(100)

// Row is one line of the round table. Count is meaningless when Withheld.
type Row struct {
	ID       int
	Count    int
	Withheld bool
	Percent  string
	Status   byte
	Name     string
}

// Percent formats votes as a share of total with one decimal place. A zero
// total gives "0.0".
func Percent(votes, total int) string {
	if total <= 0 {
		return "0.0"
	}
	return decimal.NewFromInt(int64(votes)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		StringFixed(1)
}

// Rows projects a snapshot onto table rows.
func Rows(s tally.Snapshot) []Row {
	total := s.ValidVotes()
	rows := make([]Row, len(s.Candidates))
	for i, c := range s.Candidates {
		r := Row{ID: c.ID, Status: c.Status.Letter(), Name: c.Name}
		if c.Status == tally.StatusDropped {
			r.Withheld = true
		} else {
			r.Count = c.Votes
			r.Percent = Percent(c.Votes, total)
		}
		rows[i] = r
	}
	return rows
}

// WriteTable prints the round table and, when there are invalid ballots,
// their count.
func WriteTable(w io.Writer, s tally.Snapshot) error {
	if _, err := fmt.Fprintln(w, tableHeader); err != nil {
		return err
	}
	for _, r := range Rows(s) {
		var err error
		if r.Withheld {
			_, err = fmt.Fprintf(w, "%3d     -     - %c %-10s\n", r.ID, r.Status, r.Name)
		} else {
			_, err = fmt.Fprintf(w, "%3d %5d %5s %c %-10s\n", r.ID, r.Count, r.Percent, r.Status, r.Name)
		}
		if err != nil {
			return err
		}
	}
	if s.Invalid > 0 {
		if _, err := fmt.Fprintf(w, "Invalid vote count: %d\n", s.Invalid); err != nil {
			return err
		}
	}
	return nil
}

// WriteVotes prints every candidate's ballots followed by the invalid ones.
// The snapshot must have been taken at tally.LevelShowVotes.
func WriteVotes(w io.Writer, s tally.Snapshot) error {
	for i, c := range s.Candidates {
		var ballots []tally.Ballot
		if i < len(s.Buckets) {
			ballots = s.Buckets[i]
		}
		if _, err := fmt.Fprintf(w, "VOTES FOR CANDIDATE %d: %s\n", c.ID, c.Name); err != nil {
			return err
		}
		if err := writeBallots(w, ballots); err != nil {
			return err
		}
	}
	if len(s.InvalidBallots) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "INVALID VOTES"); err != nil {
		return err
	}
	return writeBallots(w, s.InvalidBallots)
}

func writeBallots(w io.Writer, ballots []tally.Ballot) error {
	for i := range ballots {
		if _, err := fmt.Fprintf(w, "  %s\n", ballots[i].String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d votes total\n", len(ballots))
	return err
}

// WriteOutcome prints the winner, the tied candidates or the error line.
func WriteOutcome(w io.Writer, o tally.Outcome) error {
	switch o.Condition {
	case tally.ConditionWinner:
		_, err := fmt.Fprintf(w, "Winner: %s (candidate %d)\n", o.Winner.Name, o.Winner.ID)
		return err
	case tally.ConditionTie:
		if _, err := fmt.Fprintln(w, "Multiway Tie Between:"); err != nil {
			return err
		}
		for _, c := range o.Tied {
			if _, err := fmt.Fprintf(w, "%s (candidate %d)\n", c.Name, c.ID); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, "Something is rotten in the state of Denmark")
		return err
	}
}
