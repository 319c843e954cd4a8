package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcv/tally"
)

func snapshot() tally.Snapshot {
	return tally.Snapshot{
		Round: 2,
		Candidates: []tally.Candidate{
			{ID: 0, Name: "Francis", Status: tally.StatusActive, Votes: 4},
			{ID: 1, Name: "Claire", Status: tally.StatusMinVotes, Votes: 1},
			{ID: 2, Name: "Heather", Status: tally.StatusDropped},
			{ID: 3, Name: "Viktor", Status: tally.StatusActive, Votes: 2},
		},
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		votes, total int
		want         string
	}{
		{4, 7, "57.1"},
		{1, 7, "14.3"},
		{2, 7, "28.6"},
		{5, 12, "41.7"},
		{1, 12, "8.3"},
		{3, 3, "100.0"},
		{0, 5, "0.0"},
		{0, 0, "0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.votes, tt.total), "%d/%d", tt.votes, tt.total)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, snapshot()))
	want := "NUM COUNT %PERC S NAME\n" +
		"  0     4  57.1 A Francis   \n" +
		"  1     1  14.3 M Claire    \n" +
		"  2     -     - D Heather   \n" +
		"  3     2  28.6 A Viktor    \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable_invalidAndNoValidVotes(t *testing.T) {
	s := tally.Snapshot{
		Candidates: []tally.Candidate{
			{ID: 0, Name: "A", Status: tally.StatusActive},
			{ID: 1, Name: "B", Status: tally.StatusActive},
		},
		Invalid: 5,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, s))
	want := "NUM COUNT %PERC S NAME\n" +
		"  0     0   0.0 A A         \n" +
		"  1     0   0.0 A B         \n" +
		"Invalid vote count: 5\n"
	assert.Equal(t, want, buf.String())
}

func TestParseTable_roundTrip(t *testing.T) {
	snaps := []tally.Snapshot{snapshot()}
	with := snapshot()
	with.Invalid = 3
	snaps = append(snaps, with)

	for _, s := range snaps {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, s))

		rows, invalid, err := ParseTable(&buf)
		require.NoError(t, err)
		assert.Equal(t, Rows(s), rows)
		assert.Equal(t, s.Invalid, invalid)

		for i, r := range rows {
			c := s.Candidates[i]
			status, ok := tally.StatusFromLetter(r.Status)
			require.True(t, ok)
			assert.Equal(t, c.Status, status)
			if !r.Withheld {
				assert.Equal(t, c.Votes, r.Count)
			}
		}
	}
}

func TestParseTable_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad_header", input: "ID VOTES\n"},
		{name: "short_row", input: tableHeader + "\n  0     4 A Francis\n"},
		{name: "bad_count", input: tableHeader + "\n  0     x  57.1 A Francis\n"},
		{name: "bad_invalid", input: tableHeader + "\nInvalid vote count: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTable(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func ballotsFor(t *testing.T) tally.Snapshot {
	tl, err := tally.New([]string{"Andy", "Bethany"}, tally.Options{Verbosity: tally.LevelShowVotes})
	require.NoError(t, err)
	tl.AddBallot([]int{0, 1})
	tl.AddBallot([]int{0, 1})
	tl.AddBallot([]int{tally.NoCandidate})

	rec := &recorder{}
	tally.NewElection(tl, rec).Step(1)
	require.Len(t, rec.votes, 1)
	return rec.votes[0]
}

type recorder struct {
	votes []tally.Snapshot
}

func (r *recorder) Round(tally.Snapshot)   {}
func (r *recorder) Votes(s tally.Snapshot) { r.votes = append(r.votes, s) }

func TestWriteVotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVotes(&buf, ballotsFor(t)))
	want := "VOTES FOR CANDIDATE 0: Andy\n" +
		"  #0002:<0>  1 \n" +
		"  #0001:<0>  1 \n" +
		"2 votes total\n" +
		"VOTES FOR CANDIDATE 1: Bethany\n" +
		"0 votes total\n" +
		"INVALID VOTES\n" +
		"  #0003:\n" +
		"1 votes total\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome tally.Outcome
		want    string
	}{
		{
			name:    "winner",
			outcome: tally.Outcome{Condition: tally.ConditionWinner, Winner: tally.Candidate{ID: 0, Name: "Francis"}},
			want:    "Winner: Francis (candidate 0)\n",
		},
		{
			name: "tie",
			outcome: tally.Outcome{Condition: tally.ConditionTie, Tied: []tally.Candidate{
				{ID: 1, Name: "Claire"}, {ID: 3, Name: "Viktor"},
			}},
			want: "Multiway Tie Between:\nClaire (candidate 1)\nViktor (candidate 3)\n",
		},
		{
			name:    "error",
			outcome: tally.Outcome{Condition: tally.ConditionError, Err: tally.ErrNoResult},
			want:    "Something is rotten in the state of Denmark\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutcome(&buf, tt.outcome))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Round(snapshot())
	p.Outcome(tally.Outcome{Condition: tally.ConditionWinner, Winner: tally.Candidate{Name: "Francis"}})
	require.NoError(t, p.Err())
	assert.True(t, strings.HasPrefix(buf.String(), "=== ROUND 2 ===\nNUM COUNT %PERC S NAME\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "Winner: Francis (candidate 0)\n"))

	p = NewPrinter(failingWriter{})
	p.Round(snapshot())
	p.Votes(snapshot())
	assert.EqualError(t, p.Err(), "disk full")
}
