package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertConsistent(t *testing.T, p *Partition) {
	t.Helper()
	assert.Equal(t, p.Total(), p.Held(), "every ballot sits in exactly one bucket")
	p.reg.Visit(func(c Candidate) {
		assert.Equal(t, p.Len(c.ID), c.Votes, "count of candidate %d", c.ID)
	})
}

func TestPartition_Assign(t *testing.T) {
	r := newTestRegistry(t, 2)
	p := NewPartition(r)

	assert.Equal(t, 1, p.Assign(NewBallot(1, []int{1, 0})))
	assert.Equal(t, 1, p.Assign(NewBallot(2, []int{1, 0})))
	assert.Equal(t, NoCandidate, p.Assign(NewBallot(3, []int{NoCandidate, 0})))

	assert.Equal(t, 0, p.Len(0))
	assert.Equal(t, 2, p.Len(1))
	assert.Equal(t, 1, p.InvalidLen())
	// newest first
	assert.Equal(t, 2, p.Ballots(1)[0].ID)
	assertConsistent(t, p)
}

func TestPartition_TransferFirst(t *testing.T) {
	r := newTestRegistry(t, 4)
	p := NewPartition(r)
	p.Assign(NewBallot(1, []int{1, 0, 2, 3}))
	p.Assign(NewBallot(2, []int{1, 3, 2, 0}))
	p.Assign(NewBallot(3, []int{0, 1, 2, 3}))

	tr, ok := p.TransferFirst(1)
	require.True(t, ok)
	assert.Equal(t, 2, tr.Ballot.ID)
	assert.Equal(t, 1, tr.From)
	assert.Equal(t, 3, tr.To)
	assert.Equal(t, 1, p.Len(1))
	assert.Equal(t, 1, p.Len(3))
	assert.Equal(t, 2, p.Ballots(3)[0].ID)
	assertConsistent(t, p)
}

func TestPartition_TransferFirst_toInvalid(t *testing.T) {
	r := newTestRegistry(t, 2)
	p := NewPartition(r)
	p.Assign(NewBallot(1, []int{1, NoCandidate}))

	tr, ok := p.TransferFirst(1)
	require.True(t, ok)
	assert.True(t, tr.Invalid())
	assert.Equal(t, 0, p.Len(1))
	assert.Equal(t, 1, p.InvalidLen())
	assertConsistent(t, p)
}

func TestPartition_TransferFirst_noop(t *testing.T) {
	r := newTestRegistry(t, 2)
	p := NewPartition(r)
	p.Assign(NewBallot(1, []int{0, 1}))

	_, ok := p.TransferFirst(1)
	assert.False(t, ok)
	_, ok = p.TransferFirst(9)
	assert.False(t, ok)
	assert.Equal(t, 1, p.Len(0))
	assertConsistent(t, p)
}

func TestPartition_TransferFirst_conserves(t *testing.T) {
	r := newTestRegistry(t, 3)
	p := NewPartition(r)
	for i, prefs := range [][]int{{0, 1, 2}, {0, 2, 1}, {0}, {1, 0}, {2, 1, 0}} {
		p.Assign(NewBallot(i+1, prefs))
	}
	r.setStatus(0, StatusDropped)
	for p.Len(0) > 0 {
		before := p.Held()
		_, ok := p.TransferFirst(0)
		require.True(t, ok)
		assert.Equal(t, before, p.Held())
		assertConsistent(t, p)
	}
	assert.Equal(t, 1, p.InvalidLen())
	assert.Equal(t, 2, p.Len(1))
	assert.Equal(t, 2, p.Len(2))
}

func TestPartition_Release(t *testing.T) {
	r := newTestRegistry(t, 2)
	p := NewPartition(r)
	p.Assign(NewBallot(1, []int{0, 1}))
	b := NewBallot(2, []int{0, 1})
	p.Assign(b)
	p.Assign(NewBallot(3, nil))
	require.NotNil(t, b.next)

	p.Release()
	assert.Equal(t, 0, p.Held())
	assert.Nil(t, b.next)
	assertConsistent(t, p)
}
