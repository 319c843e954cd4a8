package tally

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxCandidates bounds the candidate table and the length of a ballot.
const MaxCandidates = 128

type Status uint8

const (
	StatusActive Status = iota
	StatusMinVotes
	// StatusDropped 候选人已被淘汰，不再接收转移的选票
	StatusDropped
)

var statusMap = [...]string{
	"Active",
	"MinVotes",
	"Dropped",
}

var letterMap = [...]byte{'A', 'M', 'D'}

func (s Status) String() string {
	if int(s) < len(statusMap) {
		return statusMap[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Letter is the single character used in the round table.
func (s Status) Letter() byte {
	if int(s) < len(letterMap) {
		return letterMap[s]
	}
	return '?'
}

// StatusFromLetter reverses Letter.
func StatusFromLetter(l byte) (Status, bool) {
	for i, c := range letterMap {
		if c == l {
			return Status(i), true
		}
	}
	return 0, false
}

type Candidate struct {
	ID     int
	Name   string
	Status Status
	Votes  int
}

// Registry is the fixed-size candidate table, indexed by candidate id.
type Registry struct {
	candidates []Candidate
}

func NewRegistry(names []string) (*Registry, error) {
	if len(names) == 0 {
		return nil, errors.New("registry needs at least one candidate")
	}
	if len(names) > MaxCandidates {
		return nil, errors.Errorf("%d candidates exceeds the maximum of %d", len(names), MaxCandidates)
	}
	r := &Registry{candidates: make([]Candidate, len(names))}
	for i, name := range names {
		r.candidates[i] = Candidate{ID: i, Name: name, Status: StatusActive}
	}
	return r, nil
}

func (r *Registry) Len() int {
	return len(r.candidates)
}

// Valid reports whether id names a candidate of this registry.
func (r *Registry) Valid(id int) bool {
	return id >= 0 && id < len(r.candidates)
}

func (r *Registry) Get(id int) (Candidate, error) {
	if !r.Valid(id) {
		return Candidate{}, errors.Wrapf(ErrUnknownCandidate, "candidate %d", id)
	}
	return r.candidates[id], nil
}

func (r *Registry) Status(id int) Status {
	return r.candidates[id].Status
}

// Eligible reports whether a ballot may be counted for id. Candidates with
// minimum votes stay eligible until they are dropped.
func (r *Registry) Eligible(id int) bool {
	return r.Valid(id) && r.candidates[id].Status != StatusDropped
}

// setStatus never takes a candidate out of StatusDropped.
func (r *Registry) setStatus(id int, s Status) {
	if r.candidates[id].Status == StatusDropped {
		return
	}
	r.candidates[id].Status = s
}

func (r *Registry) addVotes(id int, delta int) {
	r.candidates[id].Votes += delta
}

// Visit calls f for every candidate in id order.
func (r *Registry) Visit(f func(c Candidate)) {
	for _, c := range r.candidates {
		f(c)
	}
}

// Candidates returns a copy of the table.
func (r *Registry) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// CountStatus returns how many candidates hold each known status, and the
// number of candidates with a status outside the known set.
func (r *Registry) CountStatus() (active, minVotes, dropped, unknown int) {
	for _, c := range r.candidates {
		switch c.Status {
		case StatusActive:
			active++
		case StatusMinVotes:
			minVotes++
		case StatusDropped:
			dropped++
		default:
			unknown++
		}
	}
	return active, minVotes, dropped, unknown
}
