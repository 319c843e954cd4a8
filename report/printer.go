package report

import (
	"fmt"
	"io"

	"rcv/tally"
)

// Printer is a tally.Reporter writing to w. The first write error is kept
// and later writes are skipped.
type Printer struct {
	w   io.Writer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Round(s tally.Snapshot) {
	if p.err != nil {
		return
	}
	if _, p.err = fmt.Fprintf(p.w, "=== ROUND %d ===\n", s.Round); p.err != nil {
		return
	}
	p.err = WriteTable(p.w, s)
}

func (p *Printer) Votes(s tally.Snapshot) {
	if p.err != nil {
		return
	}
	p.err = WriteVotes(p.w, s)
}

func (p *Printer) Outcome(o tally.Outcome) {
	if p.err != nil {
		return
	}
	p.err = WriteOutcome(p.w, o)
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}
