package tally

// bucket is an intrusive singly linked list of ballots. push and pop work
// on the front in O(1).
type bucket struct {
	head *Ballot
	n    int
}

func (bk *bucket) push(b *Ballot) {
	b.next = bk.head
	bk.head = b
	bk.n++
}

func (bk *bucket) pop() *Ballot {
	b := bk.head
	if b == nil {
		return nil
	}
	bk.head = b.next
	b.next = nil
	bk.n--
	return b
}

func (bk *bucket) visit(f func(b *Ballot)) {
	for b := bk.head; b != nil; b = b.next {
		f(b)
	}
}

func (bk *bucket) release() {
	for bk.pop() != nil {
	}
}

// Transfer describes one ballot moved by Partition.TransferFirst.
// To is NoCandidate when the ballot went to the invalid bucket.
type Transfer struct {
	Ballot *Ballot
	From   int
	To     int
}

func (tr Transfer) Invalid() bool {
	return tr.To == NoCandidate
}

// Partition owns, for each candidate and for the invalid bucket, the ballots
// currently assigned there. Candidate vote counts in the registry are kept
// equal to the bucket lengths.
type Partition struct {
	reg     *Registry
	buckets []bucket
	invalid bucket
	total   int
}

func NewPartition(reg *Registry) *Partition {
	return &Partition{
		reg:     reg,
		buckets: make([]bucket, reg.Len()),
	}
}

// Assign places b at the front of the bucket of the candidate under its
// cursor, or in the invalid bucket when there is none.
func (p *Partition) Assign(b *Ballot) int {
	p.total++
	id := b.Current(p.reg)
	p.place(b, id)
	return id
}

func (p *Partition) place(b *Ballot, id int) {
	if id == NoCandidate {
		p.invalid.push(b)
		return
	}
	p.buckets[id].push(b)
	p.reg.addVotes(id, 1)
}

// TransferFirst moves the first ballot of candidate id to the next eligible
// preference on that ballot. ok is false when the bucket is empty or id is
// unknown; nothing moves in that case.
func (p *Partition) TransferFirst(id int) (tr Transfer, ok bool) {
	if !p.reg.Valid(id) {
		return Transfer{}, false
	}
	b := p.buckets[id].pop()
	if b == nil {
		return Transfer{}, false
	}
	p.reg.addVotes(id, -1)

	b.Skip()
	to := b.NextCandidate(p.reg)
	p.place(b, to)
	return Transfer{Ballot: b, From: id, To: to}, true
}

// Len is the number of ballots counted for candidate id.
func (p *Partition) Len(id int) int {
	return p.buckets[id].n
}

func (p *Partition) InvalidLen() int {
	return p.invalid.n
}

// Total is the number of ballots ever assigned.
func (p *Partition) Total() int {
	return p.total
}

// Held counts the ballots currently sitting in any bucket.
func (p *Partition) Held() int {
	n := p.invalid.n
	for i := range p.buckets {
		n += p.buckets[i].n
	}
	return n
}

// Ballots returns copies of the ballots of candidate id, front first.
func (p *Partition) Ballots(id int) []Ballot {
	return collect(&p.buckets[id])
}

func (p *Partition) InvalidBallots() []Ballot {
	return collect(&p.invalid)
}

func collect(bk *bucket) []Ballot {
	out := make([]Ballot, 0, bk.n)
	bk.visit(func(b *Ballot) {
		out = append(out, b.snapshot())
	})
	return out
}

// Release unlinks every ballot so nothing stays reachable from the partition.
func (p *Partition) Release() {
	for i := range p.buckets {
		p.reg.addVotes(i, -p.buckets[i].n)
		p.buckets[i].release()
	}
	p.invalid.release()
	p.total = 0
}
