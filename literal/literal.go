// Package literal extracts the finite literal languages of star-free
// patterns.
//
// A pattern with no Kleene star denotes a finite set of words. Extracting
// that set lets downstream components treat such token classes (keywords,
// operators, separators) as plain multi-literal dictionaries, which is what
// the prefilter package feeds to its Aho-Corasick resync automaton.
package literal

import (
	"bytes"
	"sort"
)

// Literal is one concrete byte sequence a pattern can produce.
type Literal struct {
	Bytes []byte
}

// Seq is a set of alternative literals.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	return len(s.literals)
}

// IsEmpty returns true if the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Push appends a literal to the sequence.
func (s *Seq) Push(lit Literal) {
	s.literals = append(s.literals, lit)
}

// Dedup sorts the sequence and removes duplicate literals.
func (s *Seq) Dedup() {
	sort.Slice(s.literals, func(i, j int) bool {
		return bytes.Compare(s.literals[i].Bytes, s.literals[j].Bytes) < 0
	})
	out := s.literals[:0]
	for i, lit := range s.literals {
		if i == 0 || !bytes.Equal(lit.Bytes, s.literals[i-1].Bytes) {
			out = append(out, lit)
		}
	}
	s.literals = out
}
