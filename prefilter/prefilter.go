// Package prefilter locates known token literals inside raw input.
//
// The scanner reports a stuck scan when no token can be formed at the front
// of the queue. A Resync automaton, built from the literal languages of all
// star-free token classes (keywords, operators, separators), finds the next
// position where any known literal occurs so diagnostics can point past the
// unrecognizable gap.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/lexgen/literal"
)

// Resync is a multi-literal matcher over the combined literal sets of a
// lexicon's token classes.
type Resync struct {
	automaton *ahocorasick.Automaton
	patterns  int
}

// NewResync builds a resync matcher from the given literal sequences.
// Empty literals (from ε-only classes) are skipped. Returns nil when no
// usable literal exists or the automaton cannot be built; callers treat a
// nil Resync as "no hint available".
func NewResync(seqs []*literal.Seq) *Resync {
	builder := ahocorasick.NewBuilder()
	patterns := 0
	for _, seq := range seqs {
		if seq == nil {
			continue
		}
		for i := 0; i < seq.Len(); i++ {
			lit := seq.Get(i)
			if len(lit.Bytes) == 0 {
				continue
			}
			builder.AddPattern(lit.Bytes)
			patterns++
		}
	}
	if patterns == 0 {
		return nil
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Resync{automaton: automaton, patterns: patterns}
}

// Patterns returns the number of literals the matcher was built from.
func (r *Resync) Patterns() int {
	return r.patterns
}

// Next returns the offset of the earliest known literal at or after
// position at, or -1 when none occurs.
func (r *Resync) Next(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	m := r.automaton.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}
