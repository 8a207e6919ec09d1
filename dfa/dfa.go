// Package dfa implements deterministic finite automata for lexical scanning.
//
// A DFA is built from a marked NFA by subset construction (Determinize) and
// collapsed to its coarsest mark-preserving form by partition refinement
// (Minimized). DFA states carry the maximum mark of their constituent NFA
// states; 0 means non-accepting, a positive mark identifies the winning
// token class.
package dfa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/nfa"
)

// Errors returned by the hand-built constructor
var (
	// ErrUnknownSymbol indicates a transition on a symbol outside the alphabet
	ErrUnknownSymbol = errors.New("transition symbol not in alphabet")

	// ErrUnknownState indicates a transition target that names no state
	ErrUnknownState = errors.New("transition target is not a known state")
)

// DFA is a deterministic finite automaton over an explicit alphabet.
//
// The transition table is dense and flattened row-major:
//
//	table[state*width + col] → next state
//
// where width is the alphabet size. There is no ε column; ε edges are
// absorbed during subset construction. State 0 is the start state and every
// (state, symbol) pair has a target, unreachable ones pointing at a dead
// sink. A DFA is immutable once built.
type DFA struct {
	table    []uint32
	marks    []int
	alphabet *nfa.Alphabet
	width    int
}

// FromRegex builds the minimized DFA for a single pattern over the given
// alphabet. The lone accepting class gets mark 1.
func FromRegex(pattern, alphabet string) (*DFA, error) {
	machine, err := nfa.Compile(pattern, alphabet, 1)
	if err != nil {
		return nil, err
	}
	return FromNFA(machine), nil
}

// FromNFA determinizes the NFA and minimizes the result.
func FromNFA(machine *nfa.NFA) *DFA {
	return Determinize(machine).Minimized()
}

// State describes one state of a hand-built DFA. States are named by single
// characters; the first state listed is the start state.
type State struct {
	Name byte
	Mark int
}

// Move is one labeled arrow out of a hand-built state.
type Move struct {
	Symbol byte
	Target byte
}

// New constructs a DFA directly from named states, an alphabet, and
// per-state moves. moves[i] lists the arrows out of states[i]; pairs not
// listed default to the first state. Useful for tests and for machines that
// are easier to draw than to describe as a pattern.
func New(states []State, alphabet string, moves [][]Move) (*DFA, error) {
	alpha := nfa.NewAlphabet(alphabet)
	width := alpha.Len()

	stateIndex := make(map[byte]int, len(states))
	marks := make([]int, len(states))
	for i, s := range states {
		stateIndex[s.Name] = i
		marks[i] = s.Mark
	}

	table := make([]uint32, len(states)*width)
	for from, arrows := range moves {
		for _, m := range arrows {
			col, ok := alpha.Index(m.Symbol)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, m.Symbol)
			}
			target, ok := stateIndex[m.Target]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownState, m.Target)
			}
			table[from*width+col] = conv.IntToUint32(target)
		}
	}

	return &DFA{table: table, marks: marks, alphabet: alpha, width: width}, nil
}

// States returns the number of states.
func (d *DFA) States() int {
	return len(d.marks)
}

// Mark returns the mark of the given state (0 = non-accepting).
func (d *DFA) Mark(state int) int {
	return d.marks[state]
}

// Next returns the successor of state on the given symbol column.
func (d *DFA) Next(state, col int) int {
	return int(d.table[state*d.width+col])
}

// Alphabet returns the alphabet this DFA is defined over.
func (d *DFA) Alphabet() *nfa.Alphabet {
	return d.alphabet
}

// Accepts runs the DFA over the word and reports whether it ends in an
// accepting state. Any symbol outside the alphabet rejects.
func (d *DFA) Accepts(word []byte) bool {
	state := 0
	for _, b := range word {
		col, ok := d.alphabet.Index(b)
		if !ok {
			return false
		}
		state = d.Next(state, col)
	}
	return d.marks[state] > 0
}

// String renders the transition table, one row per state. Accepting states
// show their mark. Intended for the CLI's dfa mode and for debugging.
func (d *DFA) String() string {
	var b strings.Builder
	b.WriteString("state")
	for _, sym := range d.alphabet.Symbols() {
		fmt.Fprintf(&b, "  %q", sym)
	}
	b.WriteString("  mark\n")
	for s := 0; s < d.States(); s++ {
		fmt.Fprintf(&b, "%5d", s)
		for col := 0; col < d.width; col++ {
			fmt.Fprintf(&b, "  %3d", d.Next(s, col))
		}
		if d.marks[s] > 0 {
			fmt.Fprintf(&b, "  %4d", d.marks[s])
		}
		b.WriteString("\n")
	}
	return b.String()
}
