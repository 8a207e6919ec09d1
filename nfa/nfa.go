package nfa

import (
	"sort"

	"github.com/coregx/lexgen/internal/sparse"
)

// NFA is a finalized nondeterministic finite automaton.
//
// The transition table is rectangular: states × (K+1), where K is the
// alphabet size and column K holds ε edges. State 0 is the start state.
// Every state carries a non-negative mark: 0 means non-accepting, a positive
// mark m means accepting for token class m.
type NFA struct {
	transition [][][]int
	marks      []int
	alphabet   *Alphabet
}

// Compile builds an NFA from a pattern over the given alphabet.
//
// The pattern is translated to postfix, evaluated into a fragment, and
// closed with a single fresh accepting state carrying the given mark.
// The mark must be positive; it identifies (and ranks) the token class.
//
// Example:
//
//	machine, err := nfa.Compile("(a|b)*", "ab", 1)
func Compile(pattern, alphabet string, mark int) (*NFA, error) {
	if mark < 1 {
		return nil, &ParseError{Pattern: pattern, Err: ErrInvalidMark}
	}
	alpha := NewAlphabet(alphabet)

	postfix, err := Postfix(pattern)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Err: err}
	}
	frag, err := buildFragment(postfix, alpha)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Err: err}
	}

	// Close the fragment: append the accepting state and wire the dangling
	// edge into it.
	accept := len(frag.transition)
	transition := append(frag.transition, newRow(alpha.Len()+1))
	addTarget(transition, frag.out.state, frag.out.col, accept)

	marks := make([]int, len(transition))
	marks[accept] = mark

	return &NFA{transition: transition, marks: marks, alphabet: alpha}, nil
}

// States returns the number of states.
func (n *NFA) States() int {
	return len(n.transition)
}

// Mark returns the mark of the given state (0 = non-accepting).
func (n *NFA) Mark(state int) int {
	return n.marks[state]
}

// Targets returns the transition targets of state on the given column.
// Column Alphabet().EpsilonCol() holds the ε edges.
// The returned slice must not be modified.
func (n *NFA) Targets(state, col int) []int {
	return n.transition[state][col]
}

// Alphabet returns the alphabet this NFA is defined over.
func (n *NFA) Alphabet() *Alphabet {
	return n.alphabet
}

// EmptyClosure returns the set of states reachable from the seed states via
// zero or more ε edges, including the seeds themselves, as a sorted
// duplicate-free slice. It is idempotent.
func (n *NFA) EmptyClosure(seeds []int) []int {
	epsilonCol := n.alphabet.EpsilonCol()

	visited := sparse.NewSet(len(n.transition))
	stack := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !visited.Contains(s) {
			visited.Insert(s)
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.transition[s][epsilonCol] {
			if !visited.Contains(t) {
				visited.Insert(t)
				stack = append(stack, t)
			}
		}
	}

	closure := make([]int, visited.Size())
	copy(closure, visited.Values())
	sort.Ints(closure)
	return closure
}

// Accepts simulates the NFA on the given word and reports whether it ends
// in an accepting state. Any symbol outside the alphabet rejects.
func (n *NFA) Accepts(word []byte) bool {
	current := n.EmptyClosure([]int{0})
	for _, b := range word {
		col, ok := n.alphabet.Index(b)
		if !ok {
			return false
		}
		var move []int
		for _, s := range current {
			move = append(move, n.transition[s][col]...)
		}
		current = n.EmptyClosure(move)
	}
	for _, s := range current {
		if n.marks[s] > 0 {
			return true
		}
	}
	return false
}
