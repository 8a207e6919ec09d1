package nfa

// fragment is a partial NFA under construction.
//
// Its transition table is rectangular: one row per state, width K+1 where K
// is the alphabet size and column K holds ε edges. Each cell is a list of
// target state indices. State 0 is the fragment's in-state, and exactly one
// dangling outbound edge (out) waits to be wired by the next combinator.
// Marks are assigned only at finalization.
type fragment struct {
	transition [][][]int
	out        outEdge
}

// outEdge names the dangling edge: the state it leaves and the column it
// will be written into (the ε column when the edge is unlabeled).
type outEdge struct {
	state int
	col   int
}

// addTarget appends a target to the cell at (state, col), keeping the cell
// duplicate-free.
func addTarget(transition [][][]int, state, col, target int) {
	for _, t := range transition[state][col] {
		if t == target {
			return
		}
	}
	transition[state][col] = append(transition[state][col], target)
}

// newRow returns an empty transition row of the given width.
func newRow(width int) [][]int {
	return make([][]int, width)
}

// symbolFragment builds the one-state fragment recognizing a single symbol.
// Fails if the symbol is not part of the alphabet.
func symbolFragment(sym byte, alphabet *Alphabet) (fragment, error) {
	col, ok := alphabet.Index(sym)
	if !ok {
		return fragment{}, ErrSymbolNotInAlphabet
	}
	return fragment{
		transition: [][][]int{newRow(alphabet.Len() + 1)},
		out:        outEdge{state: 0, col: col},
	}, nil
}

// epsilonFragment builds the one-state fragment recognizing the empty word.
func epsilonFragment(alphabet *Alphabet) fragment {
	return fragment{
		transition: [][][]int{newRow(alphabet.Len() + 1)},
		out:        outEdge{state: 0, col: alphabet.EpsilonCol()},
	}
}

// shifted returns a copy of the fragment with every state index, including
// the dangling out state, moved up by delta.
func (f fragment) shifted(delta int) fragment {
	transition := make([][][]int, len(f.transition))
	for s, row := range f.transition {
		shiftedRow := newRow(len(row))
		for col, targets := range row {
			if targets == nil {
				continue
			}
			shiftedTargets := make([]int, len(targets))
			for i, t := range targets {
				shiftedTargets[i] = t + delta
			}
			shiftedRow[col] = shiftedTargets
		}
		transition[s] = shiftedRow
	}
	return fragment{
		transition: transition,
		out:        outEdge{state: f.out.state + delta, col: f.out.col},
	}
}

// concatFragments wires a's dangling edge into b's in-state.
// b is shifted past a; the new dangling edge is b's.
func concatFragments(a, b fragment) fragment {
	aLen := len(a.transition)
	b = b.shifted(aLen)

	transition := make([][][]int, 0, aLen+len(b.transition))
	transition = append(transition, a.transition...)
	transition = append(transition, b.transition...)

	// b's in-state sits at index aLen after the shift
	addTarget(transition, a.out.state, a.out.col, aLen)

	return fragment{transition: transition, out: b.out}
}

// alternateFragments builds a|b. A fresh start state ε-branches into both
// operands and both dangling edges converge on a fresh terminal state.
// Layout: 0, A, B, terminal.
func alternateFragments(a, b fragment) fragment {
	width := len(a.transition[0])
	epsilonCol := width - 1
	aLen := len(a.transition)

	a = a.shifted(1)
	b = b.shifted(1 + aLen)

	transition := make([][][]int, 0, aLen+len(b.transition)+2)
	transition = append(transition, newRow(width))
	transition = append(transition, a.transition...)
	transition = append(transition, b.transition...)
	transition = append(transition, newRow(width))

	transition[0][epsilonCol] = []int{1, 1 + aLen}

	terminal := len(transition) - 1
	addTarget(transition, a.out.state, a.out.col, terminal)
	addTarget(transition, b.out.state, b.out.col, terminal)

	return fragment{transition: transition, out: outEdge{state: terminal, col: epsilonCol}}
}

// starFragment builds a*. A fresh start state ε-enters the operand, the
// operand's dangling edge loops back to the fresh state, and the fresh
// state's own ε edge dangles out.
func starFragment(a fragment) fragment {
	width := len(a.transition[0])
	epsilonCol := width - 1

	a = a.shifted(1)

	transition := make([][][]int, 0, len(a.transition)+1)
	transition = append(transition, newRow(width))
	transition = append(transition, a.transition...)

	transition[0][epsilonCol] = []int{1}
	addTarget(transition, a.out.state, a.out.col, 0)

	return fragment{transition: transition, out: outEdge{state: 0, col: epsilonCol}}
}

// buildFragment evaluates a postfix token sequence into a single fragment.
func buildFragment(postfix []Token, alphabet *Alphabet) (fragment, error) {
	var stack []fragment
	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, t := range postfix {
		switch t.Kind {
		case TokenAtom:
			f, err := symbolFragment(t.Sym, alphabet)
			if err != nil {
				return fragment{}, err
			}
			stack = append(stack, f)
		case TokenEpsilon:
			stack = append(stack, epsilonFragment(alphabet))
		case TokenStar:
			a, ok := pop()
			if !ok {
				return fragment{}, ErrMissingOperand
			}
			stack = append(stack, starFragment(a))
		case TokenConcat:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB {
				return fragment{}, ErrMissingOperand
			}
			stack = append(stack, concatFragments(a, b))
		case TokenAlternate:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB {
				return fragment{}, ErrMissingOperand
			}
			stack = append(stack, alternateFragments(a, b))
		default:
			return fragment{}, ErrMissingOperand
		}
	}

	if len(stack) != 1 {
		return fragment{}, ErrMissingOperand
	}
	return stack[0], nil
}
