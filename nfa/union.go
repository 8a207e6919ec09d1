package nfa

// Union merges marked NFAs into a single machine recognizing the union of
// their languages, preserving per-state marks.
//
// The unified alphabet is the set union of the input alphabets, columns
// assigned in order of first occurrence with ε last. A fresh start state at
// index 0 ε-branches into each machine's start; each machine's states are
// imported in order, shifted past the states already placed, with every row
// remapped from its old columns to the unified ones.
//
// When two machines accept the same lexeme, the downstream DFA resolves the
// tie by taking the maximum mark, so callers assign larger marks to higher
// priority classes.
func Union(machines []*NFA) (*NFA, error) {
	if len(machines) == 0 {
		return nil, ErrNoInputs
	}

	var unified Alphabet
	unified.index = make(map[byte]int)
	for _, m := range machines {
		for _, sym := range m.alphabet.Symbols() {
			unified.add(sym)
		}
	}
	width := unified.Len() + 1
	epsilonCol := unified.EpsilonCol()

	total := 1
	for _, m := range machines {
		total += m.States()
	}

	transition := make([][][]int, 1, total)
	transition[0] = newRow(width)
	marks := make([]int, 1, total)

	starts := make([]int, 0, len(machines))
	for _, m := range machines {
		offset := len(transition)
		starts = append(starts, offset)
		oldEpsilon := m.alphabet.EpsilonCol()

		for s := 0; s < m.States(); s++ {
			row := newRow(width)
			for oldCol, targets := range m.transition[s] {
				if targets == nil {
					continue
				}
				newCol := epsilonCol
				if oldCol != oldEpsilon {
					// columns are looked up by symbol, not index, since the
					// unified alphabet may order symbols differently
					newCol, _ = unified.Index(m.alphabet.Symbols()[oldCol])
				}
				shifted := make([]int, len(targets))
				for i, t := range targets {
					shifted[i] = t + offset
				}
				row[newCol] = shifted
			}
			transition = append(transition, row)
			marks = append(marks, m.marks[s])
		}
	}

	transition[0][epsilonCol] = starts

	return &NFA{transition: transition, marks: marks, alphabet: &unified}, nil
}
