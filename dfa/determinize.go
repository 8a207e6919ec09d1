package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/internal/sparse"
	"github.com/coregx/lexgen/nfa"
)

// subsetKey encodes a sorted subset of NFA states as a map key.
func subsetKey(subset []int) string {
	var b strings.Builder
	for i, s := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

// Determinize converts a marked NFA into an unminimized DFA by subset
// construction.
//
// Each DFA state corresponds to an ε-closed subset of NFA states; its mark
// is the maximum mark over that subset. The empty subset is a legal dead
// state (mark 0, all transitions to itself), so the transition table is
// total. Callers normally follow with Minimized.
func Determinize(machine *nfa.NFA) *DFA {
	alphabet := machine.Alphabet()
	width := alphabet.Len()

	maxMark := func(subset []int) int {
		mark := 0
		for _, s := range subset {
			if m := machine.Mark(s); m > mark {
				mark = m
			}
		}
		return mark
	}

	start := machine.EmptyClosure([]int{0})
	subsetIndex := map[string]int{subsetKey(start): 0}
	subsets := [][]int{start}
	marks := []int{maxMark(start)}

	var rows [][]uint32
	move := sparse.NewSet(machine.States())

	for next := 0; next < len(subsets); next++ {
		subset := subsets[next]
		row := make([]uint32, width)

		for col := 0; col < width; col++ {
			move.Clear()
			for _, s := range subset {
				for _, t := range machine.Targets(s, col) {
					move.Insert(t)
				}
			}
			seeds := make([]int, move.Size())
			copy(seeds, move.Values())
			sort.Ints(seeds)

			target := machine.EmptyClosure(seeds)
			key := subsetKey(target)
			index, ok := subsetIndex[key]
			if !ok {
				index = len(subsets)
				subsetIndex[key] = index
				subsets = append(subsets, target)
				marks = append(marks, maxMark(target))
			}
			row[col] = conv.IntToUint32(index)
		}
		rows = append(rows, row)
	}

	table := make([]uint32, 0, len(rows)*width)
	for _, row := range rows {
		table = append(table, row...)
	}

	return &DFA{table: table, marks: marks, alphabet: alphabet, width: width}
}
