package dfa

import (
	"strconv"
	"strings"

	"github.com/coregx/lexgen/internal/conv"
)

// Minimized returns the coarsest mark-preserving equivalent of this DFA.
//
// States are first partitioned by mark, then blocks are refined: a block
// splits when its members disagree on the block of some successor. Every
// split restarts the walk from the front, so refinement runs to a fix
// point. The block containing the original start state is presented as
// state 0 of the result; block transitions are those of any representative,
// mapped through the final partition.
func (d *DFA) Minimized() *DFA {
	numStates := d.States()

	// Initial partition: one block per distinct mark, blocks ordered by
	// first occurrence, members in state order.
	blockOf := make([]int, numStates)
	var blocks [][]int
	markBlock := make(map[int]int)
	for s := 0; s < numStates; s++ {
		bi, ok := markBlock[d.marks[s]]
		if !ok {
			bi = len(blocks)
			markBlock[d.marks[s]] = bi
			blocks = append(blocks, nil)
		}
		blocks[bi] = append(blocks[bi], s)
		blockOf[s] = bi
	}

	// A single initial block cannot split: every state then has the same
	// mark and successors stay within the block.
	if len(blocks) > 1 {
		signature := func(s int) string {
			var b strings.Builder
			for col := 0; col < d.width; col++ {
				if col > 0 {
					b.WriteByte(',')
				}
				b.WriteString(strconv.Itoa(blockOf[d.Next(s, col)]))
			}
			return b.String()
		}

		for i := 0; i < len(blocks); {
			var sigOrder []string
			sigMembers := make(map[string][]int)
			for _, s := range blocks[i] {
				sig := signature(s)
				if _, ok := sigMembers[sig]; !ok {
					sigOrder = append(sigOrder, sig)
				}
				sigMembers[sig] = append(sigMembers[sig], s)
			}
			if len(sigOrder) == 1 {
				i++
				continue
			}

			// Replace the block with its sub-blocks in place, stable in
			// first-occurrence order, and restart the walk.
			sub := make([][]int, 0, len(sigOrder))
			for _, sig := range sigOrder {
				sub = append(sub, sigMembers[sig])
			}
			rest := blocks[i+1:]
			blocks = append(blocks[:i], append(sub, rest...)...)
			for bi, block := range blocks {
				for _, s := range block {
					blockOf[s] = bi
				}
			}
			i = 0
		}
	}

	// Canonicalize: swap the start state's block into position 0 and apply
	// the same translation to every transition target.
	translate := make([]int, len(blocks))
	for i := range translate {
		translate[i] = i
	}
	startBlock := blockOf[0]
	translate[0], translate[startBlock] = translate[startBlock], translate[0]

	table := make([]uint32, len(blocks)*d.width)
	marks := make([]int, len(blocks))
	for bi, block := range blocks {
		ni := translate[bi]
		mark := 0
		for _, s := range block {
			if d.marks[s] > mark {
				mark = d.marks[s]
			}
		}
		marks[ni] = mark

		representative := block[0]
		for col := 0; col < d.width; col++ {
			target := translate[blockOf[d.Next(representative, col)]]
			table[ni*d.width+col] = conv.IntToUint32(target)
		}
	}

	return &DFA{table: table, marks: marks, alphabet: d.alphabet, width: d.width}
}
