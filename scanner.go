package lexgen

import (
	"errors"
	"fmt"
)

// ErrEmptyLexicon indicates a lexicon with no token classes.
var ErrEmptyLexicon = errors.New("lexicon has no classes")

// ScanStuckError reports that no token could be formed at the front of the
// queue. Remaining holds the unconsumed bytes for diagnostics; ResyncOffset
// is the offset within Remaining of the next known token literal, or -1
// when no resync point was found.
type ScanStuckError struct {
	Remaining    []byte
	ResyncOffset int
}

// Error implements the error interface
func (e *ScanStuckError) Error() string {
	if e.ResyncOffset >= 0 {
		return fmt.Sprintf("no token could be formed at %q (next known literal at offset %d)",
			e.Remaining, e.ResyncOffset)
	}
	return fmt.Sprintf("no token could be formed at %q", e.Remaining)
}

// Next returns the longest prefix of the queue accepted by the scanner's
// DFA together with the accepting state's mark, or ("", 0) when no
// non-empty prefix is accepted.
//
// Bytes consumed past the last accepting state, and any byte outside the
// unified alphabet, are pushed back to the front of the queue, so the queue
// resumes at the character following the returned lexeme.
func (s *Scanner) Next(q *ByteQueue) ([]byte, int) {
	state := 0
	lastMark := 0
	var committed, pending []byte

	for {
		b, ok := q.PopFront()
		if !ok {
			break
		}
		col, inAlphabet := s.dfa.Alphabet().Index(b)
		if !inAlphabet {
			q.PushFront(b)
			break
		}
		state = s.dfa.Next(state, col)
		pending = append(pending, b)
		if mark := s.dfa.Mark(state); mark > 0 {
			committed = append(committed, pending...)
			pending = pending[:0]
			lastMark = mark
		}
	}

	// Rewind lookahead that did not reach a further accepting state.
	for i := len(pending) - 1; i >= 0; i-- {
		q.PushFront(pending[i])
	}
	return committed, lastMark
}

// Scan tokenizes the whole queue, recording each distinct non-ignored
// lexeme with its class name.
//
// When no token can be formed while bytes remain, Scan returns the table
// built so far together with a ScanStuckError carrying the remaining bytes;
// the offending byte is left at the front of the queue, not dropped.
func (s *Scanner) Scan(q *ByteQueue) (*SymbolTable, error) {
	table := NewSymbolTable()
	for !q.Empty() {
		lexeme, mark := s.Next(q)
		if len(lexeme) == 0 {
			remaining := q.Bytes()
			offset := -1
			if s.resync != nil {
				offset = s.resync.Next(remaining, 0)
			}
			return table, &ScanStuckError{Remaining: remaining, ResyncOffset: offset}
		}
		if class := s.ClassName(mark); class != ClassIgnored {
			table.Insert(string(lexeme), class)
		}
	}
	return table, nil
}

// ScanBytes tokenizes input, wrapping it in a fresh queue.
func (s *Scanner) ScanBytes(input []byte) (*SymbolTable, error) {
	return s.Scan(NewByteQueue(input))
}
