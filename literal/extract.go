package literal

import (
	"github.com/coregx/lexgen/nfa"
)

// Config bounds extraction so pathological patterns cannot blow up the
// literal set.
type Config struct {
	// MaxLiterals limits the number of alternative literals. Concatenating
	// alternations multiplies set sizes, so this caps the cross product.
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted literal.
	MaxLiteralLen int
}

// DefaultConfig returns extraction limits suited to token-class patterns.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   256,
		MaxLiteralLen: 64,
	}
}

// Extract computes the literal language of a postfix pattern.
//
// It returns (seq, true) when the pattern is star-free and within the
// configured limits, with seq holding every word the pattern accepts,
// deduplicated. Patterns containing a Kleene star denote infinite languages
// and report (nil, false), as do patterns exceeding the limits.
func Extract(postfix []nfa.Token, config Config) (*Seq, bool) {
	var stack [][][]byte
	pop := func() ([][]byte, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		set := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return set, true
	}

	for _, t := range postfix {
		switch t.Kind {
		case nfa.TokenAtom:
			stack = append(stack, [][]byte{{t.Sym}})
		case nfa.TokenEpsilon:
			stack = append(stack, [][]byte{{}})
		case nfa.TokenAlternate:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB || len(a)+len(b) > config.MaxLiterals {
				return nil, false
			}
			stack = append(stack, append(a, b...))
		case nfa.TokenConcat:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB || len(a)*len(b) > config.MaxLiterals {
				return nil, false
			}
			product := make([][]byte, 0, len(a)*len(b))
			for _, left := range a {
				for _, right := range b {
					if len(left)+len(right) > config.MaxLiteralLen {
						return nil, false
					}
					word := make([]byte, 0, len(left)+len(right))
					word = append(word, left...)
					word = append(word, right...)
					product = append(product, word)
				}
			}
			stack = append(stack, product)
		default:
			// Kleene star, or a token that should not survive translation
			return nil, false
		}
	}

	if len(stack) != 1 {
		return nil, false
	}

	seq := NewSeq()
	for _, word := range stack[0] {
		seq.Push(Literal{Bytes: word})
	}
	seq.Dedup()
	return seq, true
}
