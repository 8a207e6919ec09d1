package nfa

import (
	"errors"
	"testing"
)

func tokensString(tokens []Token) string {
	out := ""
	for _, t := range tokens {
		out += t.String()
	}
	return out
}

func TestPostfix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"ab", "ab·"},
		{"a|b", "ab|"},
		{"(a|b)*", "ab|*"},
		{"(cd)*", "cd·*"},
		{"a|bc", "abc·|"},
		{"ab|cd", "ab·cd·|"},
		{"ab*", "ab*·"},
		{"(a|b)(c|d)", "ab|cd|·"},
		{"a(a|b)*", "aab|*·"},
		{`\*a`, "*a·"},
		{`\e|a`, "εa|"},
		{`\\`, `\`},
		{`(\+|-)`, "+-|"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tokens, err := Postfix(tt.pattern)
			if err != nil {
				t.Fatalf("Postfix(%q) failed: %v", tt.pattern, err)
			}
			if got := tokensString(tokens); got != tt.want {
				t.Errorf("Postfix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPostfixConcatInsertion(t *testing.T) {
	// a term followed by '(' or an atom receives an implicit concatenation
	tests := []struct {
		pattern string
		want    string
	}{
		{"a(b)", "ab·"},
		{"(a)(b)", "ab·"},
		{"(a)b", "ab·"},
		{"a*b", "a*b·"},
		{"a*(b)", "a*b·"},
		{`a\eb`, "aε·b·"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tokens, err := Postfix(tt.pattern)
			if err != nil {
				t.Fatalf("Postfix(%q) failed: %v", tt.pattern, err)
			}
			if got := tokensString(tokens); got != tt.want {
				t.Errorf("Postfix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPostfixErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"(a", ErrUnmatchedParen},
		{"a)", ErrUnmatchedParen},
		{"((a)", ErrUnmatchedParen},
		{`ab\`, ErrTrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Postfix(tt.pattern)
			if !errors.Is(err, tt.want) {
				t.Errorf("Postfix(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}
