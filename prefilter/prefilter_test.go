package prefilter

import (
	"testing"

	"github.com/coregx/lexgen/literal"
)

func seqOf(words ...string) *literal.Seq {
	seq := literal.NewSeq()
	for _, w := range words {
		seq.Push(literal.Literal{Bytes: []byte(w)})
	}
	return seq
}

func TestResyncNext(t *testing.T) {
	resync := NewResync([]*literal.Seq{seqOf("var", "print"), seqOf("+", "=")})
	if resync == nil {
		t.Fatal("NewResync returned nil for non-empty literals")
	}

	tests := []struct {
		haystack string
		at       int
		want     int
	}{
		{"@@var x", 0, 2},
		{"var", 0, 0},
		{"@@@", 0, -1},
		{"x=1", 0, 1},
		{"var var", 4, 4},
		{"var", 3, -1},
	}

	for _, tt := range tests {
		if got := resync.Next([]byte(tt.haystack), tt.at); got != tt.want {
			t.Errorf("Next(%q, %d) = %d, want %d", tt.haystack, tt.at, got, tt.want)
		}
	}
}

func TestResyncEmpty(t *testing.T) {
	if NewResync(nil) != nil {
		t.Error("NewResync(nil) != nil")
	}
	if NewResync([]*literal.Seq{literal.NewSeq()}) != nil {
		t.Error("NewResync with empty seq != nil")
	}
	// ε-only classes contribute nothing
	if NewResync([]*literal.Seq{seqOf("")}) != nil {
		t.Error("NewResync with empty literal != nil")
	}
}

func TestResyncPatterns(t *testing.T) {
	resync := NewResync([]*literal.Seq{seqOf("if", "var", "")})
	if resync == nil {
		t.Fatal("NewResync returned nil")
	}
	if resync.Patterns() != 2 {
		t.Errorf("Patterns() = %d, want 2", resync.Patterns())
	}
}
