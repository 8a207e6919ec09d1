package lexgen

import (
	"fmt"
	"strings"
)

// SymbolTable is an insertion-ordered mapping from lexeme to class name.
// Each distinct lexeme appears once; later insertions of the same lexeme
// are ignored.
type SymbolTable struct {
	order   []string
	classes map[string]string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{classes: make(map[string]string)}
}

// Insert records a lexeme with its class name. Returns false if the lexeme
// was already present (the original class is kept).
func (t *SymbolTable) Insert(lexeme, class string) bool {
	if _, ok := t.classes[lexeme]; ok {
		return false
	}
	t.classes[lexeme] = class
	t.order = append(t.order, lexeme)
	return true
}

// Class returns the class recorded for a lexeme.
func (t *SymbolTable) Class(lexeme string) (string, bool) {
	class, ok := t.classes[lexeme]
	return class, ok
}

// Len returns the number of distinct lexemes.
func (t *SymbolTable) Len() int {
	return len(t.order)
}

// Lexemes returns the lexemes in insertion order.
// The returned slice must not be modified.
func (t *SymbolTable) Lexemes() []string {
	return t.order
}

// String renders the table one "lexeme: class" line per entry, in
// insertion order.
func (t *SymbolTable) String() string {
	var b strings.Builder
	for _, lexeme := range t.order {
		fmt.Fprintf(&b, "%s: %s\n", lexeme, t.classes[lexeme])
	}
	return b.String()
}
