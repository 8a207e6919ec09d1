// Package lexgen generates lexical scanners from regular expressions.
//
// A Lexicon lists named token classes, each defined by a regular expression
// over an explicitly declared alphabet. Compiling a lexicon builds one
// deterministic automaton for all classes:
//
//	postfix → Thompson NFA per class → marked union → subset construction
//	→ minimization
//
// and wraps it in a Scanner that tokenizes input by the longest-match /
// highest-priority rule. Class order assigns priority: the i-th class gets
// mark i+1, and where two classes accept the same lexeme the larger mark
// wins, so later classes shadow earlier ones (keywords after identifiers).
//
// Basic usage:
//
//	scanner, err := lexgen.New(lexgen.DefaultLexicon())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := scanner.ScanBytes([]byte("var x ;"))
package lexgen

import (
	"strings"

	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/literal"
	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/prefilter"
)

// ClassIgnored names the token class whose lexemes are dropped from scan
// results (whitespace, separators).
const ClassIgnored = "ignored"

// Class is one token class: a name, a pattern, and the alphabet the
// pattern is defined over. Every non-escaped non-operator character of the
// pattern must appear in the alphabet.
type Class struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern"`
	Alphabet string `yaml:"alphabet"`
}

// Lexicon is an ordered list of token classes. Order is priority: the i-th
// class receives mark i+1, and larger marks win length ties.
type Lexicon struct {
	Classes []Class `yaml:"classes"`
}

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	digits  = "0123456789"
)

// alternation joins the symbols of s into the pattern (s0|s1|...|sn).
func alternation(s string) string {
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		parts[i] = string(s[i])
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// DefaultLexicon returns the built-in lexicon: identifiers, keywords,
// operators, integers, and an ignored separator class. Keywords are listed
// after identifiers so they win ties on equal-length matches.
func DefaultLexicon() *Lexicon {
	return &Lexicon{Classes: []Class{
		{
			Name:     "identifier",
			Pattern:  alternation(letters) + "(" + alternation(letters) + "|" + alternation(digits) + ")*",
			Alphabet: letters + digits,
		},
		{
			Name:     "keyword",
			Pattern:  "(var|print|if)",
			Alphabet: "varpintf",
		},
		{
			Name:     "operator",
			Pattern:  `(\+|-|/|\*|=)`,
			Alphabet: "+-/*=",
		},
		{
			Name:     "integer",
			Pattern:  alternation(digits) + "*",
			Alphabet: digits,
		},
		{
			Name:     ClassIgnored,
			Pattern:  "(;| |\t|\r|\n)",
			Alphabet: "; \t\r\n",
		},
	}}
}

// Scanner is a compiled lexicon: one minimized DFA over the unified
// alphabet of all classes, plus a resync matcher for diagnostics.
//
// A Scanner is immutable and safe for concurrent use; each Scan call owns
// the queue it is given.
type Scanner struct {
	dfa     *dfa.DFA
	classes []Class
	resync  *prefilter.Resync
}

// New compiles a lexicon into a Scanner.
func New(lexicon *Lexicon) (*Scanner, error) {
	if lexicon == nil || len(lexicon.Classes) == 0 {
		return nil, ErrEmptyLexicon
	}

	machines := make([]*nfa.NFA, 0, len(lexicon.Classes))
	var seqs []*literal.Seq
	for i, class := range lexicon.Classes {
		machine, err := nfa.Compile(class.Pattern, class.Alphabet, i+1)
		if err != nil {
			return nil, err
		}
		machines = append(machines, machine)

		// Star-free classes contribute their full literal language to the
		// resync matcher.
		postfix, err := nfa.Postfix(class.Pattern)
		if err == nil {
			if seq, ok := literal.Extract(postfix, literal.DefaultConfig()); ok {
				seqs = append(seqs, seq)
			}
		}
	}

	union, err := nfa.Union(machines)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		dfa:     dfa.FromNFA(union),
		classes: lexicon.Classes,
		resync:  prefilter.NewResync(seqs),
	}, nil
}

// DFA returns the scanner's minimized automaton.
func (s *Scanner) DFA() *dfa.DFA {
	return s.dfa
}

// ClassName returns the class name for a mark, or "" for mark 0.
func (s *Scanner) ClassName(mark int) string {
	if mark < 1 || mark > len(s.classes) {
		return ""
	}
	return s.classes[mark-1].Name
}

// LexicalScan tokenizes input with the default lexicon and returns the
// symbol table of distinct non-ignored lexemes.
func LexicalScan(input []byte) (*SymbolTable, error) {
	scanner, err := New(DefaultLexicon())
	if err != nil {
		return nil, err
	}
	return scanner.ScanBytes(input)
}
