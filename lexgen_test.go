package lexgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScannerLongestMatch(t *testing.T) {
	scanner, err := New(DefaultLexicon())
	require.Nil(t, err)

	tests := []struct {
		input string
		want  string
		class string
	}{
		{"var", "var", "keyword"},
		{"varx", "varx", "identifier"},
		{"v", "v", "identifier"},
		{"print", "print", "keyword"},
		{"printer", "printer", "identifier"},
		{"12", "12", "integer"},
		{"=", "=", "operator"},
		{" ", " ", "ignored"},
	}

	for _, tt := range tests {
		q := NewByteQueue([]byte(tt.input))
		lexeme, mark := scanner.Next(q)
		require.EqualValues(t, tt.want, string(lexeme), "input %q", tt.input)
		require.EqualValues(t, tt.class, scanner.ClassName(mark), "input %q", tt.input)
	}
}

func TestScannerTokenSequence(t *testing.T) {
	scanner, err := New(DefaultLexicon())
	require.Nil(t, err)

	q := NewByteQueue([]byte("x=12"))

	var got [][2]string
	for !q.Empty() {
		lexeme, mark := scanner.Next(q)
		require.NotEmpty(t, lexeme)
		got = append(got, [2]string{string(lexeme), scanner.ClassName(mark)})
	}

	require.EqualValues(t, [][2]string{
		{"x", "identifier"},
		{"=", "operator"},
		{"12", "integer"},
	}, got)
}

func TestScannerRewind(t *testing.T) {
	scanner, err := New(DefaultLexicon())
	require.Nil(t, err)

	// after one call the queue holds exactly the input minus the lexeme
	q := NewByteQueue([]byte("var x"))
	lexeme, _ := scanner.Next(q)
	require.EqualValues(t, "var", string(lexeme))
	require.EqualValues(t, " x", string(q.Bytes()))

	// an unknown byte stops the token and stays on the queue
	q = NewByteQueue([]byte("ab@cd"))
	lexeme, _ = scanner.Next(q)
	require.EqualValues(t, "ab", string(lexeme))
	require.EqualValues(t, "@cd", string(q.Bytes()))
}

func TestScanSymbolTable(t *testing.T) {
	table, err := LexicalScan([]byte("var x ;"))
	require.Nil(t, err)

	require.EqualValues(t, 2, table.Len())
	require.EqualValues(t, []string{"var", "x"}, table.Lexemes())

	class, ok := table.Class("var")
	require.True(t, ok)
	require.EqualValues(t, "keyword", class)

	class, ok = table.Class("x")
	require.True(t, ok)
	require.EqualValues(t, "identifier", class)

	// ignored lexemes never enter the table
	_, ok = table.Class(";")
	require.False(t, ok)
	_, ok = table.Class(" ")
	require.False(t, ok)
}

func TestScanDeduplicatesLexemes(t *testing.T) {
	table, err := LexicalScan([]byte("x y x y x"))
	require.Nil(t, err)

	require.EqualValues(t, []string{"x", "y"}, table.Lexemes())
}

func TestScanProgram(t *testing.T) {
	src := "var total = 0 ;\nvar rate = 12 ;\nprint total + rate * 2 ;\n"
	table, err := LexicalScan([]byte(src))
	require.Nil(t, err)

	expected := map[string]string{
		"var":   "keyword",
		"print": "keyword",
		"total": "identifier",
		"rate":  "identifier",
		"=":     "operator",
		"+":     "operator",
		"*":     "operator",
		"0":     "integer",
		"12":    "integer",
		"2":     "integer",
	}
	require.EqualValues(t, len(expected), table.Len())
	for lexeme, class := range expected {
		got, ok := table.Class(lexeme)
		require.True(t, ok, "missing lexeme %q", lexeme)
		require.EqualValues(t, class, got, "lexeme %q", lexeme)
	}
}

func TestScanStuck(t *testing.T) {
	scanner, err := New(DefaultLexicon())
	require.Nil(t, err)

	table, err := scanner.ScanBytes([]byte("@@var x"))
	require.NotNil(t, err)

	var stuck *ScanStuckError
	require.True(t, errors.As(err, &stuck))
	require.EqualValues(t, "@@var x", string(stuck.Remaining))
	// the resync hint points at the next known literal ("var")
	require.EqualValues(t, 2, stuck.ResyncOffset)
	// nothing was tokenized before the stuck point
	require.EqualValues(t, 0, table.Len())
}

func TestScanStuckMidway(t *testing.T) {
	scanner, err := New(DefaultLexicon())
	require.Nil(t, err)

	table, err := scanner.ScanBytes([]byte("var x @"))
	require.NotNil(t, err)

	var stuck *ScanStuckError
	require.True(t, errors.As(err, &stuck))
	require.EqualValues(t, "@", string(stuck.Remaining))
	require.EqualValues(t, -1, stuck.ResyncOffset)
	// tokens before the stuck point were recorded
	require.EqualValues(t, []string{"var", "x"}, table.Lexemes())
}

func TestNewEmptyLexicon(t *testing.T) {
	_, err := New(&Lexicon{})
	require.ErrorIs(t, err, ErrEmptyLexicon)

	_, err = New(nil)
	require.ErrorIs(t, err, ErrEmptyLexicon)
}

func TestNewBadPattern(t *testing.T) {
	_, err := New(&Lexicon{Classes: []Class{
		{Name: "broken", Pattern: "(a", Alphabet: "a"},
	}})
	require.NotNil(t, err)
}

func TestCustomLexiconPriority(t *testing.T) {
	// later classes win equal-length ties
	lexicon := &Lexicon{Classes: []Class{
		{Name: "word", Pattern: "(a|b)(a|b)*", Alphabet: "ab"},
		{Name: "magic", Pattern: "ab", Alphabet: "ab"},
		{Name: ClassIgnored, Pattern: "( )( )*", Alphabet: " "},
	}}
	scanner, err := New(lexicon)
	require.Nil(t, err)

	q := NewByteQueue([]byte("ab aba"))
	lexeme, mark := scanner.Next(q)
	require.EqualValues(t, "ab", string(lexeme))
	require.EqualValues(t, "magic", scanner.ClassName(mark))

	table, err := scanner.ScanBytes([]byte("ab aba"))
	require.Nil(t, err)
	require.EqualValues(t, []string{"ab", "aba"}, table.Lexemes())

	class, _ := table.Class("aba")
	require.EqualValues(t, "word", class)
}
