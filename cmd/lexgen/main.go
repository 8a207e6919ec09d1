package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/lexgen"
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/internal/runner"
)

func main() {
	opts := runner.ParseFlags()

	output := getOutputWriter(opts.Output)
	defer closeOutput(output, opts.Output)

	switch {
	case opts.Sample != "":
		if err := lexgen.GenerateSample(opts.Sample); err != nil {
			gologger.Fatal().Msgf("failed to write sample lexicon to %v got: %v", opts.Sample, err)
		}
		gologger.Info().Msgf("Wrote sample lexicon to %v", opts.Sample)
	case opts.LexFile != "":
		runLex(opts, output)
	case opts.Regex != "":
		runDfa(opts, output)
	}
}

// runLex tokenizes the input file and prints the resulting symbol table.
func runLex(opts *runner.Options, output io.Writer) {
	lexicon := lexgen.DefaultLexicon()
	if opts.Lexicon != "" {
		var err error
		lexicon, err = lexgen.NewLexiconFromFile(opts.Lexicon)
		if err != nil {
			gologger.Fatal().Msgf("failed to read lexicon %v got: %v", opts.Lexicon, err)
		}
	}

	scanner, err := lexgen.New(lexicon)
	if err != nil {
		gologger.Fatal().Msgf("failed to compile lexicon got: %v", err)
	}

	input, err := os.ReadFile(opts.LexFile)
	if err != nil {
		gologger.Fatal().Msgf("failed to read %v got: %v", opts.LexFile, err)
	}

	table, err := scanner.ScanBytes(input)
	if err != nil {
		var stuck *lexgen.ScanStuckError
		if errors.As(err, &stuck) {
			gologger.Fatal().Msgf("lexical scan failed: %v", stuck)
		}
		gologger.Fatal().Msgf("lexical scan failed got: %v", err)
	}

	fmt.Fprint(output, table.String())
	gologger.Info().Msgf("Found %d distinct lexemes", table.Len())
}

// runDfa builds and displays the DFA for a single pattern, then reads words
// from stdin one per line and reports acceptance. The literal word QUIT
// terminates the loop.
func runDfa(opts *runner.Options, output io.Writer) {
	machine, err := dfa.FromRegex(opts.Regex, opts.Alphabet)
	if err != nil {
		gologger.Fatal().Msgf("failed to build DFA for %q got: %v", opts.Regex, err)
	}

	fmt.Fprint(output, machine.String())

	stdin := bufio.NewScanner(os.Stdin)
	for stdin.Scan() {
		word := stdin.Text()
		if word == "QUIT" {
			break
		}
		if machine.Accepts([]byte(word)) {
			fmt.Fprintf(output, "%q accepted\n", word)
		} else {
			fmt.Fprintf(output, "%q rejected\n", word)
		}
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
