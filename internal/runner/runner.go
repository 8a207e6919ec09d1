// Package runner parses and validates the lexgen command line.
package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Options holds the parsed command line.
type Options struct {
	LexFile  string // file to tokenize
	Regex    string // pattern for dfa mode
	Alphabet string // alphabet for dfa mode
	Lexicon  string // lexicon yaml overriding the built-in classes
	Output   string // output file ("" = stdout)
	Sample   string // write a sample lexicon yaml and exit
	Verbose  bool
	Silent   bool
}

// ParseFlags parses the command line into Options and configures logging.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Regular-expression driven lexical scanner generator.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.LexFile, "lex", "f", "", "file to tokenize into a symbol table"),
		flagSet.StringVarP(&opts.Regex, "dfa", "d", "", "pattern to build and display a DFA for (reads words from stdin, QUIT to stop)"),
		flagSet.StringVarP(&opts.Alphabet, "alphabet", "a", "", "alphabet the dfa pattern is defined over"),
		flagSet.StringVarP(&opts.Lexicon, "lexicon", "lc", "", "lexicon yaml file (default: built-in classes)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display lexgen version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVarP(&opts.Sample, "sample-lexicon", "gs", "", "write a sample lexicon yaml to the given path and exit"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
	return opts
}

// validate checks mode selection and file arguments.
func (opts *Options) validate() error {
	modes := 0
	if opts.LexFile != "" {
		modes++
	}
	if opts.Regex != "" {
		modes++
	}
	if opts.Sample != "" {
		modes++
	}
	if modes == 0 {
		return errorutil.New("no mode selected: pass -lex, -dfa or -sample-lexicon")
	}
	if modes > 1 {
		return errorutil.New("modes -lex, -dfa and -sample-lexicon are mutually exclusive")
	}
	if opts.Regex != "" && opts.Alphabet == "" {
		return errorutil.New("-dfa requires -alphabet")
	}
	if opts.LexFile != "" && !fileutil.FileExists(opts.LexFile) {
		return errorutil.New("input file %v does not exist", opts.LexFile)
	}
	if opts.Lexicon != "" && !fileutil.FileExists(opts.Lexicon) {
		return errorutil.New("lexicon file %v does not exist", opts.Lexicon)
	}
	return nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
