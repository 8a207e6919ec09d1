package lexgen

import (
	"os"

	"gopkg.in/yaml.v3"
)

// NewLexiconFromFile reads a lexicon from a YAML file:
//
//	classes:
//	  - name: identifier
//	    pattern: (a|b)(a|b|0|1)*
//	    alphabet: ab01
//	  - name: ignored
//	    pattern: (;| )
//	    alphabet: "; "
//
// Class order in the file assigns marks, so later classes win length ties.
func NewLexiconFromFile(path string) (*Lexicon, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lexicon Lexicon
	if err = yaml.Unmarshal(bin, &lexicon); err != nil {
		return nil, err
	}
	return &lexicon, nil
}

// GenerateSample writes the default lexicon to a YAML file as a starting
// point for custom lexicons.
func GenerateSample(path string) error {
	bin, err := yaml.Marshal(DefaultLexicon())
	if err != nil {
		return err
	}
	return os.WriteFile(path, bin, 0644)
}
