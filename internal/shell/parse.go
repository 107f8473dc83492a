package shell

import (
	"fmt"

	shellwords "github.com/mattn/go-shellwords"
)

// Tokenize splits a raw command line into words, honoring single and
// double quotes. Unterminated quotes yield an error; the caller converts
// it to a syntax-error result without dispatching anything.
func Tokenize(line string) ([]string, error) {
	parser := shellwords.NewParser()
	tokens, err := parser.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("syntax error: %v", err)
	}
	return tokens, nil
}
