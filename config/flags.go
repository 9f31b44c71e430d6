package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const ignoreCaseEnv = "IGNORE_CASE"

// LookupEnv reports the value of an environment variable and whether it is defined
type LookupEnv func(key string) (string, bool)

// Config holds the resolved search configuration
type Config struct {
	Query      string
	IgnoreCase bool
	Input      InputSource
}

// Resolver turns command line tokens into a Config
type Resolver struct {
	LookupEnv LookupEnv
	Stdin     io.Reader
}

// NewResolver returns a Resolver backed by the process environment and standard input
func NewResolver() Resolver {
	return Resolver{
		LookupEnv: os.LookupEnv,
		Stdin:     os.Stdin,
	}
}

// Build resolves tokens into a configuration.
// tokens[0] is the program name and is discarded; tokens[1] is the query.
// Standard input is only consumed when no path-like token is present.
func (r Resolver) Build(tokens []string) (*Config, error) {
	if len(tokens) < 2 {
		return nil, ErrMissingQuery
	}

	query := tokens[1]
	if isHelp(query) {
		return nil, ErrHelpRequested
	}
	rest := tokens[2:]

	cfg := &Config{
		Query:      query,
		IgnoreCase: r.ignoreCase(rest),
	}

	// Determine input source
	if path, ok := findPath(rest); ok {
		cfg.Input = FilePath(path)
	} else {
		text, err := r.readStdin()
		if err != nil {
			return nil, err
		}
		cfg.Input = LiteralText(text)
	}

	return cfg, nil
}

// ignoreCase applies the precedence -ni > -i > IGNORE_CASE
func (r Resolver) ignoreCase(tokens []string) bool {
	var on, off bool
	for _, tok := range tokens {
		switch tok {
		case "-ni", "--no-ignore-case":
			off = true
		case "-i", "--ignore-case":
			on = true
		}
	}

	switch {
	case off:
		return false
	case on:
		return true
	default:
		return r.envIgnoreCase()
	}
}

// envIgnoreCase reports whether IGNORE_CASE is defined, whatever its value
func (r Resolver) envIgnoreCase() bool {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	_, ok := lookup(ignoreCaseEnv)
	return ok
}

func (r Resolver) readStdin() (string, error) {
	if r.Stdin == nil {
		return "", &InputError{Source: "stdin", Err: fmt.Errorf("no standard input")}
	}
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", &InputError{Source: "stdin", Err: err}
	}
	return stripQuotes(string(data)), nil
}

// findPath returns the first token that looks like a file path
func findPath(tokens []string) (string, bool) {
	for _, tok := range tokens {
		if strings.ContainsAny(tok, `/\`) {
			return tok, true
		}
	}
	return "", false
}

// stripQuotes removes a single leading and a single trailing double quote
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func isHelp(tok string) bool {
	return tok == "-h" || tok == "--help"
}
