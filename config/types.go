package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingQuery is returned when no query token follows the program name
	ErrMissingQuery = errors.New("missing query argument")

	// ErrHelpRequested signals that usage was asked for instead of a search
	ErrHelpRequested = errors.New("help requested")
)

// InputSource is either a FilePath or a LiteralText
type InputSource interface {
	inputSource()
}

// FilePath names a file whose contents are searched
type FilePath string

// LiteralText is text taken verbatim from standard input
type LiteralText string

func (FilePath) inputSource()    {}
func (LiteralText) inputSource() {}

// InputError reports a failure reading the text to search
type InputError struct {
	Source string // file path or "stdin"
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
