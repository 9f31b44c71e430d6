package source

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/takaishi/mgrep/config"
)

// Load returns the full text of the given input source
func Load(src config.InputSource) (string, error) {
	switch s := src.(type) {
	case config.LiteralText:
		return string(s), nil
	case config.FilePath:
		data, err := os.ReadFile(string(s))
		if err != nil {
			return "", &config.InputError{Source: string(s), Err: err}
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown input source %T", src)
	}
}

// IsTerminal checks if r is a file attached to a terminal
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
