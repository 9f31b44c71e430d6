// Package cli wires the resolver, loader, search and highlighter into the mgrep command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/takaishi/mgrep/config"
	"github.com/takaishi/mgrep/highlight"
	"github.com/takaishi/mgrep/logging"
	"github.com/takaishi/mgrep/search"
	"github.com/takaishi/mgrep/source"
)

// Options configures the command's ambient dependencies
type Options struct {
	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv config.LookupEnv
	// Profile forces a color profile. When nil it is detected from stdout.
	Profile *termenv.Profile
}

// NewRootCmd creates the mgrep command.
// Flag parsing is left to config.Resolver, which needs the raw tokens.
// A leading "--" argument is dropped, so callers can put one in front of the
// query to keep cobra from routing it as a command name ("completion", "__complete").
// A nil logger discards all records.
func NewRootCmd(opts Options, logger *slog.Logger) *cobra.Command {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &cobra.Command{
		Use:                "mgrep <query> [-i|--ignore-case | -ni|--no-ignore-case] [path]",
		Short:              "Print lines containing a query",
		Long:               config.Usage,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			return run(cmd, args, opts, logger)
		},
	}
}

func run(cmd *cobra.Command, args []string, opts Options, logger *slog.Logger) error {
	stdin := cmd.InOrStdin()
	if source.IsTerminal(stdin) {
		logger.Debug("stdin_is_terminal", slog.String("hint", "without a path, input is read until EOF (Ctrl-D)"))
	}

	resolver := config.Resolver{LookupEnv: opts.LookupEnv, Stdin: stdin}
	tokens := append([]string{cmd.Name()}, args...)
	cfg, err := resolver.Build(tokens)
	if errors.Is(err, config.ErrHelpRequested) {
		fmt.Fprint(cmd.OutOrStdout(), config.Usage)
		return err
	}
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}
	logger.Debug("config_resolved",
		slog.String("query", cfg.Query),
		slog.Bool("ignore_case", cfg.IgnoreCase),
		slog.String("input", inputKind(cfg.Input)))

	contents, err := source.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	logger.Debug("source_loaded", slog.Int("bytes", len(contents)))

	matches := search.Search(cfg.Query, cfg.IgnoreCase, contents)
	logger.Debug("search_complete", slog.Int("matches", len(matches)))

	printer := highlight.NewPrinter(cmd.OutOrStdout(), colorProfile(cmd.OutOrStdout(), opts))
	for _, line := range matches {
		if err := printer.PrintLine(cfg.Query, cfg.IgnoreCase, line); err != nil {
			return fmt.Errorf("application error: %w", err)
		}
	}

	return nil
}

// Run executes mgrep with args (program name excluded) and returns the exit code
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, opts Options) int {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	level, _ := opts.LookupEnv(logging.LevelEnv)
	logger := logging.New(stderr, level)

	cmd := NewRootCmd(opts, logger)
	cmd.SetArgs(append([]string{"--"}, args...))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrHelpRequested):
		return 1
	default:
		printError(stderr, err)
		return 1
	}
}

// Execute runs mgrep against the process arguments and standard streams
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, Options{LookupEnv: os.LookupEnv})
}

func colorProfile(out io.Writer, opts Options) termenv.Profile {
	if opts.Profile != nil {
		return *opts.Profile
	}
	return termenv.NewOutput(out).EnvColorProfile()
}

func printError(w io.Writer, err error) {
	label := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true).
		Render("Error:")
	fmt.Fprintf(w, "%s %v\n", label, err)
}

func inputKind(src config.InputSource) string {
	switch s := src.(type) {
	case config.FilePath:
		return "file:" + string(s)
	case config.LiteralText:
		return "stdin"
	default:
		return "unknown"
	}
}
