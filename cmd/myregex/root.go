package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"myregex/regexlib"
)

var (
	verbose   bool
	quiet     bool
	strict    bool
	colorMode string

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "myregex",
	Short: "Compile patterns into finite automata and match strings against them",
	Long: `myregex compiles patterns made of literals, grouping, alternation (|) and the
postfix star (*) into a nondeterministic finite automaton and decides whether
whole strings belong to the pattern's language.

A star applies to the entire run of literal symbols before it, so "foo*"
matches "", "foo" and "foofoo" but not "fooo".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject patterns with unbalanced parentheses")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	logger = newLogger(cmd.ErrOrStderr(), verbose, quiet)

	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		// Check if stdout is a TTY and NO_COLOR is not set
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""
	default:
		return fmt.Errorf("unknown color mode: %s", colorMode)
	}
	return nil
}

func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// compileOptions turns the global flags into matcher options.
func compileOptions() []regexlib.Option {
	opts := []regexlib.Option{regexlib.WithLogger(logger)}
	if strict {
		opts = append(opts, regexlib.WithStrictSyntax())
	}
	return opts
}

// styles holds the color formatters for verdicts.
type styles struct {
	match   *color.Color
	reject  *color.Color
	heading *color.Color
}

func newStyles() *styles {
	return &styles{
		match:   color.New(color.FgHiGreen),
		reject:  color.New(color.FgHiRed),
		heading: color.New(color.Bold),
	}
}
