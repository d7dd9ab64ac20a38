package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"myregex/regexlib"
)

var errRejected = errors.New("input rejected")

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [input...]",
	Short: "Match inputs against a pattern",
	Long: `Match each input against the pattern and print the verdict. Inputs are taken
from the arguments, or from standard input one per line when none are given.
Exits with status 1 when any input is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	re, err := regexlib.Compile(args[0], compileOptions()...)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", args[0], err)
	}

	inputs := args[1:]
	if len(inputs) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading inputs: %w", err)
		}
	}

	s := newStyles()
	out := cmd.OutOrStdout()
	rejected := 0
	for _, in := range inputs {
		if re.MatchString(in) {
			fmt.Fprintf(out, "%s %q\n", s.match.Sprint("match   "), in)
			continue
		}
		rejected++
		fmt.Fprintf(out, "%s %q\n", s.reject.Sprint("no match"), in)
	}

	logger.Debug("match finished", "pattern", re.String(), "inputs", len(inputs), "rejected", rejected)
	if rejected > 0 {
		return errRejected
	}
	return nil
}
