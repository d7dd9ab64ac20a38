package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"myregex/regexlib"
)

var (
	dotRaw    bool
	dotOutput string
)

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Export the automaton of a pattern in Graphviz format",
	Long: `Export the epsilon-free automaton used for matching, or with --raw the
Thompson automaton before epsilon removal. Render with: dot -Tpng graph.dot -o graph.png`,
	Args: cobra.ExactArgs(1),
	RunE: runDot,
}

func init() {
	dotCmd.Flags().BoolVar(&dotRaw, "raw", false, "Export the automaton before epsilon removal")
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "-", "Output file (- for stdout)")
}

func runDot(cmd *cobra.Command, args []string) error {
	var buf bytes.Buffer
	if dotRaw {
		a, err := regexlib.Thompson(args[0], compileOptions()...)
		if err != nil {
			return fmt.Errorf("compiling %q: %w", args[0], err)
		}
		if err := a.WriteDOT(&buf); err != nil {
			return err
		}
	} else {
		re, err := regexlib.Compile(args[0], compileOptions()...)
		if err != nil {
			return fmt.Errorf("compiling %q: %w", args[0], err)
		}
		if err := re.WriteDOT(&buf); err != nil {
			return err
		}
	}

	if dotOutput == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if err := os.WriteFile(dotOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot create %s: %w", dotOutput, err)
	}
	logger.Info("DOT written", "path", dotOutput)
	return nil
}
