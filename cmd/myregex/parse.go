package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"myregex/regexlib"
)

var parseCmd = &cobra.Command{
	Use:   "parse <pattern>",
	Short: "Print the syntax tree of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	re, err := regexlib.Compile(args[0], compileOptions()...)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), re.Tree())
	return nil
}
