package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"myregex/internal/store"
	"myregex/internal/suite"
)

var errSuiteFailed = errors.New("suite check failed")

var (
	checkWorkers int
	checkDB      string
)

var checkCmd = &cobra.Command{
	Use:   "check <suites.yml>",
	Short: "Check patterns against their example inputs",
	Long: `Load suites from a YAML file and check that every pattern accepts its
examples and rejects its negative_examples. With --db the run is recorded in a
SQLite database.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "Number of concurrent checks (0 = number of CPUs)")
	checkCmd.Flags().StringVar(&checkDB, "db", "", "Record the run in this SQLite database")
}

func runCheck(cmd *cobra.Command, args []string) error {
	suites, err := suite.LoadFile(args[0])
	if err != nil {
		return err
	}
	if strict {
		for i := range suites {
			suites[i].Strict = true
		}
	}

	runner := &suite.Runner{Workers: checkWorkers, Logger: logger}
	report, err := runner.Run(cmd.Context(), suites)
	if err != nil {
		return fmt.Errorf("running suites: %w", err)
	}

	printReport(cmd.OutOrStdout(), report)

	if checkDB != "" {
		st, err := store.Open(checkDB)
		if err != nil {
			return err
		}
		defer st.Close()
		id, err := st.RecordRun(cmd.Context(), args[0], report)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		logger.Info("run recorded", "db", checkDB, "run", id)
	}

	if !report.Passed() {
		return errSuiteFailed
	}
	return nil
}

func printReport(w io.Writer, report *suite.Report) {
	s := newStyles()

	for _, ce := range report.CompileErrors {
		fmt.Fprintf(w, "%s %s: pattern %q: %v\n", s.reject.Sprint("ERROR"), ce.Suite, ce.Pattern, ce.Err)
	}

	failures := report.Failures()
	if len(failures) > 0 {
		fmt.Fprintln(w, s.heading.Sprint("Failures:"))
		for _, f := range failures {
			want := "match"
			if !f.Want {
				want = "no match"
			}
			fmt.Fprintf(w, "  %s %s: pattern %q input %q: want %s\n", s.reject.Sprint("FAIL"), f.Suite, f.Pattern, f.Input, want)
		}
	}

	checked := len(report.Results)
	passed := checked - len(failures)
	verdict := s.match.Sprint("PASS")
	if !report.Passed() {
		verdict = s.reject.Sprint("FAIL")
	}
	fmt.Fprintf(w, "%s %d/%d inputs as expected, %d compile errors\n", verdict, passed, checked, len(report.CompileErrors))
}
