package suite

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"myregex/regexlib"
)

// Result is the verdict for one input of one suite.
type Result struct {
	Suite   string
	Pattern string
	Input   string
	Want    bool
	Got     bool
}

func (r Result) Passed() bool { return r.Want == r.Got }

// CompileError records a suite whose pattern did not compile.
type CompileError struct {
	Suite   string
	Pattern string
	Err     error
}

// Report collects the outcome of a run. Results keep suite order and, within
// a suite, examples before negative examples.
type Report struct {
	Results       []Result
	CompileErrors []CompileError
}

// Failures returns the results whose verdict differs from the expectation.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether every pattern compiled and every verdict was as
// expected.
func (r *Report) Passed() bool {
	return len(r.CompileErrors) == 0 && len(r.Failures()) == 0
}

// Runner checks suites. Each pattern is compiled once and its matcher is
// shared by all workers.
type Runner struct {
	// Workers bounds the number of concurrent checks; 0 means NumCPU.
	Workers int
	Logger  *slog.Logger
}

type job struct {
	slot int
	re   *regexlib.Regex
}

// Run checks every suite and returns the report. It fails only when ctx is
// cancelled; pattern errors are recorded in the report.
func (r *Runner) Run(ctx context.Context, suites []Suite) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := r.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	report := &Report{}
	var jobs []job
	for _, s := range suites {
		var opts []regexlib.Option
		opts = append(opts, regexlib.WithLogger(logger))
		if s.Strict {
			opts = append(opts, regexlib.WithStrictSyntax())
		}
		re, err := regexlib.Compile(s.Pattern, opts...)
		if err != nil {
			logger.Warn("pattern did not compile", slog.String("suite", s.Name), slog.Any("error", err))
			report.CompileErrors = append(report.CompileErrors, CompileError{Suite: s.Name, Pattern: s.Pattern, Err: err})
			continue
		}
		logger.Info("checking suite", slog.String("suite", s.Name),
			slog.Int("examples", len(s.Examples)), slog.Int("negative_examples", len(s.NegativeExamples)))

		for _, in := range s.Examples {
			report.Results = append(report.Results, Result{Suite: s.Name, Pattern: s.Pattern, Input: in, Want: true})
			jobs = append(jobs, job{slot: len(report.Results) - 1, re: re})
		}
		for _, in := range s.NegativeExamples {
			report.Results = append(report.Results, Result{Suite: s.Name, Pattern: s.Pattern, Input: in, Want: false})
			jobs = append(jobs, job{slot: len(report.Results) - 1, re: re})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// each job owns its slot, so no locking is needed
			res := &report.Results[j.slot]
			res.Got = j.re.MatchString(res.Input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the caller may have cancelled after the last job finished
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("run finished", slog.Int("results", len(report.Results)),
		slog.Int("failures", len(report.Failures())), slog.Int("compile_errors", len(report.CompileErrors)))
	return report, nil
}
