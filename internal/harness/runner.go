// Package harness runs fixed prompt/expected-token pairs through an extractor
// and prints a pass/fail report.
package harness

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Extractor is the capability under test.
type Extractor interface {
	Extract(ctx context.Context, input string) (string, error)
}

// Status is the outcome of one case.
type Status string

const (
	// StatusPass means the trimmed output equals the trimmed expectation.
	StatusPass Status = "pass"
	// StatusFail means the extractor answered with a different token.
	StatusFail Status = "fail"
	// StatusError means the extractor returned an error.
	StatusError Status = "error"
)

// Result records one case. Err is set when extraction failed; Actual is then empty.
type Result struct {
	Index    int
	Case     Case
	Actual   string
	Expected string
	Err      error
}

// Status derives pass/fail/error from the recorded values.
func (r Result) Status() Status {
	switch {
	case r.Err != nil:
		return StatusError
	case r.Actual == r.Expected:
		return StatusPass
	default:
		return StatusFail
	}
}

// Passed reports whether the trimmed output matched the trimmed expectation.
func (r Result) Passed() bool {
	return r.Status() == StatusPass
}

// Summary aggregates a run.
type Summary struct {
	Results []Result
	Passed  int
	Total   int
}

// Runner executes cases sequentially and writes the report to out.
type Runner struct {
	extractor Extractor
	out       io.Writer
	log       *zap.Logger
}

// NewRunner creates a Runner. A nil logger is replaced by a no-op logger.
func NewRunner(extractor Extractor, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		extractor: extractor,
		out:       out,
		log:       log.Named("harness"),
	}
}

// Run executes every case in order. A failing case never stops the run.
func (r *Runner) Run(ctx context.Context, cases []Case) Summary {
	summary := Summary{
		Results: make([]Result, 0, len(cases)),
		Total:   len(cases),
	}

	for i, tc := range cases {
		res := r.runCase(ctx, i+1, tc)
		if res.Passed() {
			summary.Passed++
		}
		summary.Results = append(summary.Results, res)
	}

	fmt.Fprintf(r.out, "\nSummary: %d / %d tests passed.\n", summary.Passed, summary.Total)
	r.log.Info("test run finished",
		zap.Int("passed", summary.Passed),
		zap.Int("total", summary.Total),
	)
	return summary
}

func (r *Runner) runCase(ctx context.Context, index int, tc Case) Result {
	res := Result{Index: index, Case: tc, Expected: strings.TrimSpace(tc.Expected)}
	fmt.Fprintf(r.out, "\nTest %d: %s\n", index, tc.Input)

	actual, err := r.extractor.Extract(ctx, tc.Input)
	if err != nil {
		res.Err = err
		fmt.Fprintln(r.out, "💥 ERROR:", err)
		r.log.Warn("test case errored", zap.Int("index", index), zap.Error(err))
		return res
	}

	res.Actual = strings.TrimSpace(actual)

	fmt.Fprintln(r.out, "LLM Output  :", res.Actual)
	fmt.Fprintln(r.out, "Expected    :", res.Expected)

	if res.Passed() {
		fmt.Fprintln(r.out, "✅ PASS")
	} else {
		fmt.Fprintln(r.out, "❌ FAIL")
	}
	r.log.Debug("test case finished",
		zap.Int("index", index),
		zap.String("status", string(res.Status())),
		zap.String("actual", res.Actual),
		zap.String("expected", res.Expected),
	)
	return res
}
