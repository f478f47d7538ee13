package execution

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"synthtest/internal/domain"
	herrors "synthtest/internal/errors"
	"synthtest/internal/workspace"
)

// RunToolFunc runs the tool under test on one test file. The tool is
// expected to write its result to resultFile.
type RunToolFunc func(ctx context.Context, test, resultFile string) (domain.ExecResult, error)

// CheckAnswerFunc judges what the tool did for one test. An error means the
// environment is broken and stops the whole run; an ordinary wrong answer is
// a failing verdict.
type CheckAnswerFunc func(ctx context.Context, test, resultFile string, res domain.ExecResult) (domain.Verdict, error)

// Progress is notified after every finished test
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Options configures a Driver
type Options struct {
	StopOnError  bool     // Stop after the first failed test
	OutputFolder string   // Keep logs and results here instead of a temporary folder
	Progress     Progress // Optional
}

// Driver runs tests one after another and collects the failures
type Driver struct {
	logger *zap.Logger
	opts   Options
}

// NewDriver creates a new Driver
func NewDriver(logger *zap.Logger, opts Options) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{logger: logger, opts: opts}
}

// Run executes the tests in order. For every test the tool is run, its
// result is logged, and checkAnswer decides whether the test passed. Logs
// go to {workspace}/{test}.log and the tool writes {workspace}/{test}.model.
//
// A temporary workspace is removed when every test passed; otherwise it is
// kept so the logs can be inspected. An error returned by either callback
// aborts the run, leaves the workspace in place and is returned together
// with the partial report.
func (d *Driver) Run(ctx context.Context, tests []string, runTool RunToolFunc, checkAnswer CheckAnswerFunc) (*domain.Report, error) {
	startTime := time.Now()

	ws, err := workspace.Acquire(d.opts.OutputFolder)
	if err != nil {
		return nil, herrors.Wrap(err, "cannot prepare workspace")
	}
	if ws.Explicit() {
		d.logger.Info("using " + ws.Dir + " as the output folder")
	} else {
		d.logger.Info("using " + ws.Dir + " as the temporary folder")
	}

	report := &domain.Report{
		Total:     len(tests),
		Workspace: ws.Dir,
		Kept:      true,
	}
	finish := func() {
		report.Duration = time.Since(startTime)
		if d.opts.Progress != nil {
			d.opts.Progress.Finish()
		}
	}

	for _, test := range tests {
		if err := ctx.Err(); err != nil {
			finish()
			return report, herrors.Wrap(err, "run interrupted")
		}
		d.logger.Info("testing " + test)
		report.Ran++

		verdict, err := d.runOne(ctx, ws, test, runTool, checkAnswer)
		if err != nil {
			finish()
			return report, err
		}

		if verdict.Failed() {
			d.logger.Info("    FAILED")
			report.Failed = append(report.Failed, test)
		}
		if d.opts.Progress != nil {
			d.opts.Progress.Update(report.Passed(), len(report.Failed))
		}
		if verdict.Failed() && d.opts.StopOnError {
			break
		}
	}

	if report.Success() {
		d.logger.Info("ALL TESTS PASSED")
	} else {
		d.logger.Info(failureSummary(report.Failed, ws.Dir))
	}

	removed, err := ws.Release(!report.Success())
	if err != nil {
		d.logger.Warn("cannot remove temporary folder", zap.String("dir", ws.Dir), zap.Error(err))
	}
	report.Kept = !removed
	finish()
	return report, nil
}

func (d *Driver) runOne(ctx context.Context, ws *workspace.Workspace, test string, runTool RunToolFunc, checkAnswer CheckAnswerFunc) (domain.Verdict, error) {
	logFile, err := os.Create(ws.LogPath(test))
	if err != nil {
		return domain.Verdict{}, herrors.Wrap(err, "cannot create test log")
	}
	defer logFile.Close()

	resultFile := ws.ModelPath(test)
	res, err := runTool(ctx, test, resultFile)
	if err != nil {
		fmt.Fprintf(logFile, "%s%v\n", domain.RunFailedPrefix, err)
		return domain.Verdict{}, err
	}
	d.record(logFile, res.String())

	verdict, err := checkAnswer(ctx, test, resultFile, res)
	if err != nil {
		fmt.Fprintf(logFile, "%s%v\n", domain.CheckFailedPrefix, err)
		return domain.Verdict{}, err
	}
	d.record(logFile, verdict.String())
	return verdict, nil
}

func (d *Driver) record(logFile *os.File, entry string) {
	d.logger.Debug(entry)
	if _, err := fmt.Fprintln(logFile, entry); err != nil {
		d.logger.Warn("cannot write test log", zap.String("file", logFile.Name()), zap.Error(err))
	}
}

func failureSummary(failed []string, dir string) string {
	var b strings.Builder
	b.WriteString("The following tests failed:")
	for _, t := range failed {
		b.WriteString("\n    ")
		b.WriteString(t)
	}
	b.WriteString("\nSee logs in ")
	b.WriteString(dir)
	return b.String()
}
