package domain

import (
	"fmt"
	"time"
)

// ExecResult is the outcome of a single subprocess invocation
type ExecResult struct {
	RC     int    // Process exit code
	Stdout string // Captured standard output
	Stderr string // Captured standard error
}

// String renders the result the way it is written to per-test logs
func (r ExecResult) String() string {
	return FormatTriple(r.RC, r.Stdout, r.Stderr)
}

// Verdict is the outcome of judging one test. RC 0 means pass.
type Verdict struct {
	RC  int
	Out string // Human-readable reason, empty on pass
	Err string // Unused, kept so verdicts log like exec results
}

// Pass is the verdict of a test that behaved as expected
var Pass = Verdict{}

// Fail builds a failing verdict with the given message
func Fail(format string, args ...interface{}) Verdict {
	return Verdict{RC: 1, Out: fmt.Sprintf(format, args...)}
}

// Failed reports whether the verdict marks the test as failed
func (v Verdict) Failed() bool {
	return v.RC != 0
}

// String renders the verdict the way it is written to per-test logs
func (v Verdict) String() string {
	return FormatTriple(v.RC, v.Out, v.Err)
}

// Prefixes of the log line written when a test aborts the run
const (
	RunFailedPrefix   = "run failed: "
	CheckFailedPrefix = "check failed: "
)

// FormatTriple renders a return code and its two streams.
// Empty streams are shown as <empty>.
func FormatTriple(rc int, out, err string) string {
	if out == "" {
		out = "<empty>"
	}
	if err == "" {
		err = "<empty>"
	}
	return fmt.Sprintf("rc:%d\nout:%s\nerr:%s", rc, out, err)
}

// Report summarizes a test run
type Report struct {
	Failed    []string      // Failed tests in execution order
	Total     int           // Number of tests handed to the driver
	Ran       int           // Number of tests actually attempted
	Workspace string        // Directory holding logs and result files
	Kept      bool          // Whether the workspace is still on disk
	Duration  time.Duration // Wall time of the run
}

// Passed returns the number of attempted tests that passed
func (r *Report) Passed() int {
	return r.Ran - len(r.Failed)
}

// Success reports whether no attempted test failed
func (r *Report) Success() bool {
	return len(r.Failed) == 0
}
