// Package tool invokes the synthesis tool under test.
package tool

import (
	"context"
	"strings"

	"github.com/kballard/go-shellquote"

	"synthtest/internal/domain"
	"synthtest/internal/execution"
)

// PartitionExtension is the extension of the file listing the inputs and
// outputs of a specification
const PartitionExtension = ".part"

// Runner runs the synthesis tool on one specification
type Runner struct {
	exec      string
	extraArgs string
	specExt   string
	executor  execution.Executor
}

// NewRunner creates a Runner. exec is the tool command, possibly with its own
// arguments; extraArgs is appended verbatim after the standard arguments.
// specExt is the specification extension that is swapped for .part to find
// the partition file.
func NewRunner(exec, extraArgs, specExt string, executor execution.Executor) *Runner {
	return &Runner{
		exec:      exec,
		extraArgs: extraArgs,
		specExt:   specExt,
		executor:  executor,
	}
}

// Run invokes "<exec> <test> -p <partition> -o <resultFile> <extraArgs>".
// It has the signature of execution.RunToolFunc.
func (r *Runner) Run(ctx context.Context, test, resultFile string) (domain.ExecResult, error) {
	return r.executor.Execute(ctx, r.Command(test, resultFile), "", false)
}

// Command builds the command line for a test
func (r *Runner) Command(test, resultFile string) string {
	cmd := r.exec + " " + shellquote.Join(test, "-p", PartitionFile(test, r.specExt), "-o", resultFile)
	if extra := strings.TrimSpace(r.extraArgs); extra != "" {
		cmd += " " + extra
	}
	return cmd
}

// PartitionFile returns the partition file that belongs to a specification:
// the last occurrence of specExt is replaced with .part
func PartitionFile(test, specExt string) string {
	if i := strings.LastIndex(test, specExt); specExt != "" && i >= 0 {
		return test[:i] + PartitionExtension
	}
	return test + PartitionExtension
}
