package verdict

import (
	"context"
	"strings"

	"github.com/kballard/go-shellquote"

	herrors "synthtest/internal/errors"
	"synthtest/internal/execution"
)

// ModelChecker verifies a synthesized AIGER circuit
type ModelChecker interface {
	// ModelCheck reports whether the circuit in file satisfies its property
	ModelCheck(ctx context.Context, file string) (bool, error)
}

// IIMCChecker runs the IIMC model checker on property 0
type IIMCChecker struct {
	exec     string
	executor execution.Executor
}

// NewIIMCChecker creates a checker that runs the binary at exec
func NewIIMCChecker(exec string, executor execution.Executor) *IIMCChecker {
	return &IIMCChecker{exec: exec, executor: executor}
}

// ModelCheck runs "<exec> <file> --pi 0". exec may carry its own
// arguments, only the file name is quoted. The checker must exit with 0 and
// its last non-blank output line must be "0" (holds) or "1" (violated);
// anything else is an assertion error.
func (c *IIMCChecker) ModelCheck(ctx context.Context, file string) (bool, error) {
	cmd := c.exec + " " + shellquote.Join(file, "--pi", "0")
	res, err := c.executor.Execute(ctx, cmd, "", false)
	if err != nil {
		return false, err
	}
	if res.RC != 0 {
		return false, herrors.Assertionf(file, "model checker failed\n%s", res)
	}

	switch lastLine(res.Stdout) {
	case "0":
		return true, nil
	case "1":
		return false, nil
	}
	return false, herrors.Assertionf(file, "cannot read model checker answer\n%s", res)
}

// lastLine returns the last non-blank line of out, trimmed
func lastLine(out string) string {
	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}

var _ ModelChecker = (*IIMCChecker)(nil)
