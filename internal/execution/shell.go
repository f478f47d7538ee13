package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"synthtest/internal/domain"
	herrors "synthtest/internal/errors"
)

// DefaultShell interprets commands that need redirection, pipes or globs
const DefaultShell = "/bin/sh"

// ShellExecutor runs commands as local subprocesses
type ShellExecutor struct {
	logger *zap.Logger
	shell  string
}

// NewShellExecutor creates a new ShellExecutor
func NewShellExecutor(logger *zap.Logger) *ShellExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShellExecutor{logger: logger, shell: DefaultShell}
}

// Execute runs command and waits for it to finish.
//
// Without useShell the command is split into words with POSIX quoting rules
// and started directly, so redirections and pipes are passed as plain
// arguments. With useShell the whole string is handed to /bin/sh -c.
// A non-empty input is written to the process stdin.
//
// A nonzero exit status is reported through the result, not as an error.
// The error is set only when the process could not be started at all, or
// when ctx ended while it was running. No deadline is applied beyond
// whatever ctx carries.
func (e *ShellExecutor) Execute(ctx context.Context, command, input string, useShell bool) (domain.ExecResult, error) {
	e.logger.Debug("executing", zap.String("cmd", command), zap.Bool("shell", useShell))

	var args []string
	if useShell {
		args = []string{e.shell, "-c", command}
	} else {
		words, err := shellquote.Split(command)
		if err != nil {
			return domain.ExecResult{}, herrors.Wrap(err, fmt.Sprintf("cannot split command %q", command))
		}
		args = words
	}
	if len(args) == 0 {
		return domain.ExecResult{}, herrors.Configf("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	// A process killed because ctx ended says nothing about the command
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, herrors.Wrap(ctxErr, fmt.Sprintf("interrupted while running %q", args[0]))
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return result, herrors.Wrap(err, fmt.Sprintf("cannot run %q", args[0]))
	}
	result.RC = exitCode(exitErr)
	return result, nil
}

// exitCode returns the exit status, or the negated signal number when the
// process was killed by a signal.
func exitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return -int(status.Signal())
	}
	return err.ExitCode()
}

var _ Executor = (*ShellExecutor)(nil)
