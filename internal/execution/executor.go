package execution

import (
	"context"

	"synthtest/internal/domain"
)

// Executor runs external commands and captures their exit code and streams
type Executor interface {
	Execute(ctx context.Context, command, input string, useShell bool) (domain.ExecResult, error)
}
