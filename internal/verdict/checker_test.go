package verdict

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthtest/internal/domain"
	herrors "synthtest/internal/errors"
)

func TestIIMCChecker_ModelCheck(t *testing.T) {
	tests := []struct {
		name        string
		result      domain.ExecResult
		wantCorrect bool
		wantAssert  bool
	}{
		{
			name:        "last line 0 means correct",
			result:      domain.ExecResult{Stdout: "reading\nchecking property 0\n0\n"},
			wantCorrect: true,
		},
		{
			name:   "last line 1 means buggy",
			result: domain.ExecResult{Stdout: "reading\n1\n"},
		},
		{
			name:        "trailing blank lines and spaces are ignored",
			result:      domain.ExecResult{Stdout: "stats\n  0  \n\n   \n"},
			wantCorrect: true,
		},
		{
			name:       "nonzero exit is an assertion",
			result:     domain.ExecResult{RC: 2, Stdout: "0\n"},
			wantAssert: true,
		},
		{
			name:       "other answer is an assertion",
			result:     domain.ExecResult{Stdout: "0\nunknown\n"},
			wantAssert: true,
		},
		{
			name:       "empty output is an assertion",
			result:     domain.ExecResult{},
			wantAssert: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{result: tt.result}
			checker := NewIIMCChecker("/opt/iimc/iimc", exec)

			correct, err := checker.ModelCheck(context.Background(), "/tmp/ws/a.hoa.model.aag")
			require.Equal(t, []string{"/opt/iimc/iimc /tmp/ws/a.hoa.model.aag --pi 0"}, exec.commands)
			if tt.wantAssert {
				require.Error(t, err)
				assert.True(t, herrors.IsAssertion(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, correct)
		})
	}
}

func TestIIMCChecker_QuotesFileName(t *testing.T) {
	exec := &fakeExecutor{result: domain.ExecResult{Stdout: "0\n"}}
	checker := NewIIMCChecker("iimc -t 60", exec)

	_, err := checker.ModelCheck(context.Background(), "/tmp/my ws/a.aag")
	require.NoError(t, err)
	assert.Equal(t, []string{`iimc -t 60 '/tmp/my ws/a.aag' --pi 0`}, exec.commands)
}

func TestIIMCChecker_ExecutorError(t *testing.T) {
	boom := errors.New("no such file")
	checker := NewIIMCChecker("iimc", &fakeExecutor{err: boom})

	_, err := checker.ModelCheck(context.Background(), "a.aag")
	assert.ErrorIs(t, err, boom)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "1", lastLine("a\n1\n\n"))
	assert.Equal(t, "x", lastLine("x"))
	assert.Equal(t, "", lastLine("\n \n"))
}
