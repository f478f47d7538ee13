package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarnessError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *HarnessError
		expected string
	}{
		{
			name:     "message only",
			err:      Configf("TOOL_EXEC is not set"),
			expected: "TOOL_EXEC is not set",
		},
		{
			name:     "with test",
			err:      Assertionf("real/a.hoa", "unexpected exit code %d", 3),
			expected: "[real/a.hoa] unexpected exit code 3",
		},
		{
			name:     "with cause",
			err:      Wrap(stderrors.New("disk full"), "write log"),
			expected: "write log: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitConfigError, GetExitCode(Configf("x")))
	assert.Equal(t, ExitAssertion, GetExitCode(Assertionf("", "x")))
	assert.Equal(t, ExitRuntime, GetExitCode(Wrap(stderrors.New("x"), "y")))
	assert.Equal(t, ExitRuntime, GetExitCode(stderrors.New("plain")))
}

func TestKindsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("check answer: %w", Assertionf("t", "bad output"))
	assert.True(t, IsAssertion(err))
	assert.False(t, IsConfig(err))
	assert.Equal(t, ExitAssertion, GetExitCode(err))

	assert.True(t, IsConfig(fmt.Errorf("load: %w", Configf("missing"))))
	assert.False(t, IsAssertion(stderrors.New("plain")))
}
