// Package verdict decides whether the tool under test answered a test
// correctly.
package verdict

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"synthtest/internal/domain"
	herrors "synthtest/internal/errors"
)

// Exit codes of the synthesis tool
const (
	RealizableCode   = 10
	UnrealizableCode = 20
)

// AigerExtension is appended to result files before model checking since
// the checker only accepts AIGER file names
const AigerExtension = ".aag"

// BuggyMessage is the verdict message for a circuit that fails model checking
const BuggyMessage = "The circuit is buggy"

// Policy judges tool answers
type Policy struct {
	RealizableCode   int
	UnrealizableCode int
	Checker          ModelChecker // Only needed by CheckWithModelCheck
	logger           *zap.Logger
}

// NewPolicy creates a Policy with the default exit codes
func NewPolicy(checker ModelChecker, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{
		RealizableCode:   RealizableCode,
		UnrealizableCode: UnrealizableCode,
		Checker:          checker,
		logger:           logger,
	}
}

// ExpectedCategory reads the expected answer from the name of the directory
// holding the test: <corpus>/real/x.hoa or <corpus>/unreal/x.hoa. Any other
// layout is an assertion error.
func ExpectedCategory(test string) (domain.Category, error) {
	dir := filepath.Base(filepath.Dir(test))
	c, ok := domain.CategoryFromDir(dir)
	if !ok {
		return c, herrors.Assertionf(test, "spec status is unknown: %s", dir)
	}
	return c, nil
}

// Check compares the tool exit code with the expected category.
// An exit code that is neither of the two known codes is an assertion error.
func (p *Policy) Check(ctx context.Context, test, resultFile string, res domain.ExecResult) (domain.Verdict, error) {
	expected, err := ExpectedCategory(test)
	if err != nil {
		return domain.Verdict{}, err
	}

	var found domain.Category
	switch res.RC {
	case p.RealizableCode:
		found = domain.Realizable
	case p.UnrealizableCode:
		found = domain.Unrealizable
	default:
		return domain.Verdict{}, herrors.Assertionf(test, "unexpected exit code of the tool\n%s", res)
	}

	if found != expected {
		return domain.Fail("wrong realizability status: should be %s, but the tool found it %s", expected, found), nil
	}
	return domain.Pass, nil
}

// CheckWithModelCheck runs Check and, for realizable tests that passed it,
// model checks the synthesized circuit.
func (p *Policy) CheckWithModelCheck(ctx context.Context, test, resultFile string, res domain.ExecResult) (domain.Verdict, error) {
	v, err := p.Check(ctx, test, resultFile, res)
	if err != nil || v.Failed() {
		return v, err
	}

	expected, _ := ExpectedCategory(test)
	if expected != domain.Realizable {
		return domain.Pass, nil
	}
	if p.Checker == nil {
		return domain.Verdict{}, herrors.Configf("model checking requested but no model checker is configured")
	}

	aiger := resultFile + AigerExtension
	if err := copyFile(resultFile, aiger); err != nil {
		return domain.Verdict{}, herrors.Wrap(err, "cannot prepare circuit for model checking")
	}
	defer func() {
		if err := os.Remove(aiger); err != nil && !os.IsNotExist(err) {
			p.logger.Warn("cannot remove circuit copy", zap.String("file", aiger), zap.Error(err))
		}
	}()

	correct, err := p.Checker.ModelCheck(ctx, aiger)
	if err != nil {
		return domain.Verdict{}, err
	}
	if !correct {
		return domain.Fail(BuggyMessage), nil
	}
	return domain.Pass, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
