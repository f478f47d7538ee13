package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"synthtest/internal/config"
	"synthtest/internal/execution"
	"synthtest/internal/tool"
	"synthtest/internal/ui"
	"synthtest/internal/verdict"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	corpus    *Corpus
	formatter *ui.Formatter
	newLogger func(*config.Config) *zap.Logger

	failed int
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	corpus *Corpus,
	formatter *ui.Formatter,
	newLogger func(*config.Config) *zap.Logger,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		corpus:    corpus,
		formatter: formatter,
		newLogger: newLogger,
	}
}

// Failed returns the number of failed tests of the last run
func (rc *RunCommand) Failed() int {
	return rc.failed
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := rc.config.Validate(); err != nil {
		return err
	}

	logger := rc.newLogger(rc.config)
	defer logger.Sync() //nolint:errcheck
	logger.Debug("configuration", zap.Stringer("config", rc.config))

	tests, err := rc.corpus.Tests()
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	executor := execution.NewShellExecutor(logger)
	runner := tool.NewRunner(rc.config.ToolExec, rc.config.ToolArgs(), rc.config.SpecExtension(), executor)
	policy := verdict.NewPolicy(nil, logger)
	check := policy.Check
	if rc.config.Flags.ModelCheck {
		policy.Checker = verdict.NewIIMCChecker(rc.config.CheckerExec, executor)
		check = policy.CheckWithModelCheck
	}

	opts := execution.Options{
		StopOnError:  rc.config.StopOnError(),
		OutputFolder: rc.config.Flags.OutputFolder,
	}
	if rc.config.Flags.Progress {
		opts.Progress = ui.NewProgressBar(len(tests))
	}
	driver := execution.NewDriver(logger, opts)

	report, err := driver.Run(cmd.Context(), tests, runner.Run, check)
	if err != nil {
		if report != nil {
			color.Red("Run aborted, see logs in %s", report.Workspace)
		}
		return err
	}

	rc.failed = len(report.Failed)
	rc.formatter.PrintSummary(report)
	return nil
}
