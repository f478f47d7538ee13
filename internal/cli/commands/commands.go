package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"synthtest/internal/cli"
	"synthtest/internal/config"
	"synthtest/internal/discovery"
	"synthtest/internal/logging"
	"synthtest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Logs *LogsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter(discovery.NewHeaderParser())
	corpus := NewCorpus(cfg, filter)

	return &Commands{
		Run:  NewRunCommand(cfg, corpus, formatter, newLogger),
		List: NewListCommand(cfg, corpus, formatter),
		Logs: NewLogsCommand(ui.NewLogViewer()),
	}
}

// newLogger builds the console logger once the verbosity flags are known
func newLogger(cfg *config.Config) *zap.Logger {
	level := logging.LevelFor(cfg.Flags.Verbosity, cfg.Flags.Progress)
	return logging.New(level, os.Stderr)
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		return cfg.Apply(flags.ToConfigFlags())
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the functional tests",
		Long:    "Run the synthesis tool on every specification of the corpus and check its realizability verdict, optionally model checking the synthesized circuits",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().BoolVar(&flags.ModelCheck, "mc", false, "Model check the synthesized circuits")
	runCmd.Flags().StringVarP(&flags.ToolArgs, "args", "a", "", "Arguments to pass to the tool. Enclose the arguments in \"\"")
	runCmd.Flags().CountVarP(&flags.Verbosity, "verbose", "v", "Increase verbosity (repeatable)")
	runCmd.Flags().StringVarP(&flags.OutputFolder, "output", "o", "", "Keep logs and results in this folder instead of a temporary one")
	runCmd.Flags().BoolVar(&flags.KeepGoing, "keep-going", false, "Run the remaining tests after a failure")
	runCmd.Flags().StringVarP(&flags.TestsDir, "tests-dir", "t", "", "Folder holding the real/ and unreal/ corpus directories")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name (substring, or glob such as 'real/arbiter*')")
	runCmd.Flags().StringVar(&flags.Suite, "suite", "", "YAML file describing the corpus")
	runCmd.Flags().StringVar(&flags.EnvFile, "env", "", "Env file defining TOOL_EXEC and IIMC_EXEC (default "+config.DefaultEnvFile+")")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar instead of info logs")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the corpus",
		Long:    "Discover the specifications of the corpus without running anything",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.TestsDir, "tests-dir", "t", "", "Folder holding the real/ and unreal/ corpus directories")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name (substring, or glob such as 'real/arbiter*')")
	listCmd.Flags().StringVar(&flags.Suite, "suite", "", "YAML file describing the corpus")
	listCmd.Flags().BoolVarP(&flags.Details, "details", "d", false, "Show the HOA header of every specification")
	rootCmd.AddCommand(listCmd)

	// Logs command
	logsCmd := &cobra.Command{
		Use:   "logs <folder>",
		Short: "Browse the logs of a failed run",
		Long:  "Display the per-test logs left in a workspace in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Logs.Execute,
	}
	rootCmd.AddCommand(logsCmd)
}
