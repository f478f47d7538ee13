package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthtest/internal/cli"
	"synthtest/internal/cli/commands"
	"synthtest/internal/config"
	herrors "synthtest/internal/errors"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "synthtest",
		Short:         "Functional tests for a reactive synthesis tool",
		Long:          `Runs a synthesis tool over a corpus of specifications sorted into real/ and unreal/ directories, checks the realizability verdict of every run, and optionally model checks the synthesized circuits. The exit code is the number of failed tests.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(herrors.GetExitCode(err))
	}
	os.Exit(cmds.Run.Failed())
}
