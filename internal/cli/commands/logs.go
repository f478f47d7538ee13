package commands

import (
	"github.com/spf13/cobra"

	"synthtest/internal/ui"
)

// LogsCommand handles the logs command
type LogsCommand struct {
	viewer *ui.LogViewer
}

// NewLogsCommand creates a new LogsCommand
func NewLogsCommand(viewer *ui.LogViewer) *LogsCommand {
	return &LogsCommand{viewer: viewer}
}

// Execute runs the command
func (lc *LogsCommand) Execute(cmd *cobra.Command, args []string) error {
	return lc.viewer.View(args[0])
}
