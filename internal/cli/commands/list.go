package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthtest/internal/config"
	"synthtest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	corpus    *Corpus
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, corpus *Corpus, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		corpus:    corpus,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.corpus.Tests()
	if err != nil {
		return err
	}

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	return lc.formatter.PrintTestList(tests, lc.config.Flags.Details)
}
