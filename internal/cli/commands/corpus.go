package commands

import (
	"os"

	"github.com/fatih/color"

	"synthtest/internal/config"
	"synthtest/internal/discovery"
)

// Corpus discovers the tests selected by the configuration
type Corpus struct {
	config *config.Config
	filter *discovery.Filter
}

// NewCorpus creates a new Corpus
func NewCorpus(cfg *config.Config, filter *discovery.Filter) *Corpus {
	return &Corpus{config: cfg, filter: filter}
}

// Tests returns the realizable tests followed by the unrealizable ones.
// A missing category directory is reported and skipped.
func (c *Corpus) Tests() ([]string, error) {
	scanner := discovery.NewScanner(c.config.IgnoreMarker)

	var tests []string
	for _, dir := range c.config.CategoryDirs() {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			color.Yellow("Skipping missing corpus directory %s", dir)
			continue
		}
		found, err := scanner.FindFiles(dir, c.config.Extension)
		if err != nil {
			return nil, err
		}
		tests = append(tests, found...)
	}

	return c.filter.FilterByName(tests, c.config.Flags.NameFilter), nil
}
