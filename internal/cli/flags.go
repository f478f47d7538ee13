package cli

import "synthtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	ModelCheck   bool
	ToolArgs     string
	Verbosity    int
	OutputFolder string
	KeepGoing    bool
	TestsDir     string
	NameFilter   string
	Suite        string
	EnvFile      string
	Progress     bool
	Details      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ModelCheck:   f.ModelCheck,
		ToolArgs:     f.ToolArgs,
		Verbosity:    f.Verbosity,
		OutputFolder: f.OutputFolder,
		KeepGoing:    f.KeepGoing,
		TestsDir:     f.TestsDir,
		NameFilter:   f.NameFilter,
		Suite:        f.Suite,
		EnvFile:      f.EnvFile,
		Progress:     f.Progress,
		Details:      f.Details,
	}
}
