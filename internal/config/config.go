package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"synthtest/internal/domain"
	herrors "synthtest/internal/errors"
)

// Config holds all configuration for a run. It is built once in main and
// passed down.
type Config struct {
	// External executables
	ToolExec    string
	CheckerExec string

	// Corpus settings
	TestsDir     string
	Extension    string
	IgnoreMarker string

	// Arguments always appended for the tool
	DefaultToolArgs string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TestsDir:        DefaultTestsDir,
		Extension:       DefaultExtension,
		IgnoreMarker:    DefaultIgnoreMarker,
		DefaultToolArgs: DefaultToolArgs,
	}
}

// Apply sets the flags, applies the suite file they name, and reads the
// executables from the environment
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags

	if flags.Suite != "" {
		suite, err := LoadSuite(flags.Suite)
		if err != nil {
			return err
		}
		suite.Apply(c)
	}
	return c.LoadEnv()
}

// LoadEnv reads TOOL_EXEC and IIMC_EXEC. Values from the env file never
// override variables already set in the process environment. A missing
// default env file is fine; a missing explicit one is an error.
func (c *Config) LoadEnv() error {
	envFile := c.Flags.EnvFile
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return herrors.Configf("cannot read env file %s: %v", envFile, err)
		}
	}

	c.ToolExec = strings.TrimSpace(os.Getenv(EnvToolExec))
	c.CheckerExec = strings.TrimSpace(os.Getenv(EnvCheckerExec))
	return nil
}

// Validate checks that the executables needed for the run are configured
func (c *Config) Validate() error {
	var missing []string
	if c.ToolExec == "" {
		missing = append(missing, EnvToolExec)
	}
	if c.Flags.ModelCheck && c.CheckerExec == "" {
		missing = append(missing, EnvCheckerExec)
	}
	if len(missing) == 0 {
		return nil
	}

	return herrors.Configf("%s not set.\n"+
		"Define them in the environment or in %s, for example:\n"+
		"  %s=<path to the synthesis tool>\n"+
		"  %s=<path to the IIMC model checker>",
		strings.Join(missing, " and "), DefaultEnvFile, EnvToolExec, EnvCheckerExec)
}

// GetTestsDir returns the corpus directory, using the flag if provided
func (c *Config) GetTestsDir() string {
	if c.Flags.TestsDir != "" {
		return c.Flags.TestsDir
	}
	return c.TestsDir
}

// CategoryDirs returns the realizable and unrealizable corpus directories, in that order
func (c *Config) CategoryDirs() []string {
	root := c.GetTestsDir()
	return []string{
		filepath.Join(root, domain.RealizableDir),
		filepath.Join(root, domain.UnrealizableDir),
	}
}

// ToolArgs returns the user arguments followed by the default arguments
func (c *Config) ToolArgs() string {
	return strings.TrimSpace(c.Flags.ToolArgs + " " + c.DefaultToolArgs)
}

// StopOnError reports whether the run stops at the first failed test
func (c *Config) StopOnError() bool {
	return !c.Flags.KeepGoing
}

// SpecExtension returns the specification extension with a leading dot
func (c *Config) SpecExtension() string {
	if strings.HasPrefix(c.Extension, ".") {
		return c.Extension
	}
	return "." + c.Extension
}

// String renders the settings for debug logging
func (c *Config) String() string {
	return fmt.Sprintf("tool=%q checker=%q tests=%q ext=%q args=%q output=%q stop=%t mc=%t",
		c.ToolExec, c.CheckerExec, c.GetTestsDir(), c.SpecExtension(), c.ToolArgs(),
		c.Flags.OutputFolder, c.StopOnError(), c.Flags.ModelCheck)
}
