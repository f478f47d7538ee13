package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	herrors "synthtest/internal/errors"
)

// Suite describes a corpus in a YAML file. Empty fields keep the defaults.
//
//	tests_dir: hoa-files
//	extension: hoa
//	ignore_marker: .synthtest-ignore
//	tool_args: -k 4
//	output: /tmp/synthtest-out
type Suite struct {
	TestsDir     string  `yaml:"tests_dir"`
	Extension    string  `yaml:"extension"`
	IgnoreMarker string  `yaml:"ignore_marker"`
	ToolArgs     *string `yaml:"tool_args"`
	Output       string  `yaml:"output"`

	dir string
}

// LoadSuite reads a suite file
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, herrors.Configf("cannot read suite %s: %v", path, err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, herrors.Configf("cannot parse suite %s: %v", path, err)
	}
	suite.dir = filepath.Dir(path)
	return &suite, nil
}

// Apply copies the suite settings into cfg. Relative directories are taken
// relative to the suite file. Flags given on the command line win.
func (s *Suite) Apply(cfg *Config) {
	if s.TestsDir != "" {
		cfg.TestsDir = s.resolve(s.TestsDir)
	}
	if s.Extension != "" {
		cfg.Extension = s.Extension
	}
	if s.IgnoreMarker != "" {
		cfg.IgnoreMarker = s.IgnoreMarker
	}
	if s.ToolArgs != nil {
		cfg.DefaultToolArgs = *s.ToolArgs
	}
	if s.Output != "" && cfg.Flags.OutputFolder == "" {
		cfg.Flags.OutputFolder = s.resolve(s.Output)
	}
}

func (s *Suite) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}
