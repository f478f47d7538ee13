package config

const (
	// DefaultTestsDir holds the real/ and unreal/ corpus directories
	DefaultTestsDir = "hoa-files"
	// DefaultExtension is the extension of specification files
	DefaultExtension = "hoa"
	// DefaultIgnoreMarker marks corpus directories to skip
	DefaultIgnoreMarker = ".synthtest-ignore"
	// DefaultToolArgs are always passed to the tool after the user arguments
	DefaultToolArgs = "-k 4"
	// DefaultEnvFile is read for TOOL_EXEC and IIMC_EXEC when present
	DefaultEnvFile = "synthtest.env"
)

// Environment variables naming the external executables
const (
	EnvToolExec    = "TOOL_EXEC"
	EnvCheckerExec = "IIMC_EXEC"
)
