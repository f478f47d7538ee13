// Package workspace manages the scratch directory that holds per-test logs
// and result files.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempPattern is the name pattern of auto-created workspaces
const TempPattern = "synthtest-*"

// Workspace is a directory owned by one test run
type Workspace struct {
	Dir      string
	explicit bool
}

// Acquire returns the workspace for a run. With an explicit path the
// directory is created if needed and reused as is; files from earlier runs
// stay until they are overwritten. Without one a fresh temporary directory
// is created.
func Acquire(explicit string) (*Workspace, error) {
	if explicit != "" {
		if err := os.MkdirAll(explicit, 0755); err != nil {
			return nil, fmt.Errorf("create output folder: %w", err)
		}
		return &Workspace{Dir: explicit, explicit: true}, nil
	}

	dir, err := os.MkdirTemp("", TempPattern)
	if err != nil {
		return nil, fmt.Errorf("create temporary folder: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// Explicit reports whether the directory was supplied by the caller
func (w *Workspace) Explicit() bool {
	return w.explicit
}

// LogPath returns the log file of a test: {dir}/{basename}.log
func (w *Workspace) LogPath(test string) string {
	return w.path(test, ".log")
}

// ModelPath returns where the tool writes its result for a test: {dir}/{basename}.model
func (w *Workspace) ModelPath(test string) string {
	return w.path(test, ".model")
}

func (w *Workspace) path(test, suffix string) string {
	return filepath.Join(w.Dir, filepath.Base(test)+suffix)
}

// Release removes an auto-created workspace after a run without failures.
// Caller-supplied folders and workspaces of failed runs are left on disk.
// It reports whether the directory was removed.
func (w *Workspace) Release(failed bool) (bool, error) {
	if w.explicit || failed {
		return false, nil
	}
	if err := os.RemoveAll(w.Dir); err != nil {
		return false, fmt.Errorf("remove %s: %w", w.Dir, err)
	}
	return true, nil
}
