package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds specification files below a corpus directory
type Scanner struct {
	ignoreMarker string
}

// NewScanner creates a new Scanner. A directory that directly contains a
// file named ignoreMarker is skipped together with everything below it.
// An empty marker disables skipping.
func NewScanner(ignoreMarker string) *Scanner {
	return &Scanner{ignoreMarker: ignoreMarker}
}

// NormalizeExtension makes sure ext starts with a dot, so "hoa" and ".hoa" are the same
func NormalizeExtension(ext string) string {
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// FindFiles walks root recursively, following symlinked directories, and
// returns every file whose name ends with ext.
//
// Directories are visited top-down: the files of a directory come before the
// files of its subdirectories. Entries keep the order in which the file
// system lists them, they are not sorted.
func (s *Scanner) FindFiles(root, ext string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	ext = NormalizeExtension(ext)
	var matches []string
	ancestors := make(map[string]bool)
	if err := s.walk(root, ext, ancestors, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// walk visits dir and its subdirectories. ancestors holds the resolved paths
// of the directories currently being walked, so only a link pointing back up
// the tree is cut; links to the same directory from different places are all
// followed.
func (s *Scanner) walk(dir, ext string, ancestors map[string]bool, matches *[]string) error {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if ancestors[real] {
		return nil
	}
	ancestors[real] = true
	defer delete(ancestors, real)

	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}

	var files, subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if isDir(path, entry) {
			subdirs = append(subdirs, path)
			continue
		}
		if s.ignoreMarker != "" && entry.Name() == s.ignoreMarker {
			return nil
		}
		files = append(files, entry.Name())
	}

	for _, name := range files {
		if strings.HasSuffix(name, ext) {
			*matches = append(*matches, filepath.Join(dir, name))
		}
	}
	for _, sub := range subdirs {
		if err := s.walk(sub, ext, ancestors, matches); err != nil {
			return err
		}
	}
	return nil
}

// isDir reports whether the entry is a directory, resolving symlinks.
// Broken links count as files.
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
