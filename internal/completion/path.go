package completion

import (
	"os"
	"path/filepath"
)

// PathSource enumerates executables from a PATH-style directory list.
type PathSource struct {
	dirs []string
}

// NewPathSource builds a source from the PATH environment variable.
func NewPathSource() *PathSource {
	return &PathSource{dirs: filepath.SplitList(os.Getenv("PATH"))}
}

// Dirs returns the search directories in PATH order.
func (s *PathSource) Dirs() []string {
	return s.dirs
}

// Entries returns the executable regular files in dir, in lexical order.
// Symlinks are followed so links to executables count. Unreadable
// directories yield nothing; a broken PATH entry is not an error.
func (s *PathSource) Entries(dir string) []string {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, de := range des {
		info, err := os.Stat(filepath.Join(dir, de.Name()))
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
			continue
		}
		names = append(names, de.Name())
	}
	return names
}
