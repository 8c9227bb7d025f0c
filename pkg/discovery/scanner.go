// Package discovery finds end-to-end test spec files in a project tree.
package discovery

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// DefaultSuffix is the file name suffix that marks a test spec
const DefaultSuffix = ".spec.ts"

// Scanner looks for test spec files inside an fs.FS. Both HasTestFiles and
// FindTestFiles pass over the directories Skipped reports.
type Scanner struct {
	tree   *Tree
	suffix string
}

// NewScanner creates a Scanner over fsys. An empty suffix means DefaultSuffix.
func NewScanner(fsys fs.FS, suffix string) *Scanner {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Scanner{tree: NewTree(fsys), suffix: suffix}
}

// HasTestFiles reports whether the directory at dir on disk contains a spec
// file at any depth. A missing directory yields false.
func HasTestFiles(dir, suffix string) bool {
	if dir == "" {
		dir = "."
	}
	return NewScanner(os.DirFS(dir), suffix).HasTestFiles(".")
}

// Suffix returns the suffix the scanner matches against
func (s *Scanner) Suffix() string {
	return s.suffix
}

// HasTestFiles reports whether dir, or any directory below it, holds a regular
// file whose name ends with the scanner suffix. The walk is depth first and
// stops at the first match. Directories that cannot be read count as empty.
func (s *Scanner) HasTestFiles(dir string) bool {
	if _, err := fs.Stat(s.tree.fsys, dir); err != nil {
		return false
	}
	return s.hasTestFiles(dir)
}

func (s *Scanner) hasTestFiles(dir string) bool {
	entries, err := s.tree.readDir(dir)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if s.hasTestFiles(path.Join(dir, entry.Name())) {
				return true
			}
			continue
		}
		if s.isSpec(entry) {
			return true
		}
	}
	return false
}

// FindTestFiles returns every spec file below dir, sorted, with paths
// relative to the scanner root.
// A missing dir yields an empty result.
func (s *Scanner) FindTestFiles(dir string) ([]string, error) {
	if _, err := fs.Stat(s.tree.fsys, dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	err := fs.WalkDir(s.tree.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != dir && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if s.isSpec(d) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) isSpec(entry fs.DirEntry) bool {
	return entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), s.suffix)
}
