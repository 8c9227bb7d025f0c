package discovery

import (
	"io"
	"io/fs"
	"strings"
)

// maxReadSize caps how much of a single project file Tree.Read returns.
// Manifests, lockfiles and framework configs fit well below it.
const maxReadSize = 1 << 20

// skipDirs are dependency, VCS and build output directories. The scanner
// never descends into them and Tree treats everything below them as absent.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"venv":         true,
	"dist":         true,
	"build":        true,
}

// Skipped reports whether name lies in, or is, a skipped directory
func Skipped(name string) bool {
	for _, elem := range strings.Split(name, "/") {
		if skipDirs[elem] {
			return true
		}
	}
	return false
}

// Tree is a read-only view of a project over an fs.FS. Paths are slash
// separated and relative to the project root.
type Tree struct {
	fsys fs.FS
}

// NewTree creates a Tree over fsys
func NewTree(fsys fs.FS) *Tree {
	return &Tree{fsys: fsys}
}

// FS returns the underlying filesystem
func (t *Tree) FS() fs.FS {
	return t.fsys
}

// Has reports whether a file or directory exists at name
func (t *Tree) Has(name string) bool {
	if Skipped(name) {
		return false
	}
	_, err := fs.Stat(t.fsys, name)
	return err == nil
}

// Read returns the content of the regular file at name, truncated to
// maxReadSize. Missing or unreadable files read as "".
func (t *Tree) Read(name string) string {
	if Skipped(name) {
		return ""
	}
	f, err := t.fsys.Open(name)
	if err != nil {
		return ""
	}
	defer f.Close()

	if fi, err := f.Stat(); err != nil || !fi.Mode().IsRegular() {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(f, maxReadSize))
	if err != nil {
		return ""
	}
	return string(data)
}

// DirExists reports whether name is a directory
func (t *Tree) DirExists(name string) bool {
	if Skipped(name) {
		return false
	}
	fi, err := fs.Stat(t.fsys, name)
	return err == nil && fi.IsDir()
}

// readDir lists name, hiding skipped directories below the root
func (t *Tree) readDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(t.fsys, name)
	if err != nil {
		return nil, err
	}

	kept := make([]fs.DirEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && skipDirs[entry.Name()] {
			continue
		}
		kept = append(kept, entry)
	}
	return kept, nil
}
