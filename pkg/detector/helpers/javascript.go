package helpers

import (
	"encoding/json"
)

// FSReader provides filesystem operations for helper functions
type FSReader interface {
	Has(path string) bool
	Read(path string) string
	DirExists(path string) bool
}

// PackageJSON represents parsed package.json
type PackageJSON struct {
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
	DevDeps      map[string]string `json:"devDependencies"`
}

// ParsePackageJSON parses package.json. A missing or malformed file yields
// an empty PackageJSON.
func ParsePackageJSON(fs FSReader) PackageJSON {
	content := fs.Read("package.json")
	if content == "" {
		return PackageJSON{}
	}

	var pkg PackageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return PackageJSON{}
	}

	return pkg
}

// HasDependency reports whether name is a runtime or dev dependency
func (p PackageJSON) HasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDeps[name]
	return ok
}

// GetDevServerScript returns the script that starts a local server, or ""
// when package.json defines none of the usual names
func GetDevServerScript(pkg PackageJSON) string {
	priorities := []string{
		"dev",
		"develop",
		"serve",
		"start",
	}

	for _, scriptName := range priorities {
		if script, exists := pkg.Scripts[scriptName]; exists && script != "" {
			return scriptName
		}
	}

	return ""
}
