package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

// mockFSReader implements FSReader for testing
type mockFSReader struct {
	root string
}

func newMockFSReader(root string) *mockFSReader {
	return &mockFSReader{root: root}
}

func (m *mockFSReader) Has(path string) bool {
	fullPath := filepath.Join(m.root, path)
	_, err := os.Stat(fullPath)
	return err == nil
}

func (m *mockFSReader) Read(path string) string {
	fullPath := filepath.Join(m.root, path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return ""
	}
	return string(data)
}

func (m *mockFSReader) DirExists(path string) bool {
	fullPath := filepath.Join(m.root, path)
	fi, err := os.Stat(fullPath)
	return err == nil && fi.IsDir()
}

// writeFiles creates the given files under a temp dir and returns a reader for it
func writeFiles(t *testing.T, files map[string]string) *mockFSReader {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return newMockFSReader(root)
}

func TestParsePackageJSON(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantScripts int
		wantDep     string
	}{
		{
			name:        "scripts and dependencies",
			content:     `{"scripts": {"dev": "vite", "build": "vite build"}, "dependencies": {"react": "18"}, "devDependencies": {"vite": "5"}}`,
			wantScripts: 2,
			wantDep:     "vite",
		},
		{
			name:        "malformed",
			content:     `{"scripts": `,
			wantScripts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := writeFiles(t, map[string]string{"package.json": tt.content})
			pkg := ParsePackageJSON(fs)

			if len(pkg.Scripts) != tt.wantScripts {
				t.Errorf("Expected %d scripts, got %d", tt.wantScripts, len(pkg.Scripts))
			}
			if tt.wantDep != "" && !pkg.HasDependency(tt.wantDep) {
				t.Errorf("Expected dependency %q", tt.wantDep)
			}
			if pkg.HasDependency("left-pad") {
				t.Error("Unexpected dependency left-pad")
			}
		})
	}

	if pkg := ParsePackageJSON(newMockFSReader(t.TempDir())); pkg.Scripts != nil {
		t.Errorf("Expected empty PackageJSON without a file, got %+v", pkg)
	}
}

func TestGetDevServerScript(t *testing.T) {
	tests := []struct {
		name    string
		scripts map[string]string
		want    string
	}{
		{"dev wins", map[string]string{"start": "node server.js", "dev": "next dev"}, "dev"},
		{"develop", map[string]string{"develop": "gatsby develop"}, "develop"},
		{"start only", map[string]string{"start": "node server.js"}, "start"},
		{"empty script ignored", map[string]string{"dev": "", "start": "node ."}, "start"},
		{"none", map[string]string{"build": "tsc"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetDevServerScript(PackageJSON{Scripts: tt.scripts}); got != tt.want {
				t.Errorf("GetDevServerScript() = %q, want %q", got, tt.want)
			}
		})
	}
}
