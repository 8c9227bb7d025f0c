package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateProjectPath(t *testing.T) {
	// Create a temporary directory for testing
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		setupFunc   func() string
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid directory",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "valid_dir")
				os.Mkdir(dir, 0755)
				return dir
			},
			expectError: false,
		},
		{
			name: "non-existent path",
			setupFunc: func() string {
				return filepath.Join(tmpDir, "nonexistent")
			},
			expectError: true,
			errorMsg:    "cannot access path",
		},
		{
			name: "file instead of directory",
			setupFunc: func() string {
				file := filepath.Join(tmpDir, "file.txt")
				os.WriteFile(file, []byte("content"), 0644)
				return file
			},
			expectError: true,
			errorMsg:    "is not a directory",
		},
		{
			name: "relative path to existing directory",
			setupFunc: func() string {
				// Create a subdirectory in tmpDir
				dir := filepath.Join(tmpDir, "relative_dir")
				os.Mkdir(dir, 0755)
				// Change to parent directory
				originalDir, _ := os.Getwd()
				os.Chdir(tmpDir)
				// Schedule cleanup to restore directory
				t.Cleanup(func() {
					os.Chdir(originalDir)
				})
				return "relative_dir"
			},
			expectError: false,
		},
		{
			name: "path with trailing slash",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "trailing_slash")
				os.Mkdir(dir, 0755)
				return dir + "/"
			},
			expectError: false,
		},
		{
			name: "nested directory",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "parent", "child", "nested")
				os.MkdirAll(dir, 0755)
				return dir
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupFunc()
			result, err := ValidateProjectPath(path)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain '%s', got: %v", tt.errorMsg, err)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}

			// Verify the result is an absolute path
			if !filepath.IsAbs(result) {
				t.Errorf("Expected absolute path, got: %s", result)
			}

			// Verify the path exists and is accessible
			info, err := os.Stat(result)
			if err != nil {
				t.Errorf("Result path is not accessible: %v", err)
			}
			if !info.IsDir() {
				t.Error("Result path is not a directory")
			}
		})
	}
}

func TestValidateProjectPathCleansPath(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a test directory
	testDir := filepath.Join(tmpDir, "test")
	os.Mkdir(testDir, 0755)

	// Test with messy path
	messyPath := filepath.Join(tmpDir, "test", "..", "test", ".", ".")
	result, err := ValidateProjectPath(messyPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Verify the path was cleaned
	expected := testDir
	if result != expected {
		t.Errorf("Expected cleaned path '%s', got '%s'", expected, result)
	}
}

func TestValidateProjectPathSymlink(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a real directory
	realDir := filepath.Join(tmpDir, "real")
	os.Mkdir(realDir, 0755)

	// Create a symlink to it
	symlinkPath := filepath.Join(tmpDir, "symlink")
	err := os.Symlink(realDir, symlinkPath)
	if err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	// Validate the symlink path
	result, err := ValidateProjectPath(symlinkPath)
	if err != nil {
		t.Errorf("Symlink should be valid: %v", err)
	}

	// Verify it's accessible
	info, err := os.Stat(result)
	if err != nil {
		t.Errorf("Symlink result is not accessible: %v", err)
	}
	if !info.IsDir() {
		t.Error("Symlink should resolve to a directory")
	}
}


func TestResolvePath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "srv", "app")
	abs := filepath.Join(string(filepath.Separator), "opt", "specs")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"dot relative", "./e2e", filepath.Join(root, "e2e")},
		{"bare relative", "spec/system", filepath.Join(root, "spec", "system")},
		{"absolute kept", abs, abs},
		{"empty is root", "", root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePath(root, tt.path); got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
