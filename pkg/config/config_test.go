package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestConfigDir points HOME at a temporary directory for the test
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	testHome := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", testHome)
	return testHome
}

func TestLoadConfig(t *testing.T) {
	setupTestConfigDir(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error loading non-existent config, got: %v", err)
	}

	if cfg.Projects == nil {
		t.Error("Expected Projects map to be initialized")
	}

	if len(cfg.Projects) != 0 {
		t.Error("Expected empty Projects map")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	home := setupTestConfigDir(t)
	project := t.TempDir()

	retries := 1
	cfg := &Config{Projects: make(map[string]Settings)}
	if err := cfg.SetProject(project, Settings{
		Port:      4000,
		CIRetries: &retries,
		Projects:  []Project{{Name: "firefox", Use: ProjectUse{BrowserName: BrowserFirefox}}},
	}); err != nil {
		t.Fatalf("Failed to set project: %v", err)
	}

	if err := cfg.SaveConfig(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	configPath := filepath.Join(home, LocalConfigDir, LocalConfigFile)
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Config file was not created at %s: %v", configPath, err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	s, exists := loaded.GetProject(project)
	if !exists {
		t.Fatal("Expected project overrides to exist after reload")
	}
	if s.Port != 4000 {
		t.Errorf("Expected port 4000, got %d", s.Port)
	}
	if s.CIRetries == nil || *s.CIRetries != 1 {
		t.Errorf("Expected ci_retries 1, got %v", s.CIRetries)
	}
	if len(s.Projects) != 1 || s.Projects[0].Use.BrowserName != BrowserFirefox {
		t.Errorf("Expected a single firefox project, got %+v", s.Projects)
	}
}

func TestGetProjectNormalizesPath(t *testing.T) {
	setupTestConfigDir(t)
	project := t.TempDir()

	cfg, _ := LoadConfig()
	if err := cfg.SetProject(project, Settings{Reporter: "list"}); err != nil {
		t.Fatalf("Failed to set project: %v", err)
	}

	messy := filepath.Join(project, ".", "sub", "..")
	s, exists := cfg.GetProject(messy)
	if !exists {
		t.Fatalf("Expected lookup through %q to find the project", messy)
	}
	if s.Reporter != "list" {
		t.Errorf("Expected reporter list, got %q", s.Reporter)
	}
}

func TestSetProjectWithEmptySettingsRemovesEntry(t *testing.T) {
	setupTestConfigDir(t)
	project := t.TempDir()

	cfg, _ := LoadConfig()
	_ = cfg.SetProject(project, Settings{Port: 5000})
	if _, exists := cfg.GetProject(project); !exists {
		t.Fatal("Expected project to be stored")
	}

	_ = cfg.SetProject(project, Settings{})
	if _, exists := cfg.GetProject(project); exists {
		t.Error("Expected empty overrides to remove the project")
	}
}

func TestDeleteProject(t *testing.T) {
	setupTestConfigDir(t)
	first := t.TempDir()
	second := t.TempDir()

	cfg, _ := LoadConfig()
	_ = cfg.SetProject(first, Settings{Port: 4001})
	_ = cfg.SetProject(second, Settings{Port: 4002})
	if err := cfg.SaveConfig(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if err := cfg.DeleteProject(first); err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}

	loaded, _ := LoadConfig()
	if _, exists := loaded.GetProject(first); exists {
		t.Error("Expected deleted project to be gone after reload")
	}
	if _, exists := loaded.GetProject(second); !exists {
		t.Error("Expected other project to survive")
	}

	if err := cfg.DeleteProject(filepath.Join(first, "never-stored")); err != nil {
		t.Errorf("Deleting an unknown project should be a no-op, got %v", err)
	}
}

func TestLoadConfigRejectsCorruptFile(t *testing.T) {
	home := setupTestConfigDir(t)

	dir := filepath.Join(home, LocalConfigDir)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LocalConfigFile), []byte("{not json"), PermConfigFile); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error for a corrupt config file")
	}
}

func TestProjectPathsSorted(t *testing.T) {
	cfg := &Config{Projects: map[string]Settings{
		"/srv/b": {Port: 1},
		"/srv/a": {Port: 2},
		"/srv/c": {Port: 3},
	}}

	got := cfg.ProjectPaths()
	want := []string{"/srv/a", "/srv/b", "/srv/c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}
