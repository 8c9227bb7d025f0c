package cmd

import (
	"strings"
	"testing"

	"playconf/pkg/config"
)

// resetFlags restores the package level flag variables after a test
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagPort = 0
		flagTestDir = ""
		flagCommand = ""
		flagProjects = ""
	})
}

func TestProjectPathArg(t *testing.T) {
	if got := projectPathArg(nil); got != "." {
		t.Errorf("Expected '.', got %q", got)
	}
	if got := projectPathArg([]string{"/srv/app"}); got != "/srv/app" {
		t.Errorf("Expected '/srv/app', got %q", got)
	}
}

func TestFlagSettings_Empty(t *testing.T) {
	resetFlags(t)

	s, err := flagSettings()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.IsZero() {
		t.Errorf("Expected no overrides without flags, got %+v", s)
	}
}

func TestFlagSettings_Values(t *testing.T) {
	resetFlags(t)
	flagPort = 4000
	flagTestDir = "./spec/e2e"
	flagCommand = "bin/dev"
	flagProjects = "chromium,firefox"

	s, err := flagSettings()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Port != 4000 || s.TestDir != "./spec/e2e" || s.ServerCommand != "bin/dev" {
		t.Errorf("Unexpected settings %+v", s)
	}
	if len(s.Projects) != 2 || s.Projects[1].Use.BrowserName != config.BrowserFirefox {
		t.Errorf("Expected chromium and firefox projects, got %+v", s.Projects)
	}
}

func TestFlagSettings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		apply func()
	}{
		{"port too large", func() { flagPort = 70000 }},
		{"negative port", func() { flagPort = -1 }},
		{"unknown browser", func() { flagProjects = "chromium,opera" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			tt.apply()
			if _, err := flagSettings(); err == nil {
				t.Error("Expected error but got none")
			}
		})
	}
}

func TestFlagSettings_BlankProjectsNamesValue(t *testing.T) {
	resetFlags(t)
	flagProjects = " , "

	_, err := flagSettings()
	if err == nil {
		t.Fatal("Expected error for a projects list without browsers")
	}
	if !strings.Contains(err.Error(), `--projects " , "`) {
		t.Errorf("Expected the error to quote the flag value, got %v", err)
	}
}
