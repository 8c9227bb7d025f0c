package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure of a RunConfig
var ErrInvalid = errors.New("invalid run configuration")

// RunConfig is the resolved configuration handed to the browser test runner.
// The JSON layout follows the runner's own config keys.
type RunConfig struct {
	TestDir       string     `json:"testDir"`
	FullyParallel bool       `json:"fullyParallel"`
	ForbidOnly    bool       `json:"forbidOnly"`
	Retries       int        `json:"retries"`
	Workers       *int       `json:"workers,omitempty"` // nil leaves the choice to the runner
	Reporter      string     `json:"reporter"`
	Use           UseOptions `json:"use"`
	Projects      []Project  `json:"projects"`
	WebServer     *WebServer `json:"webServer,omitempty"`
}

// UseOptions are the shared browser options of every project
type UseOptions struct {
	BaseURL string `json:"baseURL"`
	Trace   string `json:"trace"`
}

// Project is a named execution profile bound to one browser engine
type Project struct {
	Name string     `json:"name"`
	Use  ProjectUse `json:"use"`
}

// ProjectUse holds the per-project browser options
type ProjectUse struct {
	BrowserName string `json:"browserName"`
}

// Environment captures the parts of the process environment that change the config
type Environment struct {
	CI bool
}

// Base builds the static part of the run configuration: everything except
// the optional local server block.
func Base(s Settings, env Environment) *RunConfig {
	s = s.withDefaults()

	cfg := &RunConfig{
		TestDir:       s.TestDir,
		FullyParallel: true,
		ForbidOnly:    env.CI,
		Retries:       DefaultLocalRetries,
		Reporter:      s.Reporter,
		Use: UseOptions{
			BaseURL: s.BaseURL,
			Trace:   s.Trace,
		},
		Projects: append([]Project(nil), s.Projects...),
	}

	if env.CI {
		cfg.Retries = *s.CIRetries
		workers := *s.CIWorkers
		cfg.Workers = &workers
	}

	return cfg
}

// Merge returns a copy of base with the server fragment attached. A nil
// fragment leaves the copy without a server block.
func Merge(base *RunConfig, server *WebServer) *RunConfig {
	merged := *base
	merged.Projects = append([]Project(nil), base.Projects...)
	if base.Workers != nil {
		workers := *base.Workers
		merged.Workers = &workers
	}

	merged.WebServer = nil
	if server != nil {
		ws := *server
		if server.Env != nil {
			ws.Env = make(map[string]string, len(server.Env))
			for k, v := range server.Env {
				ws.Env[k] = v
			}
		}
		merged.WebServer = &ws
	}
	return &merged
}

// Validate checks the invariants the runner relies on
func (c *RunConfig) Validate() error {
	if strings.TrimSpace(c.TestDir) == "" {
		return fmt.Errorf("%w: testDir is empty", ErrInvalid)
	}
	if c.Retries < 0 {
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalid, c.Retries)
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, *c.Workers)
	}
	if c.Reporter == "" {
		return fmt.Errorf("%w: reporter is empty", ErrInvalid)
	}
	if len(c.Projects) == 0 {
		return fmt.Errorf("%w: at least one browser project is required", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if p.Name == "" {
			return fmt.Errorf("%w: project without a name", ErrInvalid)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate project %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true
		if !IsKnownBrowser(p.Use.BrowserName) {
			return fmt.Errorf("%w: project %q uses unknown browser %q", ErrInvalid, p.Name, p.Use.BrowserName)
		}
	}

	if c.WebServer != nil {
		if err := c.WebServer.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsKnownBrowser reports whether name is a supported browser engine
func IsKnownBrowser(name string) bool {
	switch name {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
		return true
	}
	return false
}
