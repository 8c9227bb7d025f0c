// Package config holds the run configuration model handed to the browser
// test runner, the built-in defaults, and the two override layers: the
// repository file .playconf.ini and the per-user JSON store.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Config is the per-user store of project overrides, keyed by absolute project path
type Config struct {
	Projects map[string]Settings `json:"projects"`
}

func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(LocalConfigDir, LocalConfigFile)
	}
	return filepath.Join(homeDir, LocalConfigDir, LocalConfigFile)
}

func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{Projects: make(map[string]Settings)}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Projects == nil {
		config.Projects = make(map[string]Settings)
	}

	return &config, nil
}

func (c *Config) SaveConfig() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetProject returns the overrides stored for projectPath
func (c *Config) GetProject(projectPath string) (Settings, bool) {
	key, err := projectKey(projectPath)
	if err != nil {
		return Settings{}, false
	}
	s, exists := c.Projects[key]
	return s, exists
}

// SetProject stores overrides for projectPath. Empty overrides remove the entry.
func (c *Config) SetProject(projectPath string, s Settings) error {
	key, err := projectKey(projectPath)
	if err != nil {
		return err
	}
	if s.IsZero() {
		delete(c.Projects, key)
		return nil
	}
	c.Projects[key] = s
	return nil
}

// DeleteProject removes the overrides for projectPath and saves the config
func (c *Config) DeleteProject(projectPath string) error {
	key, err := projectKey(projectPath)
	if err != nil {
		return err
	}
	if _, exists := c.Projects[key]; !exists {
		return nil
	}

	delete(c.Projects, key)
	return c.SaveConfig()
}

// ProjectPaths returns the stored project paths in sorted order
func (c *Config) ProjectPaths() []string {
	paths := make([]string, 0, len(c.Projects))
	for p := range c.Projects {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func projectKey(projectPath string) (string, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path: %w", err)
	}
	return absPath, nil
}
