package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	projectSectionPrefix = "project."
	projectBrowserKey    = "browser"
)

// iniKeys maps "<section>.<key>" in .playconf.ini to a settings key
var iniKeys = map[string]string{
	"run.test_dir":    "test_dir",
	"run.spec_suffix": "spec_suffix",
	"run.reporter":    "reporter",
	"run.trace":       "trace",
	"run.base_url":    "base_url",
	"run.ci_retries":  "ci_retries",
	"run.ci_workers":  "ci_workers",
	"server.command":  "server_command",
	"server.url":      "server_url",
	"server.port":     "port",
	"server.timeout":  "server_timeout",
	"server.env_file": "env_file",
}

// LoadProjectFile reads the repository overrides from root/.playconf.ini.
// A missing file yields empty settings.
//
//	[run]
//	test_dir = ./test/e2e
//	ci_retries = 1
//
//	[server]
//	command = bin/dev
//	port = 4000
//
//	[project.mobile-safari]
//	browser = webkit
func LoadProjectFile(root string) (Settings, error) {
	path := filepath.Join(root, ProjectConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load %s: %w", ProjectConfigFile, err)
	}

	var s Settings
	for _, section := range file.Sections() {
		name := section.Name()

		if strings.HasPrefix(name, projectSectionPrefix) {
			project, err := parseProjectSection(section)
			if err != nil {
				return Settings{}, fmt.Errorf("%s: %w", ProjectConfigFile, err)
			}
			s.Projects = append(s.Projects, project)
			continue
		}

		for _, key := range section.Keys() {
			settingKey, ok := iniKeys[name+"."+key.Name()]
			if !ok {
				return Settings{}, fmt.Errorf("%s: unknown key %q in section [%s]", ProjectConfigFile, key.Name(), name)
			}
			if err := s.Set(settingKey, key.String()); err != nil {
				return Settings{}, fmt.Errorf("%s: [%s] %w", ProjectConfigFile, name, err)
			}
		}
	}

	return s, nil
}

func parseProjectSection(section *ini.Section) (Project, error) {
	name := strings.TrimPrefix(section.Name(), projectSectionPrefix)
	if name == "" {
		return Project{}, fmt.Errorf("project section needs a name, e.g. [project.chromium]")
	}

	for _, key := range section.Keys() {
		if key.Name() != projectBrowserKey {
			return Project{}, fmt.Errorf("unknown key %q in section [%s]", key.Name(), section.Name())
		}
	}

	browser := strings.ToLower(section.Key(projectBrowserKey).MustString(name))
	if !IsKnownBrowser(browser) {
		return Project{}, fmt.Errorf("[%s] unknown browser %q", section.Name(), browser)
	}

	return Project{Name: name, Use: ProjectUse{BrowserName: browser}}, nil
}
