package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Settings are user-controlled overrides of the built-in defaults. Zero
// values mean "not set"; pointer fields distinguish an explicit zero.
type Settings struct {
	TestDir       string        `json:"test_dir,omitempty"`
	SpecSuffix    string        `json:"spec_suffix,omitempty"`
	Reporter      string        `json:"reporter,omitempty"`
	Trace         string        `json:"trace,omitempty"`
	BaseURL       string        `json:"base_url,omitempty"`
	CIRetries     *int          `json:"ci_retries,omitempty"`
	CIWorkers     *int          `json:"ci_workers,omitempty"`
	ServerCommand string        `json:"server_command,omitempty"`
	ServerURL     string        `json:"server_url,omitempty"`
	Port          int           `json:"port,omitempty"`
	ServerTimeout time.Duration `json:"server_timeout,omitempty"`
	EnvFile       string        `json:"env_file,omitempty"`
	Projects      []Project     `json:"projects,omitempty"`
}

// Overlay returns s with every field set in over replacing its counterpart
func (s Settings) Overlay(over Settings) Settings {
	out := s
	if over.TestDir != "" {
		out.TestDir = over.TestDir
	}
	if over.SpecSuffix != "" {
		out.SpecSuffix = over.SpecSuffix
	}
	if over.Reporter != "" {
		out.Reporter = over.Reporter
	}
	if over.Trace != "" {
		out.Trace = over.Trace
	}
	if over.BaseURL != "" {
		out.BaseURL = over.BaseURL
	}
	if over.CIRetries != nil {
		v := *over.CIRetries
		out.CIRetries = &v
	}
	if over.CIWorkers != nil {
		v := *over.CIWorkers
		out.CIWorkers = &v
	}
	if over.ServerCommand != "" {
		out.ServerCommand = over.ServerCommand
	}
	if over.ServerURL != "" {
		out.ServerURL = over.ServerURL
	}
	if over.Port != 0 {
		out.Port = over.Port
	}
	if over.ServerTimeout != 0 {
		out.ServerTimeout = over.ServerTimeout
	}
	if over.EnvFile != "" {
		out.EnvFile = over.EnvFile
	}
	if len(over.Projects) > 0 {
		out.Projects = append([]Project(nil), over.Projects...)
	}
	return out
}

// withDefaults fills every unset field from the built-in defaults
func (s Settings) withDefaults() Settings {
	if s.TestDir == "" {
		s.TestDir = DefaultTestDir
	}
	if s.SpecSuffix == "" {
		s.SpecSuffix = DefaultSpecSuffix
	}
	if s.Reporter == "" {
		s.Reporter = DefaultReporter
	}
	if s.Trace == "" {
		s.Trace = TraceOnFirstRetry
	}
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	if s.BaseURL == "" {
		s.BaseURL = LocalURL(s.Port)
	}
	if s.ServerURL == "" {
		s.ServerURL = LocalURL(s.Port)
	}
	if s.ServerCommand == "" {
		s.ServerCommand = fmt.Sprintf(DefaultServerCommand, s.Port)
	}
	if s.ServerTimeout == 0 {
		s.ServerTimeout = DefaultServerTimeout
	}
	if s.CIRetries == nil {
		v := DefaultCIRetries
		s.CIRetries = &v
	}
	if s.CIWorkers == nil {
		v := DefaultCIWorkers
		s.CIWorkers = &v
	}
	if len(s.Projects) == 0 {
		s.Projects = []Project{{Name: DefaultProjectName, Use: ProjectUse{BrowserName: BrowserChromium}}}
	}
	return s
}

// Effective returns the settings with defaults applied
func (s Settings) Effective() Settings {
	return s.withDefaults()
}

// LocalURL is the origin of a server listening on the default host
func LocalURL(port int) string {
	return fmt.Sprintf("http://%s:%d", DefaultHost, port)
}

// settingKeys maps each settable key to its setter, clearer and reader
var settingKeys = map[string]struct {
	set   func(*Settings, string) error
	unset func(*Settings)
	get   func(Settings) string
}{
	"test_dir": {
		set:   func(s *Settings, v string) error { s.TestDir = v; return nil },
		unset: func(s *Settings) { s.TestDir = "" },
		get:   func(s Settings) string { return s.TestDir },
	},
	"spec_suffix": {
		set: func(s *Settings, v string) error {
			if !strings.HasPrefix(v, ".") {
				return fmt.Errorf("spec_suffix must start with '.', got %q", v)
			}
			s.SpecSuffix = v
			return nil
		},
		unset: func(s *Settings) { s.SpecSuffix = "" },
		get:   func(s Settings) string { return s.SpecSuffix },
	},
	"reporter": {
		set:   func(s *Settings, v string) error { s.Reporter = v; return nil },
		unset: func(s *Settings) { s.Reporter = "" },
		get:   func(s Settings) string { return s.Reporter },
	},
	"trace": {
		set:   func(s *Settings, v string) error { s.Trace = v; return nil },
		unset: func(s *Settings) { s.Trace = "" },
		get:   func(s Settings) string { return s.Trace },
	},
	"base_url": {
		set:   func(s *Settings, v string) error { s.BaseURL = v; return nil },
		unset: func(s *Settings) { s.BaseURL = "" },
		get:   func(s Settings) string { return s.BaseURL },
	},
	"ci_retries": {
		set: func(s *Settings, v string) error {
			n, err := parseCount(v, 0)
			if err != nil {
				return fmt.Errorf("ci_retries: %w", err)
			}
			s.CIRetries = &n
			return nil
		},
		unset: func(s *Settings) { s.CIRetries = nil },
		get:   func(s Settings) string { return formatCount(s.CIRetries) },
	},
	"ci_workers": {
		set: func(s *Settings, v string) error {
			n, err := parseCount(v, 1)
			if err != nil {
				return fmt.Errorf("ci_workers: %w", err)
			}
			s.CIWorkers = &n
			return nil
		},
		unset: func(s *Settings) { s.CIWorkers = nil },
		get:   func(s Settings) string { return formatCount(s.CIWorkers) },
	},
	"server_command": {
		set:   func(s *Settings, v string) error { s.ServerCommand = v; return nil },
		unset: func(s *Settings) { s.ServerCommand = "" },
		get:   func(s Settings) string { return s.ServerCommand },
	},
	"server_url": {
		set:   func(s *Settings, v string) error { s.ServerURL = v; return nil },
		unset: func(s *Settings) { s.ServerURL = "" },
		get:   func(s Settings) string { return s.ServerURL },
	},
	"port": {
		set: func(s *Settings, v string) error {
			port, err := ParsePort(v)
			if err != nil {
				return err
			}
			s.Port = port
			return nil
		},
		unset: func(s *Settings) { s.Port = 0 },
		get: func(s Settings) string {
			if s.Port == 0 {
				return ""
			}
			return strconv.Itoa(s.Port)
		},
	},
	"server_timeout": {
		set: func(s *Settings, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				return fmt.Errorf("server_timeout must be a positive duration such as 90s, got %q", v)
			}
			s.ServerTimeout = d
			return nil
		},
		unset: func(s *Settings) { s.ServerTimeout = 0 },
		get: func(s Settings) string {
			if s.ServerTimeout == 0 {
				return ""
			}
			return s.ServerTimeout.String()
		},
	},
	"projects": {
		set: func(s *Settings, v string) error {
			projects, err := ParseProjects(v)
			if err != nil {
				return err
			}
			s.Projects = projects
			return nil
		},
		unset: func(s *Settings) { s.Projects = nil },
		get: func(s Settings) string {
			names := make([]string, 0, len(s.Projects))
			for _, p := range s.Projects {
				names = append(names, p.Use.BrowserName)
			}
			return strings.Join(names, ",")
		},
	},
	"env_file": {
		set:   func(s *Settings, v string) error { s.EnvFile = v; return nil },
		unset: func(s *Settings) { s.EnvFile = "" },
		get:   func(s Settings) string { return s.EnvFile },
	},
}

// SettingKeys lists the keys accepted by Set and Unset
func SettingKeys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns value to the setting named key
func (s *Settings) Set(key, value string) error {
	entry, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(SettingKeys(), ", "))
	}
	return entry.set(s, strings.TrimSpace(value))
}

// Unset clears the setting named key
func (s *Settings) Unset(key string) error {
	entry, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(SettingKeys(), ", "))
	}
	entry.unset(s)
	return nil
}

// Values returns every set override keyed by its setting name
func (s Settings) Values() map[string]string {
	values := make(map[string]string)
	for key, entry := range settingKeys {
		if v := entry.get(s); v != "" {
			values[key] = v
		}
	}
	return values
}

// IsZero reports whether no override is set
func (s Settings) IsZero() bool {
	return s.TestDir == "" && s.SpecSuffix == "" && s.Reporter == "" && s.Trace == "" &&
		s.BaseURL == "" && s.CIRetries == nil && s.CIWorkers == nil && s.ServerCommand == "" &&
		s.ServerURL == "" && s.Port == 0 && s.ServerTimeout == 0 && s.EnvFile == "" && len(s.Projects) == 0
}

// ParsePort parses a TCP port number
func ParsePort(v string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("port must be between 1 and 65535, got %q", v)
	}
	return port, nil
}

func formatCount(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func parseCount(v string, floor int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("expected a whole number, got %q", v)
	}
	if n < floor {
		return 0, fmt.Errorf("must be at least %d, got %d", floor, n)
	}
	return n, nil
}

// ParseProjects turns a comma separated browser list such as
// "chromium,firefox" into one project per browser, named after it.
func ParseProjects(v string) ([]Project, error) {
	var projects []Project
	seen := map[string]bool{}
	for _, name := range strings.Split(v, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		if !IsKnownBrowser(name) {
			return nil, fmt.Errorf("unknown browser %q (want %s, %s or %s)", name, BrowserChromium, BrowserFirefox, BrowserWebKit)
		}
		seen[name] = true
		projects = append(projects, Project{Name: name, Use: ProjectUse{BrowserName: name}})
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("projects must name at least one browser")
	}
	return projects, nil
}
