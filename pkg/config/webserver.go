package config

import (
	"fmt"
	"net/url"
	"strings"

	"playconf/pkg/util"
)

// WebServer tells the runner how to start and await the local application server
type WebServer struct {
	Command             string            `json:"command"`
	URL                 string            `json:"url"`
	ReuseExistingServer bool              `json:"reuseExistingServer"`
	Timeout             int               `json:"timeout,omitempty"` // milliseconds
	Env                 map[string]string `json:"env,omitempty"`
}

// ServerFragment builds the optional server block. It returns nil when the
// project has no specs to run, so Merge leaves the block out entirely.
// The timeout is only emitted when server_timeout was set; otherwise the
// runner applies its own 60s default.
func ServerFragment(hasTests bool, s Settings, env Environment) *WebServer {
	if !hasTests {
		return nil
	}
	timeout := s.ServerTimeout
	s = s.withDefaults()

	return &WebServer{
		Command:             s.ServerCommand,
		URL:                 s.ServerURL,
		ReuseExistingServer: !env.CI,
		Timeout:             int(timeout.Milliseconds()),
	}
}

// ProcessEnv loads variables from envFile (when non-empty) and then applies
// KEY=VALUE pairs from envVars, which win over the file.
func (w *WebServer) ProcessEnv(envFile string, envVars []string) error {
	if w.Env == nil {
		w.Env = make(map[string]string)
	}

	if envFile != "" {
		fromFile, err := util.LoadEnvFile(envFile)
		if err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		for k, v := range fromFile {
			w.Env[k] = v
		}
	}

	for _, envVar := range envVars {
		key, value, ok := util.SplitEnvVar(envVar)
		if !ok || key == "" {
			return fmt.Errorf("invalid env var format '%s', expected KEY=VALUE", envVar)
		}
		w.Env[key] = value
	}

	if len(w.Env) == 0 {
		w.Env = nil
	}
	return nil
}

// Validate checks that the server block can be acted on
func (w *WebServer) Validate() error {
	if strings.TrimSpace(w.Command) == "" {
		return fmt.Errorf("%w: webServer.command is empty", ErrInvalid)
	}
	u, err := url.Parse(w.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: webServer.url %q is not an absolute http(s) URL", ErrInvalid, w.URL)
	}
	if w.Timeout < 0 {
		return fmt.Errorf("%w: webServer.timeout must not be negative", ErrInvalid)
	}
	return nil
}
