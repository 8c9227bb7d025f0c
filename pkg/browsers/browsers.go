// Package browsers reports whether the browser engine behind each test
// project is available on this machine.
package browsers

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	"playconf/pkg/config"
)

// State describes how an engine was found
type State string

const (
	// StateFound means a local executable was located
	StateFound State = "found"
	// StateMissing means no local executable was located
	StateMissing State = "missing"
	// StateManaged means the test runner downloads and manages the engine itself
	StateManaged State = "managed"
)

// Status is the availability of one project's browser
type Status struct {
	Project string `json:"project"`
	Browser string `json:"browser"`
	State   State  `json:"state"`
	Path    string `json:"path,omitempty"`
}

// OK reports whether the project can run without further setup
func (s Status) OK() bool {
	return s.State != StateMissing
}

// LookPathFunc locates a browser executable
type LookPathFunc func() (string, bool)

// Checker resolves browser engines for projects
type Checker struct {
	lookChromium LookPathFunc
}

// NewChecker creates a Checker that searches the usual Chrome and Chromium
// install locations
func NewChecker() *Checker {
	return &Checker{lookChromium: launcher.LookPath}
}

// Check reports the browser state of every project, in order
func (c *Checker) Check(projects []config.Project) []Status {
	statuses := make([]Status, 0, len(projects))
	for _, p := range projects {
		status := Status{Project: p.Name, Browser: p.Use.BrowserName, State: StateManaged}
		if p.Use.BrowserName == config.BrowserChromium {
			status.State = StateMissing
			if path, ok := c.lookChromium(); ok {
				status.State = StateFound
				status.Path = path
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// Check reports the browser state of every project using NewChecker
func Check(projects []config.Project) []Status {
	return NewChecker().Check(projects)
}

// Smoke launches the Chromium binary at bin headless, connects to it and
// returns its product version
func Smoke(bin string, timeout time.Duration) (string, error) {
	if bin == "" {
		return "", errors.New("no chromium binary to launch")
	}

	l := launcher.New().
		Bin(bin).
		Headless(true).
		Set("no-sandbox").
		Set("disable-gpu")
	defer l.Cleanup()

	url, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("failed to launch %s: %w", bin, err)
	}

	browser := rod.New().ControlURL(url).Timeout(timeout)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return "", fmt.Errorf("failed to connect to %s: %w", bin, err)
	}
	defer browser.Close()

	version, err := browser.Version()
	if err != nil {
		return "", fmt.Errorf("failed to read browser version: %w", err)
	}
	return version.Product, nil
}
