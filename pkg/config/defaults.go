package config

import "time"

// Discovery
const (
	// DefaultTestDir is where spec files are discovered, relative to the project root
	DefaultTestDir = "./e2e"

	// DefaultSpecSuffix marks a file as a test spec
	DefaultSpecSuffix = ".spec.ts"
)

// Run behavior
const (
	// DefaultReporter is the result report format
	DefaultReporter = "html"

	// TraceOnFirstRetry captures a trace only when a failing test is retried the first time
	TraceOnFirstRetry = "on-first-retry"

	// DefaultCIRetries is the number of re-runs of a failing test in CI
	DefaultCIRetries = 2

	// DefaultLocalRetries is the number of re-runs of a failing test outside CI
	DefaultLocalRetries = 0

	// DefaultCIWorkers is the worker count in CI; outside CI the runner picks
	DefaultCIWorkers = 1
)

// Browser projects
const (
	// DefaultProjectName names the single default browser project
	DefaultProjectName = "chromium"

	// BrowserChromium, BrowserFirefox and BrowserWebKit are the engines a project may target
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Local server
const (
	// DefaultPort is the port the local application server listens on
	DefaultPort = 3000

	// DefaultHost is the host used to build the base and readiness URLs
	DefaultHost = "localhost"

	// DefaultServerCommand starts the local application server; %d is the port
	DefaultServerCommand = "bin/rails server -p %d"

	// DefaultServerTimeout bounds how long the server may take to become ready
	DefaultServerTimeout = 60 * time.Second

	// DefaultPollInterval is the delay between readiness probes
	DefaultPollInterval = 250 * time.Millisecond

	// DefaultServerEnvFile is read into the server environment when present
	DefaultServerEnvFile = ".env.e2e"
)

// Environment
const (
	// CIEnvVar is the variable whose presence marks a CI run
	CIEnvVar = "CI"
)

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644
)

// Path Constants - Local
const (
	// LocalConfigDir is the base directory for per-user playconf configuration
	LocalConfigDir = ".playconf"

	// LocalConfigFile is the filename for the per-user config
	LocalConfigFile = "config.json"

	// ProjectConfigFile is the repository overrides file in the project root
	ProjectConfigFile = ".playconf.ini"
)
