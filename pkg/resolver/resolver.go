// Package resolver turns a project directory into its run configuration by
// layering the built-in defaults, the repository overrides file, the
// per-user overrides and command line flags, then attaching the local server
// block when the test directory holds specs.
package resolver

import (
	"fmt"

	"go.uber.org/zap"

	"playconf/pkg/applog"
	"playconf/pkg/config"
	"playconf/pkg/detector"
	"playconf/pkg/discovery"
	"playconf/pkg/util"
)

// Where the server command came from
const (
	SourceDefault    = "default"
	SourceConfigured = "configured"
	SourceDetected   = "detected"
)

// Options controls a single resolution
type Options struct {
	// Root is the project directory
	Root string
	// Flags are the highest precedence overrides
	Flags config.Settings
	// ForceCI treats the run as CI regardless of the environment
	ForceCI bool
	// Lookup reads environment variables, os.LookupEnv when nil
	Lookup util.LookupFunc
	// EnvVars are KEY=VALUE pairs added to the server environment
	EnvVars []string
	// SkipUserConfig ignores ~/.playconf/config.json
	SkipUserConfig bool
}

// Result is a resolved configuration plus how it was reached
type Result struct {
	Root          string
	Settings      config.Settings
	Environment   config.Environment
	TestDir       string
	HasTests      bool
	CommandSource string
	Detection     *detector.Detection
	EnvFile       string
	Config        *config.RunConfig
}

// Resolve builds the run configuration for opts.Root
func Resolve(opts Options) (*Result, error) {
	root, err := util.ValidateProjectPath(opts.Root)
	if err != nil {
		return nil, err
	}

	layered, err := loadSettings(root, opts)
	if err != nil {
		return nil, err
	}

	env := config.Environment{
		CI: opts.ForceCI || util.IsTruthy(opts.Lookup, config.CIEnvVar),
	}

	effective := layered.Effective()
	testDir := util.ResolvePath(root, effective.TestDir)
	hasTests := discovery.HasTestFiles(testDir, effective.SpecSuffix)

	applog.Debug("scanned test directory",
		zap.String("dir", testDir),
		zap.String("suffix", effective.SpecSuffix),
		zap.Bool("hasTests", hasTests),
		zap.Bool("ci", env.CI),
	)

	res := &Result{
		Root:          root,
		Environment:   env,
		TestDir:       testDir,
		HasTests:      hasTests,
		CommandSource: SourceDefault,
	}

	switch {
	case layered.ServerCommand != "":
		res.CommandSource = SourceConfigured
	case hasTests:
		detection := detector.DetectServer(root, effective.Port)
		res.Detection = &detection
		layered.ServerCommand = detection.Command
		if detection.Confidence > 0 {
			res.CommandSource = SourceDetected
		}
		applog.Debug("inferred server command",
			zap.String("framework", detection.Framework),
			zap.Float64("confidence", detection.Confidence),
			zap.String("command", detection.Command),
		)
	}

	base := config.Base(layered, env)
	server := config.ServerFragment(hasTests, layered, env)

	if server != nil {
		res.EnvFile = envFilePath(root, layered.EnvFile)
		if err := server.ProcessEnv(res.EnvFile, opts.EnvVars); err != nil {
			return nil, err
		}
	}

	res.Config = config.Merge(base, server)
	if err := res.Config.Validate(); err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	res.Settings = layered.Effective()
	return res, nil
}

// loadSettings overlays the repository file, the per-user store and flags
func loadSettings(root string, opts Options) (config.Settings, error) {
	fromFile, err := config.LoadProjectFile(root)
	if err != nil {
		return config.Settings{}, err
	}

	layered := fromFile
	if !opts.SkipUserConfig {
		cfg, err := config.LoadConfig()
		if err != nil {
			return config.Settings{}, fmt.Errorf("failed to load user config: %w", err)
		}
		if user, ok := cfg.GetProject(root); ok {
			applog.Debug("applying user overrides", zap.String("project", root))
			layered = layered.Overlay(user)
		}
	}

	return layered.Overlay(opts.Flags), nil
}

// envFilePath returns the configured env file, or the default one when it
// exists. An empty result means no file is read.
func envFilePath(root, configured string) string {
	if configured != "" {
		return util.ResolvePath(root, configured)
	}
	path := util.ResolvePath(root, config.DefaultServerEnvFile)
	if util.FileExists(path) {
		return path
	}
	return ""
}
