package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"playconf/pkg/config"
	"playconf/pkg/resolver"
)

// projectPathArg returns the PROJECT_PATH argument, defaulting to the working directory
func projectPathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// flagSettings collects the override flags into the highest precedence layer
func flagSettings() (config.Settings, error) {
	s := config.Settings{
		TestDir:       flagTestDir,
		ServerCommand: flagCommand,
	}

	if flagPort != 0 {
		if flagPort < 1 || flagPort > 65535 {
			return config.Settings{}, fmt.Errorf("--port must be between 1 and 65535, got %d", flagPort)
		}
		s.Port = flagPort
	}

	if flagProjects != "" {
		projects, err := config.ParseProjects(flagProjects)
		if err != nil {
			return config.Settings{}, fmt.Errorf("--projects %q: %w", flagProjects, err)
		}
		s.Projects = projects
	}

	return s, nil
}

// resolveOrExit resolves the project named by args and exits with an error message if it fails
func resolveOrExit(args []string) *resolver.Result {
	flags, err := flagSettings()
	if err != nil {
		exitWithError(err)
	}

	res, err := resolver.Resolve(resolver.Options{
		Root:           projectPathArg(args),
		Flags:          flags,
		ForceCI:        forceCI,
		EnvVars:        flagServerEnvs,
		SkipUserConfig: noUserConfig,
	})
	if err != nil {
		exitWithError(err)
	}
	return res
}

// loadConfigOrExit loads the per-user configuration and exits with an error message if it fails
func loadConfigOrExit() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		exitWithError(fmt.Errorf("loading configuration: %w", err))
	}
	return cfg
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}

func emitJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
