package helpers

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	portFlagRegex      = regexp.MustCompile(`(?:-p|--port)[\s=]+(\d+)`)
	bindRegex          = regexp.MustCompile(`(?:--bind|--listen|-b)\s+[^:\s]*:(\d+)`)
	envPortRegex       = regexp.MustCompile(`PORT=(\d+)`)
	viteConfigRegex    = regexp.MustCompile(`port\s*:\s*(\d+)`)
	phoenixConfigRegex = regexp.MustCompile(`port:\s*(\d+)`)
	pumaConfigRegex    = regexp.MustCompile(`port\s+(?:ENV\.fetch\(\s*["']PORT["']\s*\)\s*\{\s*)?(\d+)`)
	djangoSettingRegex = regexp.MustCompile(`PORT\s*=\s*['"]?(\d+)['"]?`)
)

// DetectPortFromPackageJSON attempts to detect the port from package.json scripts
func DetectPortFromPackageJSON(fs FSReader) int {
	pkg := ParsePackageJSON(fs)

	// Check common script names
	scriptNames := []string{"dev", "start", "serve", "develop"}
	for _, scriptName := range scriptNames {
		if script, exists := pkg.Scripts[scriptName]; exists {
			if port := extractPortFromCommand(script); port != 0 {
				return port
			}
		}
	}

	return 0
}

// DetectPortFromEnvFile attempts to detect PORT from .env files
func DetectPortFromEnvFile(fs FSReader) int {
	envFiles := []string{".env.e2e", ".env", ".env.local", ".env.development"}

	for _, envFile := range envFiles {
		if !fs.Has(envFile) {
			continue
		}

		for _, line := range strings.Split(fs.Read(envFile), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "#") {
				continue
			}

			line = strings.TrimPrefix(line, "export ")
			if portStr, ok := strings.CutPrefix(line, "PORT="); ok {
				if port := parsePort(strings.Trim(portStr, `"'`)); port != 0 {
					return port
				}
			}
		}
	}

	return 0
}

// DetectPortFromProcfile attempts to detect the web port from Procfile.dev
func DetectPortFromProcfile(fs FSReader) int {
	for _, line := range strings.Split(fs.Read("Procfile.dev"), "\n") {
		name, command, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) != "web" {
			continue
		}
		return extractPortFromCommand(command)
	}
	return 0
}

// DetectPort is a unified port detection function that tries multiple methods
func DetectPort(fs FSReader, framework string) int {
	if port := DetectPortFromEnvFile(fs); port != 0 {
		return port
	}

	if port := DetectPortFromProcfile(fs); port != 0 {
		return port
	}

	if port := DetectPortFromPackageJSON(fs); port != 0 {
		return port
	}

	// Framework-specific detection
	switch framework {
	case "Rails", "Sinatra":
		return firstMatch(fs, pumaConfigRegex, "config/puma.rb")
	case "Vite", "SvelteKit", "Vue.js", "Astro":
		return firstMatch(fs, viteConfigRegex, "vite.config.ts", "vite.config.js", "vite.config.mjs", "astro.config.mjs")
	case "Phoenix":
		return firstMatch(fs, phoenixConfigRegex, "config/dev.exs", "config/config.exs")
	case "Django":
		return firstMatch(fs, djangoSettingRegex, "settings.py", "config/settings.py", "core/settings.py")
	}

	return 0
}

func firstMatch(fs FSReader, re *regexp.Regexp, files ...string) int {
	for _, file := range files {
		if !fs.Has(file) {
			continue
		}
		if matches := re.FindStringSubmatch(fs.Read(file)); len(matches) > 1 {
			if port := parsePort(matches[1]); port != 0 {
				return port
			}
		}
	}
	return 0
}

// extractPortFromCommand extracts port from command line arguments
func extractPortFromCommand(command string) int {
	for _, re := range []*regexp.Regexp{portFlagRegex, bindRegex, envPortRegex} {
		if matches := re.FindStringSubmatch(command); len(matches) > 1 {
			if port := parsePort(matches[1]); port != 0 {
				return port
			}
		}
	}
	return 0
}

// parsePort returns the port if portStr is valid (1-65535), otherwise 0
func parsePort(portStr string) int {
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 0
	}
	return port
}
