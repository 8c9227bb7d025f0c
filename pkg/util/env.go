package util

import (
	"fmt"
	"os"
	"strings"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// IsTruthy reports whether the variable key is set to a non-empty value.
// Any non-empty value counts, including "0" and "false".
func IsTruthy(lookup LookupFunc, key string) bool {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, ok := lookup(key)
	return ok && value != ""
}

// LoadEnvFile reads and parses a .env file into a map of environment variables
func LoadEnvFile(filePath string) (map[string]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseEnv(string(data))
}

// ParseEnv parses KEY=VALUE lines. Blank lines and lines starting with '#'
// are skipped, an optional "export " prefix is dropped, and matching single
// or double quotes around the value are removed.
func ParseEnv(content string) (map[string]string, error) {
	envVars := make(map[string]string)

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := SplitEnvVar(line)
		if !ok {
			return nil, fmt.Errorf("invalid env var at line %d: %s", i+1, line)
		}

		envVars[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	return envVars, nil
}

// SplitEnvVar splits an environment variable string on the first '=' character
func SplitEnvVar(s string) (key, value string, ok bool) {
	return strings.Cut(s, "=")
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
