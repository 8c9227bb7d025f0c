package packagemanagers

import "fmt"

// FSReader provides the filesystem checks package manager detection needs
type FSReader interface {
	Has(path string) bool
}

// DetectJS detects the JavaScript package manager used in a project
func DetectJS(fs FSReader) string {
	switch {
	case fs.Has("bun.lockb") || fs.Has("bun.lock"):
		return "bun"
	case fs.Has(".yarnrc.yml"):
		return "yarn-berry"
	case fs.Has("pnpm-lock.yaml"):
		return "pnpm"
	case fs.Has("yarn.lock"):
		return "yarn"
	default:
		return "npm"
	}
}

// JSScriptCommand runs a package.json script with a port flag forwarded to it
func JSScriptCommand(pm, script string, port int) string {
	switch pm {
	case "bun":
		return fmt.Sprintf("bun run %s --port %d", script, port)
	case "pnpm":
		return fmt.Sprintf("pnpm %s --port %d", script, port)
	case "yarn", "yarn-berry":
		return fmt.Sprintf("yarn %s --port %d", script, port)
	default:
		return fmt.Sprintf("npm run %s -- --port %d", script, port)
	}
}

// JSStartCommand returns the start command for the given package manager,
// passing the port through the PORT variable most node servers read
func JSStartCommand(pm string, port int) string {
	switch pm {
	case "bun":
		return fmt.Sprintf("PORT=%d bun run start", port)
	case "pnpm":
		return fmt.Sprintf("PORT=%d pnpm start", port)
	case "yarn", "yarn-berry":
		return fmt.Sprintf("PORT=%d yarn start", port)
	default:
		return fmt.Sprintf("PORT=%d npm start", port)
	}
}
