package packagemanagers

// DetectPython detects the Python package manager used in a project
func DetectPython(fs FSReader) string {
	switch {
	case fs.Has("uv.lock"):
		return "uv"
	case fs.Has("pdm.lock"):
		return "pdm"
	case fs.Has("poetry.lock"):
		return "poetry"
	case fs.Has("Pipfile.lock"):
		return "pipenv"
	default:
		return "pip"
	}
}

// PythonRunPrefix returns the prefix that runs a command inside the project environment
func PythonRunPrefix(pm string) string {
	switch pm {
	case "uv":
		return "uv run "
	case "pdm":
		return "pdm run "
	case "poetry":
		return "poetry run "
	case "pipenv":
		return "pipenv run "
	default:
		return ""
	}
}
