package detectors

import (
	"fmt"

	"playconf/pkg/detector/packagemanagers"
)

// DetectPython detects Python frameworks
func DetectPython(fs FSReader) []Candidate {
	var candidates []Candidate

	if c := detectDjango(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectFlask(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectFastAPI(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	return candidates
}

func detectDjango(fs FSReader) Candidate {
	return NewDetectionBuilder("Django", "Python", fs).
		CheckFile("manage.py", ScoreConfigFile, "manage.py").
		CheckAnyContent([]string{"requirements.txt", "pyproject.toml", "Pipfile"}, "django", ScoreDependency, "django in dependencies").
		Build(func(port int) string {
			return fmt.Sprintf("%spython manage.py runserver %d", runPrefix(fs), port)
		})
}

func detectFlask(fs FSReader) Candidate {
	return NewDetectionBuilder("Flask", "Python", fs).
		CheckAnyContent([]string{"requirements.txt", "pyproject.toml", "Pipfile"}, "flask", ScoreDependency, "flask in dependencies").
		CheckAnyFile([]string{"app.py", "wsgi.py"}, ScoreStructure, "Flask app file").
		CheckDir("templates", ScoreMinorIndicator, "templates/ folder").
		Build(func(port int) string {
			return fmt.Sprintf("%sflask run --port %d", runPrefix(fs), port)
		})
}

func detectFastAPI(fs FSReader) Candidate {
	return NewDetectionBuilder("FastAPI", "Python", fs).
		CheckAnyContent([]string{"main.py", "app.py"}, "fastapi", ScoreConfigFile, "FastAPI import in main/app file").
		CheckAnyContent([]string{"requirements.txt", "pyproject.toml"}, "fastapi", ScoreDependency, "fastapi in dependencies").
		Build(func(port int) string {
			module := "main"
			if !fs.Has("main.py") && fs.Has("app.py") {
				module = "app"
			}
			return fmt.Sprintf("%suvicorn %s:app --port %d", runPrefix(fs), module, port)
		})
}

func runPrefix(fs FSReader) string {
	return packagemanagers.PythonRunPrefix(packagemanagers.DetectPython(fs))
}
