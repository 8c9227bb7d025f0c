// Package detector infers the command that starts a project's local dev
// server by scoring framework signals in the project tree.
package detector

import (
	"io/fs"
	"os"

	"playconf/pkg/detector/detectors"
	"playconf/pkg/detector/helpers"
	"playconf/pkg/detector/packagemanagers"
	"playconf/pkg/discovery"
)

// FallbackFramework is reported when no framework signal is found
const FallbackFramework = "Rails"

// DetectServer detects the dev server of the project rooted at root
func DetectServer(root string, port int) Detection {
	return DetectServerFS(os.DirFS(root), port)
}

// DetectServerFS scores every known framework against fsys and renders the
// winner's start command for port. Without any candidate it falls back to
// the Rails server command. Files under dependency and build directories
// are not considered.
func DetectServerFS(fsys fs.FS, port int) Detection {
	reader := discovery.NewTree(fsys)

	var cands []detectors.Candidate

	cands = append(cands, detectors.DetectRuby(reader)...)
	cands = append(cands, detectors.DetectJavaScript(reader)...)
	cands = append(cands, detectors.DetectPython(reader)...)
	cands = append(cands, detectors.DetectPHP(reader)...)
	cands = append(cands, detectors.DetectElixir(reader)...)

	if len(cands) == 0 {
		return Detection{
			Framework:    FallbackFramework,
			Language:     "Ruby",
			Confidence:   0.0,
			Signals:      []string{"no strong framework signals"},
			Command:      detectors.RailsCommand(port),
			DetectedPort: helpers.DetectPort(reader, FallbackFramework),
		}
	}

	best := pickBest(cands)

	out := Detection{
		Framework:    best.Name,
		Language:     best.Language,
		Confidence:   clamp(best.Score/6.0, 0, 1),
		Signals:      best.Signals,
		Command:      best.Command(port),
		DetectedPort: helpers.DetectPort(reader, best.Name),
	}

	switch best.Language {
	case "JavaScript/TypeScript":
		out.PackageManager = packagemanagers.DetectJS(reader)
	case "Python":
		out.PackageManager = packagemanagers.DetectPython(reader)
	}

	return out
}

// clamp constrains a value between lo and hi
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// pickBest selects the best candidate from the list. Ties keep the earlier
// candidate so detection order decides.
func pickBest(cands []detectors.Candidate) detectors.Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}
