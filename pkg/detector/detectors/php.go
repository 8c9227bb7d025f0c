package detectors

import "fmt"

// DetectPHP detects PHP frameworks
func DetectPHP(fs FSReader) []Candidate {
	var candidates []Candidate

	if c := detectLaravel(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	return candidates
}

func detectLaravel(fs FSReader) Candidate {
	return NewDetectionBuilder("Laravel", "PHP", fs).
		CheckFile("artisan", ScoreBuildTool, "artisan").
		CheckFile("composer.lock", ScoreLockfile, "composer.lock").
		CheckFile("config/app.php", ScoreMinorIndicator, "config/app.php").
		Build(func(port int) string {
			return fmt.Sprintf("php artisan serve --port=%d", port)
		})
}
