package detectors

import "fmt"

// DetectRuby detects Ruby frameworks
func DetectRuby(fs FSReader) []Candidate {
	var candidates []Candidate

	if c := detectRails(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectSinatra(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	return candidates
}

// RailsCommand starts the Rails development server
func RailsCommand(port int) string {
	return fmt.Sprintf("bin/rails server -p %d", port)
}

func detectRails(fs FSReader) Candidate {
	return NewDetectionBuilder("Rails", "Ruby", fs).
		CheckFile("bin/rails", ScoreBuildTool, "bin/rails").
		CheckFile("Gemfile.lock", ScoreLockfile, "Gemfile.lock").
		CheckFile("config/application.rb", ScoreMinorIndicator, "config/application.rb").
		Build(RailsCommand)
}

func detectSinatra(fs FSReader) Candidate {
	return NewDetectionBuilder("Sinatra", "Ruby", fs).
		CheckContent("Gemfile", "sinatra", ScoreDependency, "sinatra in Gemfile").
		CheckFile("config.ru", ScoreStructure, "config.ru").
		Build(func(port int) string {
			return fmt.Sprintf("bundle exec rackup -p %d", port)
		})
}
