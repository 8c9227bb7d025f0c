package detectors

// Scoring constants for framework detection.
// These define the weight of different signals when detecting frameworks.
const (
	// ScoreConfigFile represents a framework-specific configuration file
	// Examples: next.config.js, manage.py
	ScoreConfigFile = 3.0

	// ScoreDependency represents a framework dependency in package manager files
	// Examples: "next" in package.json, "django" in requirements.txt
	ScoreDependency = 2.5

	// ScoreLockfile represents a package manager lockfile
	// Examples: Gemfile.lock, composer.lock
	ScoreLockfile = 2.0

	// ScoreBuildTool represents a framework binstub or CLI entry point
	// Examples: bin/rails, artisan
	ScoreBuildTool = 3.0

	// ScoreStructure represents framework-specific directory structure
	ScoreStructure = 1.0

	// ScoreScriptPattern represents a dev or start script in package.json
	ScoreScriptPattern = 1.0

	// ScoreMinorIndicator represents minor indicators used for tie-breaking
	ScoreMinorIndicator = 0.5
)
