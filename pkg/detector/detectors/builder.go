package detectors

import "strings"

// DetectionBuilder provides a fluent API for building framework detection candidates.
// It accumulates score and signals as checks pass.
type DetectionBuilder struct {
	name     string
	language string
	score    float64
	signals  []string
	fs       FSReader
}

// NewDetectionBuilder creates a new detection builder for a framework
func NewDetectionBuilder(name, language string, fs FSReader) *DetectionBuilder {
	return &DetectionBuilder{
		name:     name,
		language: language,
		signals:  []string{},
		fs:       fs,
	}
}

func (b *DetectionBuilder) hit(score float64, signal string) *DetectionBuilder {
	b.score += score
	b.signals = append(b.signals, signal)
	return b
}

// CheckFile checks if a file exists and adds score/signal if found
func (b *DetectionBuilder) CheckFile(path string, score float64, signal string) *DetectionBuilder {
	if b.fs.Has(path) {
		return b.hit(score, signal)
	}
	return b
}

// CheckAnyFile adds score/signal once if any of the files exist
func (b *DetectionBuilder) CheckAnyFile(paths []string, score float64, signal string) *DetectionBuilder {
	for _, path := range paths {
		if b.fs.Has(path) {
			return b.hit(score, signal)
		}
	}
	return b
}

// CheckDependency checks if a manifest file names a dependency
func (b *DetectionBuilder) CheckDependency(filePath, dependency string, score float64, signal string) *DetectionBuilder {
	return b.CheckContent(filePath, dependency, score, signal)
}

// CheckContent checks if a file contains a substring (case-insensitive)
func (b *DetectionBuilder) CheckContent(filePath, substring string, score float64, signal string) *DetectionBuilder {
	return b.CheckAnyContent([]string{filePath}, substring, score, signal)
}

// CheckAnyContent adds score/signal once if any of the files contains substring (case-insensitive)
func (b *DetectionBuilder) CheckAnyContent(filePaths []string, substring string, score float64, signal string) *DetectionBuilder {
	needle := strings.ToLower(substring)
	for _, filePath := range filePaths {
		if !b.fs.Has(filePath) {
			continue
		}
		if strings.Contains(strings.ToLower(b.fs.Read(filePath)), needle) {
			return b.hit(score, signal)
		}
	}
	return b
}

// CheckDir checks if a directory exists and adds score/signal if found
func (b *DetectionBuilder) CheckDir(path string, score float64, signal string) *DetectionBuilder {
	if b.fs.DirExists(path) {
		return b.hit(score, signal)
	}
	return b
}

// CheckAnyDir adds score/signal once if any of the directories exist
func (b *DetectionBuilder) CheckAnyDir(paths []string, score float64, signal string) *DetectionBuilder {
	for _, path := range paths {
		if b.fs.DirExists(path) {
			return b.hit(score, signal)
		}
	}
	return b
}

// CheckCondition adds score/signal if a custom condition is met
func (b *DetectionBuilder) CheckCondition(condition bool, score float64, signal string) *DetectionBuilder {
	if condition {
		return b.hit(score, signal)
	}
	return b
}

// Build finalizes the builder and returns a Candidate
func (b *DetectionBuilder) Build(command CommandFunc) Candidate {
	return Candidate{
		Name:     b.name,
		Score:    b.score,
		Language: b.language,
		Signals:  b.signals,
		Command:  command,
	}
}
