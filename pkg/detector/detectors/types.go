package detectors

// FSReader is the read-only view of a project the detectors inspect
type FSReader interface {
	Has(path string) bool
	Read(path string) string
	DirExists(path string) bool
}

// CommandFunc renders the command that starts a dev server on port
type CommandFunc func(port int) string

// Candidate represents a framework detection candidate
type Candidate struct {
	Name     string
	Score    float64
	Language string
	Signals  []string
	Command  CommandFunc
}
