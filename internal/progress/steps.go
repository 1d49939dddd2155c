// Package progress simulates step-by-step processing progress while a
// backend request is in flight. The cursor is cosmetic: it is driven by a
// timer and only reaches the end once the caller reports completion.
package progress

var Steps = []string{
	"Text extraction",
	"Table detection",
	"Transaction identification",
	"Categorization",
	"Document generation",
}

type Snapshot struct {
	Attempt  int      `json:"attempt"`
	Steps    []string `json:"steps"`
	Cursor   int      `json:"cursor"`
	Complete bool     `json:"complete"`
}

// Current returns the label of the running step, or "" once complete.
func (s Snapshot) Current() string {
	if s.Cursor < 0 || s.Cursor >= len(s.Steps) {
		return ""
	}
	return s.Steps[s.Cursor]
}

// Done reports whether the step at index i has finished.
func (s Snapshot) Done(i int) bool {
	return i < s.Cursor
}
