package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ProgressFileName is the fixed-named progress note looked up under a
// project's root directory.
const ProgressFileName = "prgs.md"

// Project is a single tmuxinator project descriptor. Instances are
// immutable after load and recreated on every reload; classification is
// always computed against an explicit "today" so it stays deterministic.
type Project struct {
	Name        string
	Deadline    *time.Time // calendar date; nil means no deadline
	Priority    string     // normalized lower-case tag, see NormalizePriority
	Description string
	Root        string // optional; only used to locate the progress note
	FilePath    string // descriptor file this project was loaded from

	// ProgressNote holds the contents of prgs.md under Root, an inline
	// "[Error reading ...]" marker, or "" when absent.
	ProgressNote string
}

// DaysLeft returns days until the deadline; false when there is none.
func (p *Project) DaysLeft(today time.Time) (int, bool) {
	return DaysLeft(p.Deadline, today)
}

// IsOverdue reports whether the project's deadline has passed.
func (p *Project) IsOverdue(today time.Time) bool {
	return IsOverdue(p.Deadline, today)
}

// Urgency classifies the project's urgency as of today.
func (p *Project) Urgency(today time.Time) Urgency {
	return UrgencyFor(p.Deadline, today)
}

// Importance classifies the project from its priority tag.
func (p *Project) Importance() Importance {
	return ImportanceFor(p.Priority)
}

// Quadrant places the project in the decision matrix as of today.
func (p *Project) Quadrant(today time.Time) Quadrant {
	return QuadrantFor(p.Urgency(today), p.Importance())
}

// PrioritySymbol returns the matrix-row marker for the project's importance.
func (p *Project) PrioritySymbol() string {
	switch p.Importance() {
	case ImportanceImportant:
		return "▲"
	case ImportanceLow:
		return "▼"
	default:
		return "●"
	}
}

// LoadProgressNote reads prgs.md under Root, best-effort. A missing root
// or file leaves the note empty; a read failure is captured as an inline
// marker instead of an error so auxiliary data never aborts a load.
func (p *Project) LoadProgressNote() {
	if p.Root == "" {
		return
	}
	if _, err := os.Stat(p.Root); err != nil {
		return
	}
	path := filepath.Join(p.Root, ProgressFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		p.ProgressNote = fmt.Sprintf("[Error reading %s: %v]", ProgressFileName, err)
		return
	}
	p.ProgressNote = string(data)
}
