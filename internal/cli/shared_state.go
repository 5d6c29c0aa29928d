package cli

import (
	"time"

	"github.com/alexanderramin/muxdash/internal/domain"
	"github.com/alexanderramin/muxdash/internal/intelligence"
	"github.com/alexanderramin/muxdash/internal/matrix"
)

// AnalysisPanel holds the recommendation panel state shared between views.
type AnalysisPanel struct {
	State     intelligence.AnalysisState
	Content   string // raw markdown from the advisor
	Rendered  string // glamour output at the current width
	Err       string
	FromCache bool

	// SpinnerFrame is the current spinner glyph while analyzing.
	SpinnerFrame string
}

// SharedState holds context shared across views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Loaded project data, refreshed by 'r'. Today is pinned at load time
	// so classification and rendering agree on the same date.
	Loaded   bool
	Today    time.Time
	Projects []*domain.Project
	Warnings []string
	Grouping matrix.Grouping

	Analysis AnalysisPanel
}

// ContentHeight returns the height available to view content, accounting
// for the header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// SetProjects installs a fresh load result and regroups the matrix.
func (s *SharedState) SetProjects(projects []*domain.Project, warnings []string, today time.Time) {
	s.Loaded = true
	s.Today = today
	s.Projects = projects
	s.Warnings = warnings
	s.Grouping = matrix.GroupByQuadrant(projects, today)
}
