package intelligence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/muxdash/internal/domain"
)

// AnalysisState is the tri-state indicator for the recommendation panel.
type AnalysisState int

const (
	StateEmpty AnalysisState = iota
	StateAnalyzing
	StateReady
	StateError
)

// AnalysisOutcome pairs a completed run's request ID with its result.
type AnalysisOutcome struct {
	RequestID string
	Result    AnalysisResult
}

// Analyzer runs advisor calls off the interactive loop with at-most-one
// in flight. Each started run delivers exactly one outcome through the
// completion callback supplied at construction; a call issued while a run
// is outstanding starts nothing (the outstanding run's result still
// arrives through the same path, so the last writer wins at the display).
// There is no hard cancel of an in-flight call.
type Analyzer struct {
	advisor AdvisorService
	onDone  func(AnalysisOutcome)

	mu       sync.Mutex
	inFlight bool
}

// NewAnalyzer creates an Analyzer delivering completions to onDone.
// onDone is invoked from the worker goroutine; the callback must be safe
// to call off the interactive loop (e.g. push into a buffered channel).
func NewAnalyzer(advisor AdvisorService, onDone func(AnalysisOutcome)) *Analyzer {
	return &Analyzer{advisor: advisor, onDone: onDone}
}

// Analyze starts a run and returns its request ID, or ("", false) when a
// run is already in flight. It never blocks on the external call.
func (a *Analyzer) Analyze(projects []*domain.Project, today time.Time, force bool) (string, bool) {
	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return "", false
	}
	a.inFlight = true
	a.mu.Unlock()

	id := uuid.New().String()

	// Snapshot the slice so a concurrent reload can't mutate the set
	// mid-analysis.
	snapshot := make([]*domain.Project, len(projects))
	copy(snapshot, projects)

	go func() {
		result := a.advisor.Analyze(context.Background(), snapshot, today, force)

		a.mu.Lock()
		a.inFlight = false
		a.mu.Unlock()

		a.onDone(AnalysisOutcome{RequestID: id, Result: result})
	}()

	return id, true
}

// InFlight reports whether an analysis is currently outstanding.
func (a *Analyzer) InFlight() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inFlight
}
