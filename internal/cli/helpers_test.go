package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/muxdash/internal/config"
	"github.com/alexanderramin/muxdash/internal/domain"
	"github.com/alexanderramin/muxdash/internal/intelligence"
)

var testToday = domain.Date(2024, time.March, 10)

// fakeAdvisor returns a canned result and records how it was called.
type fakeAdvisor struct {
	mu        sync.Mutex
	calls     int
	lastForce bool
	result    intelligence.AnalysisResult
}

func (f *fakeAdvisor) Analyze(_ context.Context, _ []*domain.Project, _ time.Time, force bool) intelligence.AnalysisResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastForce = force
	return f.result
}

func (f *fakeAdvisor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAdvisor) forcedLast() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastForce
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// testApp builds an App over a fixture config directory:
// an overdue project, one due in two days, and one without a deadline.
func testApp(t *testing.T, advisor intelligence.AdvisorService) (*App, string) {
	t.Helper()
	dir := t.TempDir()

	writeFixture(t, dir, "thesis.yml",
		"name: thesis\nddl: 2024-03-12\npriority: high\ndescription: write chapters\n")
	writeFixture(t, dir, "legacy.yml",
		"name: legacy\nddl: 2024-03-01\ndescription: old migration\n")
	writeFixture(t, dir, "chores.yml",
		"name: chores\npriority: low\n")

	return &App{
		Loader:  config.NewLoader(dir),
		Advisor: advisor,
		Today:   func() time.Time { return testToday },
	}, dir
}
