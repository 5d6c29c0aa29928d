package intelligence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/muxdash/internal/domain"
)

// blockingAdvisor holds Analyze until released, to simulate a slow call.
type blockingAdvisor struct {
	started chan struct{}
	release chan struct{}
	result  AnalysisResult

	mu    sync.Mutex
	calls int
}

func newBlockingAdvisor(result AnalysisResult) *blockingAdvisor {
	return &blockingAdvisor{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  result,
	}
}

func (b *blockingAdvisor) Analyze(context.Context, []*domain.Project, time.Time, bool) AnalysisResult {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.started <- struct{}{}
	<-b.release
	return b.result
}

func (b *blockingAdvisor) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func waitOutcome(t *testing.T, ch <-chan AnalysisOutcome) AnalysisOutcome {
	t.Helper()
	select {
	case out := <-ch:
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for analysis outcome")
		return AnalysisOutcome{}
	}
}

func TestAnalyzer_DeliversExactlyOneOutcome(t *testing.T) {
	advisor := newBlockingAdvisor(AnalysisResult{Content: "done"})
	outcomes := make(chan AnalysisOutcome, 4)
	a := NewAnalyzer(advisor, func(o AnalysisOutcome) { outcomes <- o })

	id, started := a.Analyze(nil, testToday, false)
	require.True(t, started)
	require.NotEmpty(t, id)

	<-advisor.started
	assert.True(t, a.InFlight())
	close(advisor.release)

	out := waitOutcome(t, outcomes)
	assert.Equal(t, id, out.RequestID)
	assert.Equal(t, "done", out.Result.Content)

	select {
	case extra := <-outcomes:
		t.Fatalf("unexpected second outcome: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAnalyzer_AtMostOneInFlight(t *testing.T) {
	advisor := newBlockingAdvisor(AnalysisResult{Content: "done"})
	outcomes := make(chan AnalysisOutcome, 4)
	a := NewAnalyzer(advisor, func(o AnalysisOutcome) { outcomes <- o })

	_, started := a.Analyze(nil, testToday, false)
	require.True(t, started)
	<-advisor.started

	// Second call while outstanding starts nothing and does not cancel
	// the in-flight run.
	_, started = a.Analyze(nil, testToday, false)
	assert.False(t, started)
	assert.Equal(t, 1, advisor.callCount())

	close(advisor.release)
	out := waitOutcome(t, outcomes)
	assert.Equal(t, "done", out.Result.Content, "prior run's result is still delivered")
}

func TestAnalyzer_CanRunAgainAfterCompletion(t *testing.T) {
	advisor := newBlockingAdvisor(AnalysisResult{Content: "done"})
	outcomes := make(chan AnalysisOutcome, 4)
	a := NewAnalyzer(advisor, func(o AnalysisOutcome) { outcomes <- o })

	_, started := a.Analyze(nil, testToday, false)
	require.True(t, started)
	<-advisor.started
	close(advisor.release)
	waitOutcome(t, outcomes)
	assert.False(t, a.InFlight())

	advisor.release = make(chan struct{})
	id2, started := a.Analyze(nil, testToday, true)
	require.True(t, started)
	<-advisor.started
	close(advisor.release)

	out := waitOutcome(t, outcomes)
	assert.Equal(t, id2, out.RequestID)
	assert.Equal(t, 2, advisor.callCount())
}
