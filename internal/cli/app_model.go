package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/muxdash/internal/cli/formatter"
	"github.com/alexanderramin/muxdash/internal/config"
	"github.com/alexanderramin/muxdash/internal/intelligence"
)

// ── messages ─────────────────────────────────────────────────────────────────

// projectsLoadedMsg signals that the config directory has been (re)read.
type projectsLoadedMsg struct {
	result *config.LoadResult
	today  time.Time
}

// analysisDoneMsg carries a completed analysis from the worker goroutine
// into the event loop.
type analysisDoneMsg struct {
	outcome intelligence.AnalysisOutcome
}

// ── model ────────────────────────────────────────────────────────────────────

// appModel is the root bubbletea Model. It owns project loading and the
// async analyzer; the two views render from the shared state.
type appModel struct {
	state   *SharedState
	matrix  *matrixView
	summary *summaryView
	active  ViewID

	spin     spinner.Model
	analyzer *intelligence.Analyzer

	// outcomes bridges the analyzer's completion callback into the event
	// loop; waitForOutcome blocks on it from a tea.Cmd goroutine.
	outcomes  chan intelligence.AnalysisOutcome
	pendingID string
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	outcomes := make(chan intelligence.AnalysisOutcome, 1)
	analyzer := intelligence.NewAnalyzer(app.Advisor, func(o intelligence.AnalysisOutcome) {
		outcomes <- o
	})

	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{
			Frames: formatter.SpinnerFrames,
			FPS:    time.Second / 12,
		}),
		spinner.WithStyle(formatter.StylePurple),
	)

	return appModel{
		state:    state,
		matrix:   newMatrixView(state),
		summary:  newSummaryView(state),
		active:   ViewMatrix,
		spin:     sp,
		analyzer: analyzer,
		outcomes: outcomes,
	}
}

func (m *appModel) activeView() View {
	if m.active == ViewSummary {
		return m.summary
	}
	return m.matrix
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m *appModel) loadProjects() tea.Cmd {
	app := m.state.App
	return func() tea.Msg {
		return projectsLoadedMsg{result: app.Loader.Load(), today: app.today()}
	}
}

// startAnalysis kicks off an async run and switches to the summary view so
// the panel is visible. A run already in flight is left alone.
func (m *appModel) startAnalysis(force bool) tea.Cmd {
	id, started := m.analyzer.Analyze(m.state.Projects, m.state.Today, force)
	if !started {
		return nil
	}
	m.pendingID = id
	m.state.Analysis = AnalysisPanel{
		State:        intelligence.StateAnalyzing,
		SpinnerFrame: m.spin.View(),
	}
	m.active = ViewSummary
	m.summary.refresh()
	return tea.Batch(m.spin.Tick, m.waitForOutcome())
}

// waitForOutcome blocks until the analyzer delivers, then re-arms nothing:
// exactly one outcome arrives per started run.
func (m *appModel) waitForOutcome() tea.Cmd {
	outcomes := m.outcomes
	return func() tea.Msg {
		return analysisDoneMsg{outcome: <-outcomes}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.loadProjects()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if m.state.Analysis.State == intelligence.StateReady {
			m.state.Analysis.Rendered = renderMarkdown(m.state.Analysis.Content, m.contentWidth())
		}
		m.summary.resize()
		return m, nil

	case projectsLoadedMsg:
		m.state.SetProjects(msg.result.Projects, msg.result.Warnings, msg.today)
		m.summary.refresh()
		return m, nil

	case analysisDoneMsg:
		if msg.outcome.RequestID != m.pendingID {
			return m, nil
		}
		m.applyOutcome(msg.outcome)
		m.summary.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.state.Analysis.State != intelligence.StateAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.state.Analysis.SpinnerFrame = m.spin.View()
		m.summary.refresh()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "r":
		return m, m.loadProjects()

	case "a":
		return m, m.startAnalysis(false)

	case "f":
		return m, m.startAnalysis(true)

	case "tab":
		if m.active == ViewMatrix {
			m.active = ViewSummary
		} else {
			m.active = ViewMatrix
		}
		return m, nil

	case "s":
		m.active = ViewSummary
		return m, nil

	case "esc":
		m.active = ViewMatrix
		return m, nil
	}

	// Remaining keys (scrolling) go to the active view. Views are held by
	// pointer, so Update mutates them in place.
	_, cmd := m.activeView().Update(msg)
	return m, cmd
}

// applyOutcome folds a completed analysis into the panel state.
func (m *appModel) applyOutcome(outcome intelligence.AnalysisOutcome) {
	res := outcome.Result
	if res.Failed() {
		m.state.Analysis = AnalysisPanel{
			State: intelligence.StateError,
			Err:   res.Err,
		}
		return
	}
	m.state.Analysis = AnalysisPanel{
		State:     intelligence.StateReady,
		Content:   res.Content,
		Rendered:  renderMarkdown(res.Content, m.contentWidth()),
		FromCache: res.FromCache,
	}
}

// contentWidth is the usable width for the recommendation markdown.
func (m *appModel) contentWidth() int {
	w := m.state.Width - 6
	if w < 20 {
		w = 20
	}
	return w
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.activeView().View(),
		m.renderStatusBar(),
	}
	result := strings.Join(sections, "\n")

	// Pad to terminal height to avoid stale line artifacts from the
	// line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m appModel) renderHeader() string {
	title := formatter.StylePurple.Render("muxdash")
	crumb := " " + formatter.Dim("›") + " " + formatter.Dim(m.activeView().Title())

	header := title + crumb
	if m.state.Loaded {
		info := fmt.Sprintf("%d projects", len(m.state.Projects))
		if overdue := m.state.Grouping.Overdue(m.state.Today); overdue > 0 {
			info += "  " + formatter.StyleRed.Render(fmt.Sprintf("⚠ %d overdue", overdue))
		}
		if n := len(m.state.Warnings); n > 0 {
			info += "  " + formatter.StyleYellow.Render(fmt.Sprintf("%d warnings", n))
		}
		header += "  " + formatter.Dim(m.state.Today.Format("2006-01-02")) + "  " + info
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
