package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/muxdash/internal/cli/formatter"
	"github.com/alexanderramin/muxdash/internal/domain"
	"github.com/alexanderramin/muxdash/internal/intelligence"
)

// summaryView shows the AI recommendation panel above the triage-ordered
// project detail list, scrollable as one unit.
type summaryView struct {
	state *SharedState
	vp    viewport.Model
}

func newSummaryView(state *SharedState) *summaryView {
	return &summaryView{state: state, vp: viewport.New(0, 0)}
}

func (v *summaryView) ID() ViewID    { return ViewSummary }
func (v *summaryView) Title() string { return "Summary" }

func (v *summaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "force analyze")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "matrix")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *summaryView) Init() tea.Cmd { return nil }

func (v *summaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *summaryView) View() string {
	if !v.state.Loaded {
		return "\n  " + formatter.Dim("Loading projects...")
	}
	return v.vp.View()
}

// resize updates the viewport to the current terminal size and re-renders.
func (v *summaryView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.refresh()
}

// refresh rebuilds the scrollable content from the shared state.
func (v *summaryView) refresh() {
	v.vp.SetContent(v.renderAIPanel() + "\n" + v.renderDetails())
}

// ── AI recommendation panel ──────────────────────────────────────────────────

func (v *summaryView) renderAIPanel() string {
	title := formatter.StyleGreen.Bold(true).Render("🤖 AI RECOMMENDATIONS")

	var body string
	switch v.state.Analysis.State {
	case intelligence.StateAnalyzing:
		body = v.state.Analysis.SpinnerFrame + " " +
			formatter.StyleYellow.Render("Analyzing projects...") + "\n\n" +
			formatter.Dim("This may take a few seconds.")

	case intelligence.StateReady:
		body = v.state.Analysis.Rendered
		if v.state.Analysis.FromCache {
			body += "\n" + formatter.Dim("(cached from earlier today, press 'f' to refresh)")
		}

	case intelligence.StateError:
		body = formatter.StyleRed.Bold(true).Render("Error: ") + v.state.Analysis.Err +
			"\n\n" + formatter.Dim("Press 'a' to retry")

	default:
		body = formatter.DimItalic("Press 'a' to analyze projects with AI")
	}

	width := v.state.Width - 2
	if width < 30 {
		width = 30
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(formatter.ColorGreen).
		Padding(0, 1).
		Width(width)
	return panel.Render(title + "\n\n" + body)
}

// ── project details ──────────────────────────────────────────────────────────

func (v *summaryView) renderDetails() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(
		fmt.Sprintf("📋 PROJECT DETAILS (%d projects)", len(v.state.Projects))))
	b.WriteString("\n")

	if len(v.state.Projects) == 0 {
		b.WriteString("\n" + formatter.DimItalic("No projects found") + "\n")
		return b.String()
	}

	sepWidth := v.state.Width - 2
	if sepWidth < 20 {
		sepWidth = 20
	}
	sep := formatter.Dim(strings.Repeat("─", sepWidth))

	for _, p := range v.state.Projects {
		b.WriteString(sep + "\n")
		b.WriteString(v.renderProject(p))
	}
	return b.String()
}

func (v *summaryView) renderProject(p *domain.Project) string {
	today := v.state.Today
	var b strings.Builder

	b.WriteString(formatter.Bold(p.Name) + " " + formatter.PriorityBadge(p.Priority) + "\n")

	style := formatter.DeadlineStyle(domain.DeadlineTierFor(p.Deadline, today))
	b.WriteString("DDL: " + style.Render(domain.DisplayDeadline(p.Deadline, today)) + "\n")

	if p.Description != "" {
		b.WriteString("Description: " + p.Description + "\n")
	}
	if p.Root != "" {
		b.WriteString("Path: " + formatter.Dim(p.Root) + "\n")
	}

	b.WriteString("\n")
	if p.ProgressNote != "" {
		b.WriteString(formatter.Bold("Progress:") + "\n")
		for _, line := range strings.Split(strings.TrimRight(p.ProgressNote, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	} else {
		b.WriteString(formatter.Dim("[No prgs.md found]") + "\n")
	}
	return b.String()
}
