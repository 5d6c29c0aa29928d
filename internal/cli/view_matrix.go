package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/muxdash/internal/cli/formatter"
	"github.com/alexanderramin/muxdash/internal/domain"
)

// matrixRows lays the six quadrants out as a 2x3 grid: urgent quadrants
// in the left column, one importance level per row.
var matrixRows = [][2]domain.Quadrant{
	{domain.QuadrantDoFirst, domain.QuadrantSchedule},
	{domain.QuadrantQuickWins, domain.QuadrantOrganize},
	{domain.QuadrantReview, domain.QuadrantDrop},
}

const (
	matrixNameWidth = 12
	matrixDescWidth = 30
)

// matrixView renders the Eisenhower grid. It holds no state of its own;
// everything comes from the shared state set by the root model.
type matrixView struct {
	state *SharedState
}

func newMatrixView(state *SharedState) *matrixView {
	return &matrixView{state: state}
}

func (v *matrixView) ID() ViewID    { return ViewMatrix }
func (v *matrixView) Title() string { return "Matrix" }

func (v *matrixView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "force analyze")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "summary")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *matrixView) Init() tea.Cmd { return nil }

func (v *matrixView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *matrixView) View() string {
	if !v.state.Loaded {
		return "\n  " + formatter.Dim("Loading projects...")
	}

	panelWidth := v.state.Width/2 - 2
	if panelWidth < 30 {
		panelWidth = 30
	}

	var rows []string
	for _, pair := range matrixRows {
		left := v.renderPanel(pair[0], panelWidth)
		right := v.renderPanel(pair[1], panelWidth)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}
	return strings.Join(rows, "\n")
}

func (v *matrixView) renderPanel(q domain.Quadrant, width int) string {
	projects := v.state.Grouping[q]
	color := formatter.QuadrantColor(q)

	title := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(formatter.QuadrantTitle(q, len(projects)))

	var lines []string
	lines = append(lines, title)
	if len(projects) == 0 {
		lines = append(lines, formatter.DimItalic("Empty - Good! 👍"))
	} else {
		for _, p := range projects {
			lines = append(lines, v.renderProjectLine(p))
		}
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(width)
	return panel.Render(strings.Join(lines, "\n"))
}

func (v *matrixView) renderProjectLine(p *domain.Project) string {
	today := v.state.Today

	var parts []string
	if p.IsOverdue(today) {
		parts = append(parts, formatter.StyleRed.Bold(true).Render("⚠"))
	}
	parts = append(parts, formatter.PrioritySymbol(p))
	parts = append(parts, formatter.StyleBold.Render(
		formatter.PadRight(formatter.Truncate(p.Name, matrixNameWidth), matrixNameWidth)))
	parts = append(parts, formatter.DeadlineStyled(p.Deadline, today))
	if p.Description != "" {
		parts = append(parts, formatter.Dim(formatter.Truncate(p.Description, matrixDescWidth)))
	}
	return strings.Join(parts, " ")
}
