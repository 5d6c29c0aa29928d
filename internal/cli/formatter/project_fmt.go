package formatter

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/muxdash/internal/domain"
)

// quadrantTitles carry the full matrix labels, count appended at render time.
var quadrantTitles = map[domain.Quadrant]string{
	domain.QuadrantDoFirst:   "🔴 DO FIRST (Urgent & Important)",
	domain.QuadrantSchedule:  "🟢 SCHEDULE (Not Urgent & Important)",
	domain.QuadrantQuickWins: "🟡 QUICK WINS (Urgent & Routine)",
	domain.QuadrantOrganize:  "⚪ ORGANIZE (Not Urgent & Routine)",
	domain.QuadrantReview:    "🟠 REVIEW (Urgent & Low Priority)",
	domain.QuadrantDrop:      "⚫ DROP? (Not Urgent & Low Priority)",
}

// QuadrantTitle returns the panel title for a quadrant with its project count.
func QuadrantTitle(q domain.Quadrant, count int) string {
	title, ok := quadrantTitles[q]
	if !ok {
		title = string(q)
	}
	return fmt.Sprintf("%s (%d)", title, count)
}

// QuadrantColor returns the border color for a quadrant panel.
func QuadrantColor(q domain.Quadrant) lipgloss.Color {
	switch q {
	case domain.QuadrantDoFirst:
		return ColorRed
	case domain.QuadrantSchedule:
		return ColorGreen
	case domain.QuadrantQuickWins:
		return ColorYellow
	case domain.QuadrantOrganize:
		return ColorBlue
	case domain.QuadrantReview:
		return ColorHeader
	default:
		return ColorDim
	}
}

// PrioritySymbol returns the project's importance marker, colored.
func PrioritySymbol(p *domain.Project) string {
	switch p.Importance() {
	case domain.ImportanceImportant:
		return StyleRed.Bold(true).Render(p.PrioritySymbol())
	case domain.ImportanceLow:
		return StyleDim.Render(p.PrioritySymbol())
	default:
		return StyleFg.Render(p.PrioritySymbol())
	}
}

// PriorityBadge returns a colored tag for the normalized priority value.
func PriorityBadge(priority string) string {
	label := "[" + priority + "]"
	switch priority {
	case domain.PriorityHigh, domain.PriorityUrgent:
		return StyleRed.Render(label)
	case domain.PriorityLow:
		return StyleDim.Render(label)
	default:
		return StyleBlue.Render(label)
	}
}

// DeadlineStyle returns the style for a deadline's urgency tier.
func DeadlineStyle(tier domain.DeadlineTier) lipgloss.Style {
	switch tier {
	case domain.TierCritical:
		return StyleRed
	case domain.TierSoon:
		return StyleYellow
	case domain.TierSafe:
		return StyleGreen
	default:
		return StyleDim
	}
}

// DeadlineStyled formats the compact deadline colored by its tier.
func DeadlineStyled(deadline *time.Time, today time.Time) string {
	text := domain.ShortDeadline(deadline, today)
	return DeadlineStyle(domain.DeadlineTierFor(deadline, today)).Render(text)
}

// Truncate shortens s to max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// PadRight pads s with spaces to at least width display cells.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	for w < width {
		s += " "
		w++
	}
	return s
}
