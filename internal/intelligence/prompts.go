package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/muxdash/internal/domain"
)

const advisorSystemPrompt = "You are a productivity advisor analyzing project portfolios. Provide concise, actionable advice."

// maxProgressLen caps how much of a progress note is sent per project.
const maxProgressLen = 500

const truncationMarker = "\n... [truncated]"

// buildAdvisorPrompt synthesizes the analysis request from the project
// set: per-project facts plus the questions the advisor should answer.
func buildAdvisorPrompt(projects []*domain.Project, today time.Time) string {
	var b strings.Builder

	b.WriteString("You are a productivity advisor analyzing my project portfolio.\n\n")
	fmt.Fprintf(&b, "Today is %s.\n\n", today.Format("2006-01-02"))
	b.WriteString("Here are my active projects:\n\n")

	for _, p := range projects {
		deadline := "No deadline"
		if days, ok := p.DaysLeft(today); ok {
			deadline = fmt.Sprintf("%d days", days)
		}

		progress := p.ProgressNote
		if progress == "" {
			progress = "[No progress file]"
		} else if len(progress) > maxProgressLen {
			progress = progress[:maxProgressLen] + truncationMarker
		}

		fmt.Fprintf(&b, "Project: %s\n", p.Name)
		fmt.Fprintf(&b, "Deadline: %s\n", deadline)
		fmt.Fprintf(&b, "Priority: %s\n", p.Priority)
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
		fmt.Fprintf(&b, "Recent Progress:\n%s\n---\n", progress)
	}

	b.WriteString(`
Please analyze and provide:

1. **PRIORITY ORDER** (top 3-5 projects I should focus on):
   - Rank projects by what I should work on first
   - For each, explain WHY (consider: deadline urgency, current progress, priority level, momentum)

2. **STRATEGIC INSIGHTS**:
   - Which projects are at risk of missing deadlines?
   - Which projects seem stalled despite importance?
   - Any workload balance issues (too scattered vs too focused)?
   - Recommendations for time allocation this week

Format your response as markdown with ## headers.
`)

	return b.String()
}
