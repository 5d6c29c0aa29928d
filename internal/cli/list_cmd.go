package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/muxdash/internal/cli/formatter"
	"github.com/alexanderramin/muxdash/internal/domain"
)

const listNameWidth = 20

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the deadline triage list",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Loader.Load()
			for _, w := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("Warning: ")+w)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatTriageList(res.Projects, app.today()))
			return nil
		},
	}
}

// formatTriageList renders the flat list: nearest deadlines first, undated
// projects at the bottom. The loader already applies that order.
func formatTriageList(projects []*domain.Project, today time.Time) string {
	if len(projects) == 0 {
		return formatter.Dim("No projects found.") + "\n"
	}

	var b strings.Builder
	for _, p := range projects {
		name := formatter.Bold(formatter.PadRight(formatter.Truncate(p.Name, listNameWidth), listNameWidth))
		style := formatter.DeadlineStyle(domain.DeadlineTierFor(p.Deadline, today))
		ddl := style.Render(formatter.PadRight(domain.ShortDeadline(p.Deadline, today), 8))

		b.WriteString(fmt.Sprintf("%s %s %s", name, ddl, formatter.PriorityBadge(p.Priority)))
		if p.Description != "" {
			b.WriteString(" " + formatter.Dim(p.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}
