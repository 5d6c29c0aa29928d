package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/muxdash/internal/config"
	"github.com/alexanderramin/muxdash/internal/intelligence"
)

// App holds the services used by CLI commands and the TUI.
type App struct {
	Loader  *config.Loader
	Advisor intelligence.AdvisorService

	// Today returns the current date; tests pin it.
	Today func() time.Time

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (a *App) today() time.Time {
	if a.Today != nil {
		return a.Today()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	if a.IsInteractive != nil {
		return a.IsInteractive()
	}
	return false
}

// NewRootCmd creates the top-level "muxdash" command. Running it bare
// starts the TUI; list and analyze are one-shot alternatives.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "muxdash",
		Short:        "Eisenhower matrix dashboard for tmuxinator projects",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("muxdash needs an interactive terminal; try 'muxdash list'")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newListCmd(app),
		newAnalyzeCmd(app),
	)

	return root
}
