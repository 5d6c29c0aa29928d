package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each view in the TUI.
type ViewID int

const (
	ViewMatrix ViewID = iota
	ViewSummary
)

// View is the interface both TUI views implement.
// It extends tea.Model with help metadata for the bottom bar.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // header segment for this view
}
