package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aicred/aicred/internal/types"
)

// Version is stamped by the CLI so SARIF exports carry the tool version.
var Version = "dev"

// Run starts the interactive findings browser. rescanFunc re-runs the
// scan when the user presses 'r'; pass nil to disable rescanning.
func Run(findings []types.Finding, rescanFunc func() ([]types.Finding, error)) error {
	m := NewModel(findings, rescanFunc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
