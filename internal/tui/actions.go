package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/report"
	"github.com/aicred/aicred/internal/types"
)

type (
	findingsMsg []types.Finding
	statusMsg   string
	scanErrMsg  struct{ err error }
)

func (m *Model) rescan() tea.Cmd {
	return func() tea.Msg {
		newFindings, err := m.rescanFunc()
		if err != nil {
			return scanErrMsg{err}
		}
		return findingsMsg(newFindings)
	}
}

// copyValueToClipboard copies the raw credential value. This is the one
// action that ignores the hide-secrets preference; the status line never
// echoes the value.
func (m *Model) copyValueToClipboard() tea.Cmd {
	f := m.currentFinding()
	if f == nil {
		return func() tea.Msg { return statusMsg("No finding selected") }
	}
	if err := clipboard.WriteAll(f.Value); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied %s value to clipboard", f.Provider)) }
}

func (m *Model) copyPathToClipboard() tea.Cmd {
	f := m.currentFinding()
	if f == nil {
		return func() tea.Msg { return statusMsg("No finding selected") }
	}
	if err := clipboard.WriteAll(f.Path); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied: %s", f.Path)) }
}

// copyFindingToClipboard copies the full finding details, with the value
// in whatever form the display currently shows.
func (m *Model) copyFindingToClipboard() tea.Cmd {
	f := m.currentFinding()
	if f == nil {
		return func() tea.Msg { return statusMsg("No finding selected") }
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s\n", f.Provider))
	sb.WriteString(fmt.Sprintf("Scanner: %s\n", f.Scanner))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", f.Confidence))
	sb.WriteString(fmt.Sprintf("Key: %s\n", f.KeyName))
	sb.WriteString(fmt.Sprintf("Path: %s\n", f.Path))
	if f.Line > 0 {
		sb.WriteString(fmt.Sprintf("Line: %d\n", f.Line))
	}
	sb.WriteString(fmt.Sprintf("Value: %s\n", m.displayValue(*f)))

	if err := clipboard.WriteAll(sb.String()); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg("Copied finding details to clipboard") }
}

// exportFindings writes the current view to a timestamped file in the
// working directory. Exports honor the hide-secrets preference.
func (m *Model) exportFindings(format string) tea.Cmd {
	findings := m.displayFindings()
	if len(findings) == 0 {
		return func() tea.Msg { return statusMsg("No findings to export") }
	}

	export := make([]types.Finding, len(findings))
	copy(export, findings)
	if m.prefs.HideSecrets {
		for i := range export {
			export[i].Value = redact.Mask(export[i].Value)
		}
	}

	timestamp := time.Now().Format("20060102-150405")
	var filename string
	var buf bytes.Buffer
	var err error

	switch format {
	case "json":
		filename = fmt.Sprintf("aicred-export-%s.json", timestamp)
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(export)
	case "ndjson":
		filename = fmt.Sprintf("aicred-export-%s.ndjson", timestamp)
		err = report.WriteNDJSON(&buf, export)
	case "sarif":
		filename = fmt.Sprintf("aicred-export-%s.sarif", timestamp)
		err = report.WriteSARIF(&buf, export, Version)
	default:
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Unknown format: %s", format)) }
	}
	if err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Export error: %v", err)) }
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0600); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Write error: %v", err)) }
	}

	absPath, _ := filepath.Abs(filename)
	return func() tea.Msg {
		return statusMsg(fmt.Sprintf("Exported %d findings to %s", len(export), absPath))
	}
}
