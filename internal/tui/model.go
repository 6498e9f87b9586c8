// Package tui implements the interactive findings browser. A findings
// table sits above a detail pane; values stay redacted until the user
// reveals them, and nothing is written anywhere unless exported.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailPaneBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Background(lipgloss.Color("235")).
			Padding(1, 4)

	confCertainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	confLikelyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	confPossibleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// confidenceText returns plain text for a confidence grade (ANSI codes
// break table truncation).
func confidenceText(c types.Confidence) string {
	return strings.ToUpper(string(c))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// Model represents the main state of the TUI application.
type Model struct {
	table       table.Model
	viewport    viewport.Model
	spinner     spinner.Model
	searchInput textinput.Model

	findings         []types.Finding
	filteredFindings []types.Finding // nil = no filter active
	rescanFunc       func() ([]types.Finding, error)
	prefs            Prefs

	width  int
	height int
	ready  bool // terminal dimensions known

	quitting       bool
	scanning       bool
	showEmpty      bool
	showHelp       bool
	showExportMenu bool

	searchMode  bool
	searchQuery string
	confFilter  types.Confidence // "" = no filter

	statusMessage string
	statusTimeout *time.Time
	lastScanTime  time.Time
}

// NewModel initializes a new TUI model.
func NewModel(findings []types.Finding, rescanFunc func() ([]types.Finding, error)) Model {
	columns := []table.Column{
		{Title: "Confidence", Width: 10},
		{Title: "Provider", Width: 14},
		{Title: "Scanner", Width: 14},
		{Title: "Location", Width: 44},
		{Title: "Key", Width: 28},
	}

	rows := make([]table.Row, len(findings))
	for i, f := range findings {
		rows[i] = findingRow(f)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)

	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)

	s.Cell = lipgloss.NewStyle().
		Padding(0, 1)

	t.SetStyles(s)

	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	ti := textinput.New()
	ti.Placeholder = "Search provider, scanner, path, or key..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	m := Model{
		table:        t,
		spinner:      sp,
		findings:     findings,
		rescanFunc:   rescanFunc,
		prefs:        LoadPrefs(),
		showEmpty:    len(findings) == 0,
		lastScanTime: time.Now(),
		searchInput:  ti,
	}

	if m.showEmpty {
		m.statusMessage = "q: quit | r: rescan"
	} else {
		m.statusMessage = "q: quit | ?: help | j/k: navigate | v: reveal | y: copy | r: rescan"
	}

	return m
}

func findingRow(f types.Finding) table.Row {
	loc := f.Path
	if f.Line > 0 {
		loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
	}
	return table.Row{confidenceText(f.Confidence), f.Provider, f.Scanner, loc, f.KeyName}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// displayValue renders a finding's value for the screen, honoring the
// hide-secrets preference.
func (m Model) displayValue(f types.Finding) string {
	if m.prefs.HideSecrets {
		return redact.Mask(f.Value)
	}
	return f.Value
}

func (m *Model) applyFilter() {
	hasSearch := m.searchQuery != ""
	hasConf := m.confFilter != ""

	if !hasSearch && !hasConf {
		m.filteredFindings = nil
		m.rebuildRows()
		return
	}

	var filtered []types.Finding
	query := strings.ToLower(m.searchQuery)

	for _, f := range m.findings {
		if hasConf && f.Confidence != m.confFilter {
			continue
		}
		if hasSearch {
			hay := strings.ToLower(f.Path + " " + f.Provider + " " + f.Scanner + " " + f.KeyName)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		filtered = append(filtered, f)
	}

	if filtered == nil {
		filtered = []types.Finding{}
	}
	m.filteredFindings = filtered
	m.rebuildRows()
}

func (m *Model) clearFilters() {
	m.searchQuery = ""
	m.confFilter = ""
	m.filteredFindings = nil
	m.rebuildRows()
}

func (m *Model) rebuildRows() {
	findings := m.displayFindings()
	rows := make([]table.Row, len(findings))
	for i, f := range findings {
		rows[i] = findingRow(f)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(findings) {
		m.table.SetCursor(0)
	}
	m.showEmpty = len(findings) == 0
	m.updateViewportContent()
}

func (m *Model) displayFindings() []types.Finding {
	if m.filteredFindings != nil {
		return m.filteredFindings
	}
	return m.findings
}

func (m *Model) currentFinding() *types.Finding {
	findings := m.displayFindings()
	idx := m.table.Cursor()
	if idx >= 0 && idx < len(findings) {
		return &findings[idx]
	}
	return nil
}

// jumpToConfidence moves the cursor to the next finding with the given
// confidence (direction: 1=forward, -1=backward).
func (m *Model) jumpToConfidence(c types.Confidence, direction int) bool {
	findings := m.displayFindings()
	if len(findings) == 0 {
		return false
	}
	current := m.table.Cursor()
	n := len(findings)
	for i := 1; i <= n; i++ {
		idx := (current + direction*i + n) % n
		if findings[idx].Confidence == c {
			m.table.SetCursor(idx)
			return true
		}
	}
	return false
}

func (m *Model) setStatus(msg string, d time.Duration) {
	timeout := time.Now().Add(d)
	m.statusTimeout = &timeout
	m.statusMessage = msg
}

func (m *Model) resetStatus() {
	if m.showEmpty {
		m.statusMessage = "q: quit | r: rescan"
	} else {
		m.statusMessage = "q: quit | ?: help | j/k: navigate | v: reveal | y: copy | r: rescan"
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.showExportMenu {
			switch msg.String() {
			case "1", "j":
				m.showExportMenu = false
				return m, m.exportFindings("json")
			case "2", "n":
				m.showExportMenu = false
				return m, m.exportFindings("ndjson")
			case "3", "s":
				m.showExportMenu = false
				return m, m.exportFindings("sarif")
			case "esc", "q", "e":
				m.showExportMenu = false
			}
			return m, nil
		}

		if m.searchMode {
			switch msg.String() {
			case "enter":
				m.searchQuery = m.searchInput.Value()
				m.searchMode = false
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searchMode = false
				m.searchInput.Blur()
				m.searchInput.SetValue(m.searchQuery)
				m.applyFilter()
				return m, nil
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.searchQuery = m.searchInput.Value()
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			if len(m.findings) > 0 {
				m.searchMode = true
				m.searchInput.SetValue(m.searchQuery)
				m.searchInput.Focus()
				return m, textinput.Blink
			}
		case "1":
			m.confFilter = types.Certain
			m.applyFilter()
			m.setStatus("Showing CERTAIN only (Esc to clear)", 3*time.Second)
			return m, nil
		case "2":
			m.confFilter = types.Likely
			m.applyFilter()
			m.setStatus("Showing LIKELY only (Esc to clear)", 3*time.Second)
			return m, nil
		case "3":
			m.confFilter = types.Possible
			m.applyFilter()
			m.setStatus("Showing POSSIBLE only (Esc to clear)", 3*time.Second)
			return m, nil
		case "esc":
			if m.searchQuery != "" || m.confFilter != "" {
				m.clearFilters()
				m.setStatus("Filters cleared", 3*time.Second)
				return m, nil
			}
		case "n": // next CERTAIN
			if !m.showEmpty {
				if m.jumpToConfidence(types.Certain, 1) {
					m.updateViewportContent()
				} else {
					m.setStatus("No more CERTAIN findings", 2*time.Second)
				}
				return m, nil
			}
		case "N": // prev CERTAIN
			if !m.showEmpty {
				if m.jumpToConfidence(types.Certain, -1) {
					m.updateViewportContent()
				} else {
					m.setStatus("No more CERTAIN findings", 2*time.Second)
				}
				return m, nil
			}
		case "v":
			m.prefs.HideSecrets = !m.prefs.HideSecrets
			_ = SavePrefs(m.prefs)
			m.updateViewportContent()
			if m.prefs.HideSecrets {
				m.setStatus("Values hidden", 2*time.Second)
			} else {
				m.setStatus("Values revealed (v to hide)", 2*time.Second)
			}
			return m, nil
		case "y": // copy value
			if !m.showEmpty {
				return m, m.copyValueToClipboard()
			}
		case "Y": // copy finding
			if !m.showEmpty {
				return m, m.copyFindingToClipboard()
			}
		case "p": // copy path
			if !m.showEmpty {
				return m, m.copyPathToClipboard()
			}
		case "e": // export
			if len(m.displayFindings()) > 0 {
				m.showExportMenu = true
				return m, nil
			}
		case "+", "=":
			if !m.showEmpty {
				if m.prefs.ContextLines < 10 {
					m.prefs.ContextLines++
					_ = SavePrefs(m.prefs)
				}
				m.updateViewportContent()
				m.setStatus(fmt.Sprintf("Context: %d lines", m.prefs.ContextLines*2+1), 2*time.Second)
				return m, nil
			}
		case "-", "_":
			if !m.showEmpty {
				if m.prefs.ContextLines > 0 {
					m.prefs.ContextLines--
					_ = SavePrefs(m.prefs)
				}
				m.updateViewportContent()
				m.setStatus(fmt.Sprintf("Context: %d lines", m.prefs.ContextLines*2+1), 2*time.Second)
				return m, nil
			}
		case "r":
			if m.rescanFunc == nil {
				m.setStatus("Rescan not available", 3*time.Second)
				return m, nil
			}
			if !m.scanning {
				m.scanning = true
				m.statusMessage = "Rescanning..."
				return m, m.rescan()
			}
		case "?", "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "down", "j", "up", "k":
			if !m.showEmpty {
				m.table, cmd = m.table.Update(msg)
				m.updateViewportContent()
				return m, cmd
			}
		case "ctrl+d":
			if !m.showEmpty {
				half := m.table.Height() / 2
				if half < 1 {
					half = 1
				}
				m.table.MoveDown(half)
				m.updateViewportContent()
				return m, nil
			}
		case "ctrl+u":
			if !m.showEmpty {
				half := m.table.Height() / 2
				if half < 1 {
					half = 1
				}
				m.table.MoveUp(half)
				m.updateViewportContent()
				return m, nil
			}
		case "g", "home":
			if !m.showEmpty {
				m.table.GotoTop()
				m.updateViewportContent()
				return m, nil
			}
		case "G", "end":
			if !m.showEmpty {
				m.table.GotoBottom()
				m.updateViewportContent()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		usableWidth := m.width - 12
		confWidth := 10
		providerWidth := 14
		scannerWidth := 14
		remaining := usableWidth - confWidth - providerWidth - scannerWidth
		locWidth := int(float64(remaining) * 0.6)
		keyWidth := remaining - locWidth
		if locWidth < 25 {
			locWidth = 25
		}
		if keyWidth < 16 {
			keyWidth = 16
		}

		cols := m.table.Columns()
		cols[0].Width = confWidth
		cols[1].Width = providerWidth
		cols[2].Width = scannerWidth
		cols[3].Width = locWidth
		cols[4].Width = keyWidth
		m.table.SetColumns(cols)

		statsHeaderHeight := 1
		availableHeight := m.height - lipgloss.Height(statusStyle.Render("")) - statsHeaderHeight
		tableHeight := int(float64(availableHeight) * 0.45)
		viewportHeight := availableHeight - tableHeight - detailPaneBorderStyle.GetVerticalFrameSize() - 1

		m.table.SetWidth(m.width)
		m.table.SetHeight(tableHeight)

		if m.viewport.Height == 0 {
			m.viewport = viewport.New(m.width, viewportHeight)
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
		statusStyle = statusStyle.Width(m.width)

	case findingsMsg:
		m.findings = msg
		m.lastScanTime = time.Now()
		m.scanning = false
		m.applyFilter()
		if len(m.findings) == 0 {
			m.setStatus("Rescan complete - no credentials found", 5*time.Second)
		} else {
			m.setStatus(fmt.Sprintf("Rescan complete - %d findings", len(m.findings)), 5*time.Second)
		}

	case scanErrMsg:
		m.scanning = false
		m.setStatus(fmt.Sprintf("Scan error: %v", msg.err), 5*time.Second)

	case statusMsg:
		m.setStatus(string(msg), 3*time.Second)

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		if m.statusTimeout != nil && time.Now().After(*m.statusTimeout) {
			m.statusTimeout = nil
			m.resetStatus()
		}
		return m, spinCmd
	}

	return m, cmd
}

func (m *Model) updateViewportContent() {
	findings := m.displayFindings()
	if len(findings) == 0 || !m.ready {
		m.viewport.SetContent("")
		return
	}
	f := m.currentFinding()
	if f == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", titleStyle.Render("Finding Details")))

	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Provider:"), f.Provider))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Scanner:"), f.Scanner))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Confidence:"), styleConfidence(f.Confidence)))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Key:"), f.KeyName))
	b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Path:"), f.Path))
	if f.Line > 0 {
		b.WriteString(fmt.Sprintf("%s %d\n", keyStyle.Render("Line:"), f.Line))
	}

	valueHint := ""
	if m.prefs.HideSecrets {
		valueHint = hintStyle.Render(" (v to reveal)")
	}
	b.WriteString(fmt.Sprintf("%s %s%s\n", keyStyle.Render("Value:"), valueStyle.Render(m.displayValue(*f)), valueHint))

	if f.Line > 0 {
		contextHint := fmt.Sprintf(" (+/- to expand, showing %d lines)", m.prefs.ContextLines*2+1)
		b.WriteString(fmt.Sprintf("\n%s%s\n", keyStyle.Render("Context:"), hintStyle.Render(contextHint)))
		b.WriteString(m.renderContext(*f))
	}

	m.viewport.SetContent(b.String())
}

func styleConfidence(c types.Confidence) string {
	switch c {
	case types.Certain:
		return confCertainStyle.Render(string(c))
	case types.Likely:
		return confLikelyStyle.Render(string(c))
	default:
		return confPossibleStyle.Render(string(c))
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	if m.scanning {
		msgContent := fmt.Sprintf("%s  Rescanning...\n\nPlease wait", m.spinner.View())
		popupBox := popupStyle.
			Width(55).
			Align(lipgloss.Center).
			Render(msgContent)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popupBox)
	}

	if m.showHelp {
		return m.helpView()
	}

	findings := m.displayFindings()
	var certain, likely, possible int
	for _, f := range findings {
		switch f.Confidence {
		case types.Certain:
			certain++
		case types.Likely:
			likely++
		default:
			possible++
		}
	}

	var statsContent string
	if len(m.findings) == 0 {
		statsContent = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("[OK] No credentials detected")
	} else {
		var filterInfo string
		if m.searchQuery != "" || m.confFilter != "" {
			var parts []string
			if m.searchQuery != "" {
				parts = append(parts, fmt.Sprintf("search:'%s'", m.searchQuery))
			}
			if m.confFilter != "" {
				parts = append(parts, fmt.Sprintf("conf:%s", confidenceText(m.confFilter)))
			}
			filterInfo = fmt.Sprintf("  [FILTER: %s]", strings.Join(parts, ", "))
		}
		revealInfo := ""
		if !m.prefs.HideSecrets {
			revealInfo = "  [REVEALED]"
		}

		if m.filteredFindings != nil {
			statsContent = fmt.Sprintf(
				"Showing: %d/%d  |  %s %-4d  |  %s %-4d  |  %s %-4d%s%s",
				len(findings), len(m.findings),
				confCertainStyle.Render("Certain:"), certain,
				confLikelyStyle.Render("Likely:"), likely,
				confPossibleStyle.Render("Possible:"), possible,
				filterInfo, revealInfo,
			)
		} else {
			statsContent = fmt.Sprintf(
				"Total: %-4d  |  %s %-4d  |  %s %-4d  |  %s %-4d%s",
				len(m.findings),
				confCertainStyle.Render("Certain:"), certain,
				confLikelyStyle.Render("Likely:"), likely,
				confPossibleStyle.Render("Possible:"), possible,
				revealInfo,
			)
		}
	}

	statsHeader := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 2).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("237")).
		Render(statsContent)

	tableRender := tableBorderStyle.
		Width(m.width).
		Height(m.table.Height()).
		Render(m.table.View())

	var detailContent string
	if len(findings) == 0 {
		var emptyMsg string
		if len(m.findings) == 0 {
			emptyMsg = "No credentials to review.\n\nPress 'r' to rescan\nPress '?' for help"
		} else {
			emptyMsg = "No findings match filter.\n\nPress 'Esc' to clear filter"
		}
		detailContent = lipgloss.Place(
			m.width,
			m.viewport.Height,
			lipgloss.Center,
			lipgloss.Center,
			emptyTextStyle.Render(emptyMsg),
		)
	} else {
		detailContent = m.viewport.View()
	}

	detailRender := detailPaneBorderStyle.
		Width(m.width).
		Height(m.viewport.Height).
		Render(detailContent)

	var timeInfo string
	if !m.lastScanTime.IsZero() {
		timeInfo = fmt.Sprintf("Scanned: %s ago", formatDuration(time.Since(m.lastScanTime)))
	}

	statusLeft := m.statusMessage
	leftWidth := lipgloss.Width(statusLeft)
	rightWidth := lipgloss.Width(timeInfo)
	spacer := m.width - 4 - leftWidth - rightWidth
	if spacer < 1 {
		spacer = 1
	}
	statusContent := statusLeft
	if timeInfo != "" {
		statusContent = statusLeft + strings.Repeat(" ", spacer) + timeInfo
	}

	statusRender := statusStyle.
		Width(m.width).
		Padding(0, 2).
		Render(statusContent)

	var bottomBar string
	if m.searchMode {
		matchCount := len(m.displayFindings())
		searchBarStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("15")).
			Width(m.width).
			Padding(0, 1)
		bottomBar = searchBarStyle.Render(m.searchInput.View() + fmt.Sprintf(" (%d matches)", matchCount))
	} else {
		bottomBar = statusRender
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		statsHeader,
		tableRender,
		detailRender,
		bottomBar,
	)

	if m.showExportMenu {
		menu := popupStyle.Width(40).Render(
			titleStyle.Render("Export findings") + "\n\n" +
				"  1  JSON\n" +
				"  2  NDJSON\n" +
				"  3  SARIF\n\n" +
				hintStyle.Render("Esc to cancel"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, menu)
	}

	return mainView
}

func (m Model) helpView() string {
	boldTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyColor := lipgloss.Color("10")
	descColor := lipgloss.Color("250")

	formatRow := func(key, desc string) string {
		keyStyled := lipgloss.NewStyle().Foreground(keyColor).Render(key)
		descStyled := lipgloss.NewStyle().Foreground(descColor).Render(desc)
		padding := 12 - len(key)
		if padding < 1 {
			padding = 1
		}
		return "  " + keyStyled + strings.Repeat(" ", padding) + descStyled
	}

	var lines []string
	lines = append(lines, boldTitle.Render("Keyboard Shortcuts"))
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Navigation"))
	lines = append(lines, formatRow("j / k", "Move down / up"))
	lines = append(lines, formatRow("Ctrl+d/u", "Half-page down / up"))
	lines = append(lines, formatRow("g / G", "First / last row"))
	lines = append(lines, formatRow("n / N", "Next / prev CERTAIN finding"))
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Search & Filter"))
	lines = append(lines, formatRow("/", "Search findings"))
	lines = append(lines, formatRow("1 / 2 / 3", "Filter CERTAIN / LIKELY / POSSIBLE"))
	lines = append(lines, formatRow("Esc", "Clear filters"))
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Values"))
	lines = append(lines, formatRow("v", "Reveal / hide values"))
	lines = append(lines, formatRow("y / Y", "Copy value / full finding"))
	lines = append(lines, formatRow("p", "Copy file path"))
	lines = append(lines, formatRow("+ / -", "Expand / contract context"))
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Actions"))
	lines = append(lines, formatRow("e", "Export (JSON/NDJSON/SARIF)"))
	lines = append(lines, formatRow("r", "Rescan"))
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Other"))
	lines = append(lines, formatRow("?", "Toggle help"))
	lines = append(lines, formatRow("q", "Quit"))

	help := popupStyle.Width(50).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
}

// readFileContext returns up to contextLines lines around the target line
// (1-based) along with the number of the first returned line.
func readFileContext(path string, line, contextLines int) ([]string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	all := strings.Split(string(data), "\n")

	start := line - 1 - contextLines
	if start < 0 {
		start = 0
	}
	end := line + contextLines
	if end > len(all) {
		end = len(all)
	}
	if start >= end {
		return nil, 0, fmt.Errorf("line %d out of range", line)
	}
	return all[start:end], start + 1, nil
}
