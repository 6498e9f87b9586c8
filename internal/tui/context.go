package tui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/aicred/aicred/internal/redact"
	"github.com/aicred/aicred/internal/types"
)

// renderContext renders the source lines around a finding with syntax
// highlighting. While values are hidden the credential is masked in the
// raw text before highlighting, so it never reaches the screen.
func (m Model) renderContext(f types.Finding) string {
	lines, startLine, err := readFileContext(f.Path, f.Line, m.prefs.ContextLines)
	if err != nil {
		return hintStyle.Render("(source not readable)") + "\n"
	}

	currentLineStyle := lipgloss.NewStyle().Background(lipgloss.Color("236"))

	var b strings.Builder
	for i, line := range lines {
		lineNum := startLine + i
		if m.prefs.HideSecrets && f.Value != "" {
			line = strings.ReplaceAll(line, f.Value, redact.Mask(f.Value))
		}
		rendered := highlightLine(line, f.Path)
		lineNumStr := hintStyle.Render(fmt.Sprintf("%4d ", lineNum))

		if lineNum == f.Line {
			if !m.prefs.HideSecrets && f.Value != "" {
				rendered = strings.ReplaceAll(rendered, f.Value, valueStyle.Render(f.Value))
			}
			b.WriteString(lineNumStr + currentLineStyle.Render(rendered) + "\n")
		} else {
			b.WriteString(lineNumStr + rendered + "\n")
		}
	}
	return b.String()
}

func highlightLine(line string, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return line // No highlighting for unknown file types
	}

	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
