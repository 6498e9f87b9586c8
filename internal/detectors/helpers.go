package detectors

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/aicred/aicred/internal/types"
)

// maxScanLine keeps the line scanner working on minified single-line JSON.
const maxScanLine = 1 << 20

var (
	reLastIdent  = regexp.MustCompile(`[A-Za-z0-9_.\-]+$`)
	reSecretKey  = regexp.MustCompile(`(?i)(api[_-]?key|apikey|access[_-]?key|secret|token|passwd|password|credential)`)
	reURLValue   = regexp.MustCompile(`https?://[^\s"']+`)
)

// detectByMatch scans line-oriented content for valueRe hits, extracts the
// assignment key in front of each hit, and classifies the pair through the
// detector's own Match. Most Detect implementations share this loop.
func detectByMatch(d Detector, valueRe *regexp.Regexp, path string, data []byte) []types.Finding {
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), maxScanLine)
	line := 0
	for sc.Scan() {
		line++
		t := sc.Text()
		for _, m := range valueRe.FindAllString(t, -1) {
			key := lineKey(t, m)
			conf := d.Match(key, m)
			if conf == "" {
				continue
			}
			out = append(out, types.Finding{
				Provider:   d.Name(),
				Path:       path,
				KeyName:    key,
				Value:      m,
				Confidence: conf,
				Line:       line,
			})
		}
	}
	return out
}

// lineKey extracts the assignment key in front of value on a config line,
// e.g. `export OPENAI_API_KEY="sk-..."` or `"api_key": "sk-..."`.
func lineKey(line, value string) string {
	i := strings.Index(line, value)
	if i <= 0 {
		return ""
	}
	head := strings.TrimRight(line[:i], " \t")
	head = strings.TrimRight(head, `"'`)
	head = strings.TrimRight(head, " \t:=")
	head = strings.TrimRight(head, `"'`)
	return reLastIdent.FindString(head)
}

func keyMentions(key, s string) bool {
	return strings.Contains(strings.ToLower(key), s)
}
