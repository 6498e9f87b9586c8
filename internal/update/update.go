// Package update checks GitHub releases for a newer aicred build. The
// answer is cached for a day so repeated scans stay off the network.
package update

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"

	"github.com/aicred/aicred/internal/config"
)

const (
	releaseURL    = "https://api.github.com/repos/aicred/aicred/releases/latest"
	cacheFileName = "update.json"
	cacheTTL      = 24 * time.Hour
)

type cache struct {
	LastChecked time.Time `json:"last_checked"`
	Latest      string    `json:"latest"`
}

func (c cache) fresh() bool {
	return c.Latest != "" && time.Since(c.LastChecked) <= cacheTTL
}

func cachePath() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, cacheFileName)
}

func readCache() cache {
	var c cache
	p := cachePath()
	if p == "" {
		return c
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return c
	}
	_ = json.Unmarshal(b, &c)
	return c
}

func writeCache(c cache) {
	p := cachePath()
	if p == "" {
		return
	}
	_ = os.MkdirAll(filepath.Dir(p), 0755)
	b, _ := json.MarshalIndent(c, "", "  ")
	_ = os.WriteFile(p, b, 0644)
}

// latestVersionOnline asks a GitHub releases endpoint for the newest tag.
// Some releases only carry a name, so that serves as the fallback.
func latestVersionOnline(url string) (string, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "aicred-updater")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var obj struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return "", err
	}
	if obj.TagName != "" {
		return obj.TagName, nil
	}
	return obj.Name, nil
}

// Check returns the latest released version and whether it is newer than
// current. CI environments and noNetwork skip the check entirely; outside
// the cache TTL a single request refreshes the cached answer, and a
// failing request falls back to whatever the cache still holds.
func Check(current string, noNetwork bool) (string, bool, error) {
	if noNetwork || os.Getenv("CI") != "" {
		return "", false, nil
	}
	c := readCache()
	if !c.fresh() {
		if v, err := latestVersionOnline(releaseURL); err == nil {
			c = cache{LastChecked: time.Now(), Latest: normalize(v)}
			writeCache(c)
		}
	}
	current = normalize(current)
	if c.Latest == "" || current == "" {
		return c.Latest, false, nil
	}
	return c.Latest, compare(c.Latest, current) > 0, nil
}

func normalize(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// compare returns 1 if a>b, -1 if a<b, 0 if equal. Dev builds and bare
// git revisions are not semver; those fall back to a lexical compare so
// the result stays deterministic.
func compare(a, b string) int {
	av, aerr := semver.ParseTolerant(a)
	bv, berr := semver.ParseTolerant(b)
	if aerr != nil || berr != nil {
		return strings.Compare(a, b)
	}
	return av.Compare(bv)
}
