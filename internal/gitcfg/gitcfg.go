// Package gitcfg pulls credential material out of git's own configuration:
// the url-per-line ~/.git-credentials store and gitconfig-format files.
package gitcfg

import (
	"bufio"
	"bytes"
	"net/url"
	"regexp"
	"strings"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// Credential is one username/secret pair recovered from git configuration.
type Credential struct {
	Host     string
	Username string
	Secret   string
	Line     int // 1-based; 0 when the source format has no line info
}

// Option is a flattened gitconfig entry: section[.subsection].name = value.
type Option struct {
	Key   string
	Value string
}

var reURLCred = regexp.MustCompile(`https?://([^:/\s]+):([^@\s]+)@([^/\s"']+)`)

// ParseCredentialStore reads the url-per-line format git credential-store
// writes. Lines without an embedded password are skipped.
func ParseCredentialStore(data []byte) []Credential {
	var out []Credential
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		t := strings.TrimSpace(sc.Text())
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		u, err := url.Parse(t)
		if err != nil || u.User == nil {
			continue
		}
		pass, ok := u.User.Password()
		if !ok || pass == "" {
			continue
		}
		out = append(out, Credential{
			Host:     u.Host,
			Username: u.User.Username(),
			Secret:   pass,
			Line:     line,
		})
	}
	return out
}

// ParseConfig decodes gitconfig content and flattens every option in file
// order. Malformed content returns the decode error.
func ParseConfig(data []byte) ([]Option, error) {
	cfg := format.New()
	if err := format.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, err
	}
	var out []Option
	for _, s := range cfg.Sections {
		for _, o := range s.Options {
			out = append(out, Option{Key: s.Name + "." + o.Key, Value: o.Value})
		}
		for _, ss := range s.Subsections {
			for _, o := range ss.Options {
				out = append(out, Option{Key: s.Name + "." + ss.Name + "." + o.Key, Value: o.Value})
			}
		}
	}
	return out, nil
}

// CredentialInValue extracts an embedded user:secret@host triple from an
// option value, e.g. an [url] section rewrite target.
func CredentialInValue(v string) (Credential, bool) {
	m := reURLCred.FindStringSubmatch(v)
	if m == nil {
		return Credential{}, false
	}
	return Credential{Host: m[3], Username: m[1], Secret: m[2]}, true
}
