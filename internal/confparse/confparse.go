// Package confparse flattens the config formats AI tooling stores keys in
// (JSON, YAML, env/rc files) into key/value fields with line positions.
package confparse

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Field represents a simple key/value and the 1-based line number where the value appears.
type Field struct {
	Key   string
	Value string
	Line  int
}

// JSONFields extracts key/value pairs from JSON with line numbers.
// encoding/json carries no positions, but JSON is a YAML subset, so the
// content is validated with json.Unmarshal and walked as a yaml.Node tree.
// Invalid JSON returns nil.
func JSONFields(b []byte) []Field {
	var tmp any
	if err := json.Unmarshal(b, &tmp); err != nil {
		return nil
	}
	return YAMLFields(b)
}

// YAMLFields uses yaml.v3 which provides line numbers for nodes; we flatten
// simple scalars under dotted key paths.
func YAMLFields(b []byte) []Field {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil
	}
	var out []Field
	var walk func(n *yaml.Node, path []string)
	walk = func(n *yaml.Node, path []string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				k := n.Content[i]
				v := n.Content[i+1]
				walk(v, append(path, k.Value))
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.ScalarNode:
			if len(path) > 0 {
				out = append(out, Field{Key: strings.Join(path, "."), Value: n.Value, Line: n.Line})
			}
		}
	}
	walk(&root, nil)
	return out
}

// EnvFields extracts KEY=value pairs from env and rc style content.
// Leading "export " is stripped, as are single/double quotes around the
// value. Comment and blank lines are skipped.
func EnvFields(b []byte) []Field {
	var out []Field
	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		t := strings.TrimSpace(sc.Text())
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		t = strings.TrimPrefix(t, "export ")
		t = strings.TrimSpace(t)
		eq := strings.Index(t, "=")
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(t[:eq])
		if !validEnvKey(key) {
			continue
		}
		val := strings.TrimSpace(t[eq+1:])
		// drop a trailing comment on unquoted values
		if !strings.HasPrefix(val, "\"") && !strings.HasPrefix(val, "'") {
			if h := strings.Index(val, " #"); h >= 0 {
				val = strings.TrimSpace(val[:h])
			}
		}
		val = unquote(val)
		if val == "" {
			continue
		}
		out = append(out, Field{Key: key, Value: val, Line: line})
	}
	return out
}

func validEnvKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		ok := c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (i > 0 && c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return true
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
