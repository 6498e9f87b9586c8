// internal/report/sarif.go
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/aicred/aicred/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt     `json:"artifactLocation"`
	Region           *sarifRegion `json:"region,omitempty"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

func confToLevel(c types.Confidence) string {
	switch c {
	case types.Certain:
		return "error"
	case types.Likely:
		return "warning"
	default:
		return "note"
	}
}

// fingerprint identifies a finding across runs without exposing the raw
// value. It hashes the redacted value, so full and masked scans of the
// same key produce different prints; consumers should fingerprint the
// default (masked) output.
func fingerprint(f types.Finding) string {
	h := xxhash.New()
	h.WriteString(f.Provider)
	h.WriteString("\x00")
	h.WriteString(f.Path)
	h.WriteString("\x00")
	h.WriteString(f.KeyName)
	h.WriteString("\x00")
	h.WriteString(f.Value)
	return fmt.Sprintf("%016x", h.Sum64())
}

// WriteSARIF writes findings as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, findings []types.Finding, version string) error {
	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: "aicred", Version: version}},
		Results: []sarifResult{},
	}
	for _, f := range findings {
		var region *sarifRegion
		if f.Line > 0 {
			region = &sarifRegion{StartLine: f.Line}
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:  f.Provider,
			Level:   confToLevel(f.Confidence),
			Message: sarifMessage{Text: f.Provider + " credential in " + f.KeyName + " (via " + f.Scanner + ")"},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: f.Path},
					Region:           region,
				},
			}},
			PartialFingerprints: map[string]string{
				"aicred/v1": fingerprint(f),
			},
		})
	}
	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
