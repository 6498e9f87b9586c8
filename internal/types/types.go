package types

// Confidence grades how strongly a discovered value matches a provider
// signature. Certain means both the key name and the value shape matched;
// Likely means only the value shape matched; Possible means only a generic
// heuristic fired.
type Confidence string

const (
	Certain  Confidence = "Certain"
	Likely   Confidence = "Likely"
	Possible Confidence = "Possible"
)

// Rank orders confidences for threshold filtering. Higher is stronger.
// Unknown values rank zero.
func (c Confidence) Rank() int {
	switch c {
	case Certain:
		return 3
	case Likely:
		return 2
	case Possible:
		return 1
	default:
		return 0
	}
}

// Finding is one discovered credential or configuration reference.
// A Finding is immutable once constructed; redaction produces a new value.
type Finding struct {
	Provider   string     `json:"provider"`
	Scanner    string     `json:"scanner"`
	Path       string     `json:"file_path"`
	KeyName    string     `json:"key_name"`
	Value      string     `json:"value"`
	Confidence Confidence `json:"confidence"`
	Line       int        `json:"line,omitempty"` // 1-based, 0 when unknown
}

// WithValue returns a copy of f carrying the given value. Used by the
// engine to swap in the redacted form without mutating the original.
func (f Finding) WithValue(v string) Finding {
	f.Value = v
	return f
}

// ScanError records a non-fatal per-file failure. The scan continues past it.
type ScanError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
