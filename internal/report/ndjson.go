package report

import (
	"encoding/json"
	"io"

	"github.com/aicred/aicred/internal/types"
)

// WriteNDJSON writes one finding per line as a JSON object. The stream
// form suits piping into jq or log collectors.
func WriteNDJSON(w io.Writer, findings []types.Finding) error {
	enc := json.NewEncoder(w)
	for _, f := range findings {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}
