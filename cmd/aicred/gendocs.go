package aicred

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aicred/aicred/internal/registry"
)

// gendocs regenerates the scanner coverage section in README.md between
// the markers <!-- BEGIN:SCANNERS --> and <!-- END:SCANNERS -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README scanner coverage table",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:SCANNERS -->")
			end := []byte("<!-- END:SCANNERS -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			var out strings.Builder
			out.WriteString("| Scanner | Tool | Providers | Looks at |\n")
			out.WriteString("|---------|------|-----------|----------|\n")
			for _, s := range registry.Default().Scanners() {
				// Render candidate paths relative to a literal ~ so the
				// table stays machine-independent.
				cands := s.Candidates("~")
				for k := range cands {
					cands[k] = "`" + cands[k] + "`"
				}
				out.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
					s.Name(), s.App(), strings.Join(s.Providers(), ", "), strings.Join(cands, ", ")))
			}

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(start)
			nb.WriteString("\n")
			nb.WriteString(out.String())
			nb.Write(end)
			nb.Write(b[j+len(end):])
			return os.WriteFile(path, nb.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}
