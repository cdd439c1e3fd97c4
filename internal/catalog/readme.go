package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// readmeNames are the spellings probed for a per-directory description, in
// order of preference.
var readmeNames = []string{"README.md", "Readme.md", "readme.md"}

// renderReadme renders a directory's README into an HTML fragment shown at
// the top of its section, or "" when the directory has none. A README that
// fails to render is logged and skipped; it never breaks the section.
func (b *Builder) renderReadme(dir string) string {
	for _, name := range readmeNames {
		p := filepath.Join(dir, name)
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var buf bytes.Buffer
		if err := b.md.Convert(data, &buf); err != nil {
			fmt.Fprintf(b.log, "Cannot render %s: %v\n", p, err)
			b.stats.Errors++
			return ""
		}
		return "<div class=\"readme\">\n" + buf.String() + "</div>\n"
	}
	return ""
}
