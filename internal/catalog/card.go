package catalog

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// rawSuffix marks download links so forges serve the file itself rather
// than a rendered page for it.
const rawSuffix = "?raw=true"

// buildCard renders one document card: a primary download link wrapping the
// thumbnail and display name, plus at most one link per export family found
// next to the document. A missing sibling simply omits its link.
func (b *Builder) buildCard(docPath string) string {
	if _, err := os.Stat(docPath); err != nil {
		return ""
	}

	base := strings.TrimSuffix(docPath, filepath.Ext(docPath))
	name := filepath.Base(base)

	b.current++
	b.reporter.Update(b.current, name)

	icon := b.thumbs.IconFor(docPath)
	fileURL := b.cfg.BaseURL + b.cleaner.Clean(docPath) + rawSuffix

	var sb strings.Builder
	sb.WriteString(`<div class="card">`)
	fmt.Fprintf(&sb, `<a title="FCSTD version" href="%s">`, fileURL)
	fmt.Fprintf(&sb, `<img class="icon" src="%s"/>`, icon)
	fmt.Fprintf(&sb, `<div class="name">%s</div>`, html.EscapeString(name))
	sb.WriteString(`</a>`)
	sb.WriteString(`<div class="links">`)
	for _, fam := range Families {
		for _, ext := range fam.Exts {
			sibling := base + ext
			if _, err := os.Stat(sibling); err != nil {
				continue
			}
			extURL := b.cfg.BaseURL + b.cleaner.Clean(sibling) + rawSuffix
			fmt.Fprintf(&sb, ` <a href="%s" title="%s version">`, extURL, fam.Name)
			fmt.Fprintf(&sb, `<img src="%s"/>`, b.iconURL(fam.Icon))
			sb.WriteString(`</a>`)
			break
		}
	}
	sb.WriteString(`</div>`)
	sb.WriteString("</div>\n")

	b.stats.Cards++
	b.index = append(b.index, SearchEntry{
		Name: name,
		Dir:  filepath.ToSlash(relOrSelf(b.cleaner.Base(), filepath.Dir(docPath))),
		Href: fileURL,
	})
	return sb.String()
}

// relOrSelf returns path relative to root, or path unchanged when it cannot
// be made relative.
func relOrSelf(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
