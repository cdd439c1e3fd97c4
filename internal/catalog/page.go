package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder tokens substituted into the page template. The template is
// treated as opaque text; tokens are plain substrings, never parsed markup.
const (
	tokenContents     = "<!--contents-->"
	tokenTitle        = "<!--title-->"
	tokenListIcon     = "<!--listicon-->"
	tokenGridIcon     = "<!--gridicon-->"
	tokenCollapseIcon = "<!--collapseicon-->"
	tokenExpandIcon   = "<!--expandicon-->"
)

// assemblePage substitutes the rendered content and icon paths into the
// page template. When the configured template file cannot be read the
// embedded default template is used, so assembly always succeeds.
func (b *Builder) assemblePage(content string) string {
	tmpl := defaultTemplate
	tmplPath := b.cfg.TemplateFile
	if !filepath.IsAbs(tmplPath) {
		tmplPath = filepath.Join(b.cleaner.Base(), tmplPath)
	}
	if data, err := os.ReadFile(tmplPath); err == nil {
		tmpl = string(data)
	} else if !os.IsNotExist(err) {
		fmt.Fprintf(b.log, "Cannot read template %s: %v (using built-in template)\n", tmplPath, err)
		b.stats.Errors++
	}

	page := strings.ReplaceAll(tmpl, tokenContents, content)
	page = strings.ReplaceAll(page, tokenTitle, b.cfg.Title)
	page = strings.ReplaceAll(page, tokenListIcon, b.iconURL(listIconName))
	page = strings.ReplaceAll(page, tokenGridIcon, b.iconURL(gridIconName))
	page = strings.ReplaceAll(page, tokenCollapseIcon, b.iconURL(collapseIconName))
	page = strings.ReplaceAll(page, tokenExpandIcon, b.iconURL(expandIconName))
	return page
}

// writeFileAtomic writes data through a temp file in the destination
// directory and renames it into place, so an interrupted build leaves the
// previous page intact rather than a half-written one.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cadalog-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
