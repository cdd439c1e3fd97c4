package catalog

import (
	"fmt"
	"html"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// maxDepth bounds the recursion so that a symlink cycle in the library
// cannot hang the build. It sits below the kernel's symlink resolution
// limit (40 on Linux), so a cycle is cut off here and reported rather than
// dying silently in path lookups. Real part libraries are a handful of
// levels deep.
const maxDepth = 32

// buildTree walks one directory and renders its section: title, optional
// README, subdirectory sections (depth first), then the directory's own
// cards. The root (level 1) contributes no title or wrapper of its own.
func (b *Builder) buildTree(dir string, level int) string {
	title := b.buildTitle(dir, level)

	if level > maxDepth {
		fmt.Fprintf(b.log, "Skipping %s: maximum nesting depth reached\n", dir)
		b.stats.Errors++
		return title
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(b.log, "Cannot access %s: %v\n", dir, err)
		b.stats.Errors++
		return title
	}

	var sb strings.Builder
	sb.WriteString(title)
	if level > 1 {
		sb.WriteString("<div class=\"collapsable hidden\">\n")
		b.stats.Sections++
	}

	if readme := b.renderReadme(dir); readme != "" {
		sb.WriteString(readme)
	}

	// ReadDir returns entries sorted by name, so the partitions stay sorted.
	var dirs, files []string
	for _, e := range entries {
		name := e.Name()
		full := filepath.Join(dir, name)
		rel, relErr := filepath.Rel(b.cleaner.Base(), full)
		if relErr != nil {
			rel = name
		}
		if b.filter.Skip(name, rel) {
			continue
		}
		switch {
		case isDir(e, full):
			dirs = append(dirs, name)
		case strings.EqualFold(filepath.Ext(name), DocExt):
			files = append(files, name)
		}
	}

	for _, d := range dirs {
		sb.WriteString(b.buildTree(filepath.Join(dir, d), level+1))
	}

	if len(files) > 0 {
		sb.WriteString("<div class=\"cards\">\n")
		for _, f := range files {
			sb.WriteString(b.buildCard(filepath.Join(dir, f)))
		}
		sb.WriteString("</div>\n")
	}

	if level > 1 {
		sb.WriteString("</div>\n")
	}
	return sb.String()
}

// buildTitle renders the clickable section title for a directory. Heading
// levels track nesting depth up to h6; deeper titles fall back to a styled
// div since HTML headings stop there. The root has no title so the page
// does not start with a redundant wrapper.
func (b *Builder) buildTitle(dir string, level int) string {
	if level == 1 {
		return ""
	}
	label := fmt.Sprintf(`<img class="hicon" src="%s"/>%s`,
		b.iconURL(collapseIconName), html.EscapeString(filepath.Base(dir)))
	if level < 7 {
		return fmt.Sprintf("<h%d onclick=\"collapse(this.children[0])\">%s</h%d>\n", level, label, level)
	}
	return fmt.Sprintf("<div class=\"h%d\" onclick=\"collapse(this.children[0])\">%s</div>\n", level, label)
}

// isDir reports whether a directory entry is a directory, following
// symlinks so that linked-in subtrees get cataloged. Cycles through links
// are cut off by maxDepth.
func isDir(e os.DirEntry, full string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

// iconURL returns the catalog-relative URL of a stock icon.
func (b *Builder) iconURL(name string) string {
	return escapePath(path.Join(b.cfg.ThumbDir, name))
}
