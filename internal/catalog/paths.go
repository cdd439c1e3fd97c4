package catalog

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Cleaner converts filesystem paths into canonical, URL-safe strings
// relative to the library root. The cleaned form doubles as the link target
// in generated HTML and as the cache key for thumbnail filenames, so it must
// be deterministic for a given input path.
type Cleaner struct {
	base string // absolute library root
}

// NewCleaner returns a Cleaner anchored at baseDir. If baseDir cannot be
// resolved to an absolute path it is used as given.
func NewCleaner(baseDir string) *Cleaner {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		abs = baseDir
	}
	return &Cleaner{base: abs}
}

// Base returns the absolute library root the Cleaner resolves against.
func (c *Cleaner) Base() string {
	return c.base
}

// Clean resolves path against the library root and returns a
// slash-separated, percent-encoded relative path. Paths outside the root
// keep their absolute form, minus the leading slash. Resolution failures
// degrade to the least-normalized form that still makes a valid URL path;
// Clean never fails.
func (c *Cleaner) Clean(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if rel, err := filepath.Rel(c.base, abs); err == nil && !isOutside(rel) {
		abs = rel
	}
	s := filepath.ToSlash(abs)
	s = strings.TrimPrefix(s, "/")
	return escapePath(s)
}

// isOutside reports whether a relative path escapes the directory it is
// relative to.
func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// escapePath percent-encodes each path segment, leaving separators intact.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
