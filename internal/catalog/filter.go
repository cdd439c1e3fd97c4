package catalog

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// entryFilter decides which directory entries stay out of the catalog:
// hidden entries, reserved directory names, and user-configured glob
// patterns.
type entryFilter struct {
	reserved map[string]bool
	exclude  []string
}

// newEntryFilter builds a filter that always skips the thumbnail directory
// plus any entry matching one of the exclude globs.
func newEntryFilter(thumbDir string, exclude []string) *entryFilter {
	return &entryFilter{
		reserved: map[string]bool{thumbDir: true},
		exclude:  exclude,
	}
}

// Skip reports whether the entry with the given base name and root-relative
// path should be left out of the catalog.
func (f *entryFilter) Skip(name, relPath string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if f.reserved[name] {
		return true
	}
	return matchesAny(relPath, f.exclude)
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also matches patterns against the
// bare filename, so "*.FCBak" excludes backups at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
