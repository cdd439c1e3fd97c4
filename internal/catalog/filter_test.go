package catalog

import "testing"

func TestEntryFilterSkip(t *testing.T) {
	f := newEntryFilter("thumbnails", []string{"*.FCBak", "Obsolete", "WIP/**"})

	tests := []struct {
		name    string
		relPath string
		want    bool
	}{
		{".git", ".git", true},
		{".DS_Store", "Tools/.DS_Store", true},
		{"thumbnails", "thumbnails", true},
		{"part.FCBak", "Tools/part.FCBak", true},
		{"Obsolete", "Obsolete", true},
		{"deep.FCStd", "WIP/deep.FCStd", true},
		{"part.FCStd", "Tools/part.FCStd", false},
		{"Tools", "Tools", false},
	}
	for _, tt := range tests {
		if got := f.Skip(tt.name, tt.relPath); got != tt.want {
			t.Errorf("Skip(%q, %q) = %v, want %v", tt.name, tt.relPath, got, tt.want)
		}
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		relPath  string
		patterns []string
		want     bool
	}{
		{"a/b/c.stl", []string{"**/*.stl"}, true},
		{"a/b/c.stl", []string{"*.stl"}, true}, // bare filename match
		{"a/b/c.stl", []string{"*.step"}, false},
		{"vendor/x.FCStd", []string{"vendor/**"}, true},
		{"anything", nil, false},
	}
	for _, tt := range tests {
		if got := matchesAny(tt.relPath, tt.patterns); got != tt.want {
			t.Errorf("matchesAny(%q, %v) = %v, want %v", tt.relPath, tt.patterns, got, tt.want)
		}
	}
}
