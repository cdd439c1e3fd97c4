package config

// DefaultExcludes are glob patterns excluded from the catalog by default.
// The thumbnail directory is always excluded regardless of this list.
var DefaultExcludes = []string{
	".git/**",
	"*.FCStd1",
	"*.FCBak",
}

// DefaultConfig returns a Config with sensible defaults. They reproduce the
// layout of a typical parts-library repository: the catalog is built from the
// working directory into index.html, with thumbnails/ as the image cache.
func DefaultConfig() *Config {
	return &Config{
		LibraryDir:   ".",
		BaseURL:      "",
		Title:        "Parts Library",
		OutputFile:   "index.html",
		TemplateFile: "index_template.html",
		ThumbDir:     "thumbnails",
		ThumbSize:    0,
		Exclude:      DefaultExcludes,
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}
