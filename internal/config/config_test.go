package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() does not validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if cfg.ThumbDir != "thumbnails" {
		t.Errorf("ThumbDir = %q, want default %q", cfg.ThumbDir, "thumbnails")
	}
	if cfg.OutputFile != "index.html" {
		t.Errorf("OutputFile = %q, want default %q", cfg.OutputFile, "index.html")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".cadalog.yml")
	content := `library_dir: parts
base_url: "https://example.com/lib/blob/main/"
title: Example Library
thumb_size: 256
exclude:
  - "*.FCBak"
serve:
  port: 9000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LibraryDir != "parts" {
		t.Errorf("LibraryDir = %q, want %q", cfg.LibraryDir, "parts")
	}
	if cfg.BaseURL != "https://example.com/lib/blob/main/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Title != "Example Library" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.ThumbSize != 256 {
		t.Errorf("ThumbSize = %d, want 256", cfg.ThumbSize)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "*.FCBak" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.Serve.Port != 9000 {
		t.Errorf("Serve.Port = %d, want 9000", cfg.Serve.Port)
	}
	// Unset fields keep their defaults.
	if cfg.OutputFile != "index.html" {
		t.Errorf("OutputFile = %q, want default", cfg.OutputFile)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CADALOG_TITLE", "From Env")
	t.Setenv("CADALOG_THUMB_SIZE", "128")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Title != "From Env" {
		t.Errorf("Title = %q, want env override", cfg.Title)
	}
	if cfg.ThumbSize != 128 {
		t.Errorf("ThumbSize = %d, want env override 128", cfg.ThumbSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty library_dir", func(c *Config) { c.LibraryDir = "" }, true},
		{"empty output_file", func(c *Config) { c.OutputFile = "" }, true},
		{"empty thumb_dir", func(c *Config) { c.ThumbDir = "" }, true},
		{"nested thumb_dir", func(c *Config) { c.ThumbDir = "a/b" }, true},
		{"negative thumb_size", func(c *Config) { c.ThumbSize = -1 }, true},
		{"port out of range", func(c *Config) { c.Serve.Port = 70000 }, true},
		{"base_url without slash", func(c *Config) { c.BaseURL = "https://example.com" }, true},
		{"base_url with slash", func(c *Config) { c.BaseURL = "https://example.com/" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".cadalog.yml")

	cfg := DefaultConfig()
	cfg.Title = "Round Trip"
	cfg.ThumbSize = 300
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after Save() error: %v", err)
	}
	if loaded.Title != "Round Trip" {
		t.Errorf("Title = %q after round trip", loaded.Title)
	}
	if loaded.ThumbSize != 300 {
		t.Errorf("ThumbSize = %d after round trip", loaded.ThumbSize)
	}
}
