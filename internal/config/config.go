package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CADALOG_*). A missing config file is not
// an error; defaults plus environment are used.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CADALOG_BASE_URL -> base_url, etc.
	if err := k.Load(env.Provider("CADALOG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CADALOG_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.LibraryDir == "" {
		return fmt.Errorf("library_dir is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if c.ThumbDir == "" {
		return fmt.Errorf("thumb_dir is required")
	}
	if strings.ContainsAny(c.ThumbDir, `/\`) {
		return fmt.Errorf("thumb_dir must be a plain directory name, got %q", c.ThumbDir)
	}
	if c.ThumbSize < 0 {
		return fmt.Errorf("thumb_size must be non-negative")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}
	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("base_url must end with a slash, got %q", c.BaseURL)
	}
	return nil
}
