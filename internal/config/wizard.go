package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. The caller is responsible for saving it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to cadalog! Let's configure your parts library.")
	fmt.Println()

	cfg := DefaultConfig()

	// Default the title to the working directory name.
	if wd, err := os.Getwd(); err == nil {
		cfg.Title = filepath.Base(wd)
	}

	dirPrompt := promptui.Prompt{
		Label:   "Library directory",
		Default: cfg.LibraryDir,
		Validate: func(s string) error {
			info, err := os.Stat(s)
			if err != nil {
				return fmt.Errorf("cannot access %s", s)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", s)
			}
			return nil
		},
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("library directory: %w", err)
	}
	cfg.LibraryDir = dir

	titlePrompt := promptui.Prompt{
		Label:   "Catalog title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog title: %w", err)
	}
	cfg.Title = title

	urlPrompt := promptui.Prompt{
		Label:   "Base URL for download links (empty for relative links)",
		Default: cfg.BaseURL,
		Validate: func(s string) error {
			if s != "" && !strings.HasSuffix(s, "/") {
				return fmt.Errorf("must end with a slash")
			}
			return nil
		},
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}
	cfg.BaseURL = baseURL

	sizePrompt := promptui.Prompt{
		Label:   "Max thumbnail size in pixels (0 keeps originals)",
		Default: strconv.Itoa(cfg.ThumbSize),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			return nil
		},
	}
	sizeStr, err := sizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("thumbnail size: %w", err)
	}
	cfg.ThumbSize, _ = strconv.Atoi(sizeStr)

	return cfg, nil
}
