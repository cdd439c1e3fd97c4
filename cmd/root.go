package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cadalog/cadalog/internal/config"
)

var (
	cfgFile string
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cadalog",
	Short: "Static HTML catalog generator for FreeCAD part libraries",
	Long: `Cadalog walks a directory tree of FreeCAD documents, extracts their
embedded thumbnails, and renders a single static HTML page with expandable
sections per directory and download links for STEP, BREP, and STL exports
found next to each document.

Running cadalog with no arguments builds the catalog in the current
directory.`,
	// Bare invocation builds the catalog.
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".cadalog.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
}

// loadConfig reads and validates the configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
