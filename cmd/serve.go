package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cadalog/cadalog/internal/catalog"
	"github.com/cadalog/cadalog/internal/progress"
	"github.com/cadalog/cadalog/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog locally",
	Long: `Serve starts a local HTTP server on the library directory so the
generated catalog can be browsed before publishing. With --watch the catalog
is rebuilt whenever library files change and connected browsers are told to
reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "rebuild and reload on library changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Serve.Port
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}
	open, _ := cmd.Flags().GetBool("open")
	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		watch = cfg.Serve.Watch
	}

	// Make sure there is a page to serve.
	indexPath := cfg.OutputFile
	if !filepath.IsAbs(indexPath) {
		indexPath = filepath.Join(cfg.LibraryDir, indexPath)
	}
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		fmt.Println("No catalog page found, building one first.")
		if err := runBuild(cmd, nil); err != nil {
			return err
		}
	}

	opts := site.Options{
		Dir:      cfg.LibraryDir,
		Port:     port,
		Open:     open || cfg.Serve.Open,
		AllowAll: cfg.Serve.AllowAll,
	}

	if watch {
		hub := site.NewReloadHub()
		opts.Hub = hub
		rebuild := func() error {
			builder := catalog.NewBuilder(cfg, progress.NewReporter(true), os.Stdout)
			_, err := builder.Build()
			return err
		}
		ignored := []string{cfg.ThumbDir, filepath.Base(cfg.OutputFile), "search-index.json"}
		watcher := site.NewWatcher(cfg.LibraryDir, ignored, rebuild, hub)
		go func() {
			if err := watcher.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "watcher stopped: %v\n", err)
			}
		}()
		fmt.Println("Watching for library changes.")
	}

	return site.Serve(opts)
}
