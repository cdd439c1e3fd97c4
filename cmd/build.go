package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadalog/cadalog/internal/catalog"
	"github.com/cadalog/cadalog/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the catalog page",
	Long: `Build walks the library, extracts thumbnails into the thumbnail
directory, and writes the catalog page. Unreadable directories and broken
documents are skipped with a note; the build always produces a best-effort
page for everything it could reach.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	builder := catalog.NewBuilder(cfg, progress.NewReporter(quiet), os.Stdout)
	stats, err := builder.Build()
	if err != nil {
		return err
	}

	fmt.Printf("%d cards in %d sections, %d thumbnails extracted",
		stats.Cards, stats.Sections, stats.Thumbnails)
	if stats.Errors > 0 {
		fmt.Printf(", %d problems skipped", stats.Errors)
	}
	fmt.Println()
	return nil
}
