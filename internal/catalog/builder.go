package catalog

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/cadalog/cadalog/internal/config"
	"github.com/cadalog/cadalog/internal/progress"
)

// Builder walks a parts library and renders the static HTML catalog.
// A Builder is single-use and not safe for concurrent use; the build is a
// strictly sequential depth-first pass.
type Builder struct {
	cfg      *config.Config
	cleaner  *Cleaner
	thumbs   *ThumbCache
	filter   *entryFilter
	reporter progress.Reporter
	log      io.Writer
	md       goldmark.Markdown

	stats   Stats
	current int
	index   []SearchEntry
}

// Stats summarizes one build.
type Stats struct {
	Cards      int // document cards rendered
	Sections   int // directory sections rendered (root excluded)
	Thumbnails int // thumbnail images written
	Errors     int // recoverable errors encountered
}

// NewBuilder wires up a Builder from the configuration. Recoverable errors
// during the build are reported on log; reporter receives per-card progress.
func NewBuilder(cfg *config.Config, reporter progress.Reporter, log io.Writer) *Builder {
	cleaner := NewCleaner(cfg.LibraryDir)
	return &Builder{
		cfg:      cfg,
		cleaner:  cleaner,
		thumbs:   NewThumbCache(cleaner, cfg.ThumbDir, cfg.ThumbSize, log),
		filter:   newEntryFilter(cfg.ThumbDir, cfg.Exclude),
		reporter: reporter,
		log:      log,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
		),
	}
}

// Build renders the catalog: stock icons, the card tree, the assembled page,
// and the search index. Per the tool's contract every traversal failure is
// recoverable, so Build returns an error only when the final outputs cannot
// be produced at all.
func (b *Builder) Build() (Stats, error) {
	root := b.cleaner.Base()

	if err := b.writeStockIcons(); err != nil {
		return b.stats, fmt.Errorf("preparing thumbnail directory: %w", err)
	}

	b.reporter.Start(b.countDocuments(root))
	content := b.buildTree(root, 1)
	b.reporter.Finish()

	page := b.assemblePage(content)
	outPath := b.cfg.OutputFile
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(root, outPath)
	}
	if err := writeFileAtomic(outPath, []byte(page)); err != nil {
		return b.stats, fmt.Errorf("writing %s: %w", outPath, err)
	}

	indexPath := filepath.Join(filepath.Dir(outPath), "search-index.json")
	if err := WriteSearchIndex(b.index, indexPath); err != nil {
		fmt.Fprintf(b.log, "Cannot write search index: %v\n", err)
		b.stats.Errors++
	}

	b.stats.Thumbnails = b.thumbs.Written
	b.stats.Errors += b.thumbs.Failed
	fmt.Fprintf(b.log, "Saving %s ... All done!\n", outPath)
	return b.stats, nil
}

// countDocuments walks the library once to size the progress bar. Errors
// here are ignored, and unlike buildTree the walk does not follow
// directory symlinks, so linked-in subtrees are missing from the total.
// An undercounted bar only affects display.
func (b *Builder) countDocuments(root string) int {
	total := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if b.filter.Skip(d.Name(), rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), DocExt) {
			total++
		}
		return nil
	})
	return total
}
