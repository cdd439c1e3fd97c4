package catalog

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/nfnt/resize"
)

// thumbEntry is the fixed archive entry holding a document's preview image.
// FCStd files are zip containers; saving with "save thumbnail" enabled puts
// a PNG at this path.
const thumbEntry = "thumbnails/Thumbnail.png"

// defaultIconName is the fallback icon for documents without a preview.
const defaultIconName = "document.svg"

// ErrNoThumbnail is returned when a document archive is readable but holds
// no embedded preview image.
var ErrNoThumbnail = errors.New("document has no embedded thumbnail")

// ExtractThumbnail reads the embedded preview image out of a document
// archive. It returns ErrNoThumbnail when the archive has no preview entry,
// and the underlying error when the file cannot be read as an archive at
// all. Extraction is a pure read with no side effects.
func ExtractThumbnail(docPath string) ([]byte, error) {
	zr, err := zip.OpenReader(docPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != thumbEntry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, ErrNoThumbnail
}

// ThumbCache persists extracted thumbnails under deterministic hashed
// filenames so repeated builds overwrite images in place instead of
// accumulating new ones.
type ThumbCache struct {
	cleaner *Cleaner
	dir     string // thumbnail directory name under the library root
	maxSize int    // max pixel edge for stored thumbnails, 0 keeps originals
	log     io.Writer

	// Written and Failed count thumbnail writes over the cache's lifetime.
	Written int
	Failed  int
}

// NewThumbCache returns a cache writing into the dir subdirectory of the
// cleaner's library root. Recoverable errors are reported on log.
func NewThumbCache(cleaner *Cleaner, dir string, maxSize int, log io.Writer) *ThumbCache {
	return &ThumbCache{
		cleaner: cleaner,
		dir:     dir,
		maxSize: maxSize,
		log:     log,
	}
}

// IconFor runs the extraction pipeline for one document and returns the
// catalog-relative icon path to reference in HTML: the cached thumbnail when
// the document carries one, the default icon otherwise. Extraction and write
// failures are logged and degrade to the default icon; IconFor never fails.
func (t *ThumbCache) IconFor(docPath string) string {
	data, err := ExtractThumbnail(docPath)
	if err != nil {
		if !errors.Is(err, ErrNoThumbnail) {
			fmt.Fprintf(t.log, "Cannot extract icon from %s: %v\n", docPath, err)
		}
		return t.DefaultIcon()
	}

	if t.maxSize > 0 {
		data = downscale(data, t.maxSize)
	}

	name := t.hashName(docPath)
	outPath := filepath.Join(t.cleaner.Base(), t.dir, name)
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Fprintf(t.log, "Cannot write thumbnail for %s: %v\n", docPath, err)
		t.Failed++
		return t.DefaultIcon()
	}
	t.Written++
	return escapePath(path.Join(t.dir, name))
}

// DefaultIcon returns the catalog-relative path of the shared fallback icon.
func (t *ThumbCache) DefaultIcon() string {
	return escapePath(path.Join(t.dir, defaultIconName))
}

// hashName derives the cache filename for a document from its cleaned path.
// The digest keeps the name stable across runs and platforms, which is what
// makes re-runs overwrite instead of duplicate.
func (t *ThumbCache) hashName(docPath string) string {
	sum := sha256.Sum256([]byte(t.cleaner.Clean(docPath)))
	return hex.EncodeToString(sum[:]) + ".png"
}

// downscale re-encodes a PNG to fit within max pixels per edge. Bytes that
// do not decode pass through unchanged: a preview in an unexpected format is
// still better than the generic icon.
func downscale(data []byte, max int) []byte {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	bounds := img.Bounds()
	if bounds.Dx() <= max && bounds.Dy() <= max {
		return data
	}
	small := resize.Thumbnail(uint(max), uint(max), img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		return data
	}
	return buf.Bytes()
}
