package catalog

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cadalog/cadalog/internal/config"
	"github.com/cadalog/cadalog/internal/progress"
)

// newTestBuilder returns a Builder over root with defaults, silent progress,
// and discarded logs.
func newTestBuilder(t *testing.T, root string) *Builder {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.LibraryDir = root
	return NewBuilder(cfg, &progress.QuietReporter{}, io.Discard)
}

// writeFCStd writes a zip container at path. If thumb is non-nil it is
// stored under the document's preview entry name.
func writeFCStd(t *testing.T, path string, thumb []byte) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// Every real document carries at least its main XML entry.
	doc, err := zw.Create("Document.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	if _, err := doc.Write([]byte("<Document/>")); err != nil {
		t.Fatalf("writing zip entry: %v", err)
	}

	if thumb != nil {
		tw, err := zw.Create(thumbEntry)
		if err != nil {
			t.Fatalf("creating thumbnail entry: %v", err)
		}
		if _, err := tw.Write(thumb); err != nil {
			t.Fatalf("writing thumbnail entry: %v", err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// touch creates an empty file at path, making parent directories as needed.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

// makePNG encodes a solid-color PNG of the given size.
func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}
