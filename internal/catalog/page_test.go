package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestAssemblePageExternalTemplate(t *testing.T) {
	root := t.TempDir()
	b := newTestBuilder(t, root)

	tmpl := "<html><!--listicon-->|<!--gridicon-->|<!--collapseicon-->|<!--expandicon-->|<!--contents--></html>"
	if err := os.WriteFile(filepath.Join(root, "index_template.html"), []byte(tmpl), 0o644); err != nil {
		t.Fatal(err)
	}

	page := b.assemblePage("<p>CARDS</p>")

	if !strings.Contains(page, "<p>CARDS</p>") {
		t.Error("content token not substituted")
	}
	for _, icon := range []string{"icon-list.svg", "icon-grid.svg", "icon-right.svg", "icon-down.svg"} {
		if !strings.Contains(page, "thumbnails/"+icon) {
			t.Errorf("icon %s not substituted", icon)
		}
	}
	if strings.Contains(page, "<!--") {
		t.Errorf("unsubstituted token remains:\n%s", page)
	}
}

func TestAssemblePageFallsBackToBuiltin(t *testing.T) {
	root := t.TempDir()
	b := newTestBuilder(t, root)
	b.cfg.Title = "My Library"

	page := b.assemblePage("<p>CARDS</p>")

	if !strings.Contains(page, "<p>CARDS</p>") {
		t.Error("content missing from built-in template")
	}
	if !strings.Contains(page, "<title>My Library</title>") {
		t.Error("title not substituted into built-in template")
	}
	if strings.Contains(page, "<!--contents-->") {
		t.Error("content token left in page")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")

	if err := writeFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("writeFileAtomic() error: %v", err)
	}
	if err := writeFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("writeFileAtomic() overwrite error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestBuildProducesPage(t *testing.T) {
	root := t.TempDir()
	writeFCStd(t, filepath.Join(root, "Tools", "wrench.FCStd"), []byte("thumb"))
	writeFCStd(t, filepath.Join(root, "Tools", "hammer.FCStd"), nil)

	b := newTestBuilder(t, root)
	stats, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if stats.Cards != 2 {
		t.Errorf("stats.Cards = %d, want 2", stats.Cards)
	}
	if stats.Sections != 1 {
		t.Errorf("stats.Sections = %d, want 1", stats.Sections)
	}
	if stats.Thumbnails != 1 {
		t.Errorf("stats.Thumbnails = %d, want 1", stats.Thumbnails)
	}

	page, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("catalog page not written: %v", err)
	}
	for _, want := range []string{"wrench", "hammer", "Tools"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("page missing %q", want)
		}
	}

	// Stock icons present, so every icon reference resolves.
	for name := range stockIcons {
		if _, err := os.Stat(filepath.Join(root, "thumbnails", name)); err != nil {
			t.Errorf("stock icon %s not written: %v", name, err)
		}
	}
}

func TestBuildWritesSearchIndex(t *testing.T) {
	root := t.TempDir()
	writeFCStd(t, filepath.Join(root, "Tools", "wrench.FCStd"), nil)

	b := newTestBuilder(t, root)
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "search-index.json"))
	if err != nil {
		t.Fatalf("search index not written: %v", err)
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("search index is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("search index has %d entries, want 1", len(entries))
	}
	if entries[0].Name != "wrench" || entries[0].Dir != "Tools" {
		t.Errorf("entry = %+v, want wrench in Tools", entries[0])
	}
}

func TestBuildIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFCStd(t, filepath.Join(root, "Tools", "wrench.FCStd"), []byte("thumb"))
	writeFCStd(t, filepath.Join(root, "Parts", "bolt.FCStd"), nil)

	run := func() ([]byte, []string) {
		b := newTestBuilder(t, root)
		if _, err := b.Build(); err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		page, err := os.ReadFile(filepath.Join(root, "index.html"))
		if err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(filepath.Join(root, "thumbnails"))
		if err != nil {
			t.Fatal(err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		sort.Strings(names)
		return page, names
	}

	page1, thumbs1 := run()
	page2, thumbs2 := run()

	if string(page1) != string(page2) {
		t.Error("two builds of an unchanged tree produced different pages")
	}
	if strings.Join(thumbs1, ",") != strings.Join(thumbs2, ",") {
		t.Errorf("thumbnail sets differ: %v vs %v", thumbs1, thumbs2)
	}
}
