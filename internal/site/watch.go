package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the watcher waits after the last event before
// rebuilding, so a batch of saves triggers one rebuild.
const debounce = 400 * time.Millisecond

// Watcher rebuilds the catalog when library files change and notifies the
// reload hub afterwards.
type Watcher struct {
	root    string
	ignored []string // base names never worth a rebuild (outputs)
	rebuild func() error
	hub     *ReloadHub
}

// NewWatcher returns a watcher over root. Changes to the ignored base names
// (the generated page, the thumbnail directory) do not trigger rebuilds,
// which keeps the build's own writes from re-triggering it.
func NewWatcher(root string, ignored []string, rebuild func() error, hub *ReloadHub) *Watcher {
	return &Watcher{
		root:    root,
		ignored: ignored,
		rebuild: rebuild,
		hub:     hub,
	}
}

// Run watches the library tree until the watcher fails. It is meant to be
// started on its own goroutine next to Serve.
func (w *Watcher) Run() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addDirs(fw, w.root); err != nil {
		return err
	}

	var timer *time.Timer
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.ignore(event.Name) {
				continue
			}
			// Newly created directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addDirs(fw, event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if err := w.rebuild(); err != nil {
					fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
					return
				}
				w.hub.Broadcast()
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// addDirs registers dir and every non-ignored subdirectory with the watcher.
func (w *Watcher) addDirs(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (strings.HasPrefix(name, ".") || w.ignoredName(name)) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "cannot watch %s: %v\n", path, err)
		}
		return nil
	})
}

// ignore reports whether a change to the given path should be dropped.
func (w *Watcher) ignore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if w.ignoredName(base) {
		return true
	}
	// Changes inside ignored directories carry the directory in the path.
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if w.ignoredName(part) {
			return true
		}
	}
	return false
}

func (w *Watcher) ignoredName(name string) bool {
	for _, ig := range w.ignored {
		if name == ig {
			return true
		}
	}
	return false
}
