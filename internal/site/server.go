// Package site serves a generated catalog locally, optionally rebuilding it
// and reloading connected browsers when the library changes.
package site

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures the preview server.
type Options struct {
	Dir      string     // directory to serve (the library root)
	Port     int        // listen port
	Open     bool       // open the browser once listening
	AllowAll bool       // allow all CORS origins
	Hub      *ReloadHub // non-nil enables the /livereload endpoint
}

// Serve starts a local HTTP server for the catalog and blocks until the
// listener fails or the process is interrupted.
func Serve(opts Options) error {
	addr := fmt.Sprintf(":%d", opts.Port)
	url := fmt.Sprintf("http://localhost:%d", opts.Port)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if opts.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if opts.Hub != nil {
		r.Get("/livereload", opts.Hub.Handler)
	}

	r.Handle("/*", http.FileServer(http.Dir(opts.Dir)))

	if opts.Open {
		go openBrowser(url)
	}

	fmt.Printf("Serving catalog at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	return http.ListenAndServe(addr, r)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
