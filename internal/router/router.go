// Package router sets up the HTTP routes and middleware chain for the
// public site.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check for deploy probes.
	r.Get("/health", healthHandler)

	// Static assets (CSS and the blog filter/sort script).
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/blog", public.BlogIndex)
	r.Get("/blog/{slug}", public.Post)
	r.Get("/about", public.About)
	r.Get("/projects", public.Projects)
	r.Get("/projects/{slug}", public.Project)
	r.Get("/sharing", public.SharingIndex)
	r.Get("/sharing/{slug}", public.Sharing)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// The static tree is embedded at compile time; a missing subdir is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
