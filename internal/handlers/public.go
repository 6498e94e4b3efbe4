// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the public site. Every page goes through the
// same shape: check the full-page cache, render from the store on miss,
// store the result. Render failures degrade to a minimal error page —
// one bad record never takes the site down.
package handlers

import (
	"html"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/site"
	"inkwell/internal/store"
)

// Public groups the public-facing handlers.
type Public struct {
	renderer     *site.Renderer
	contentStore *store.ContentStore
	pageCache    *cache.PageCache // nil when caching is disabled
}

// NewPublic creates a new Public handler group. pageCache may be nil.
func NewPublic(renderer *site.Renderer, contentStore *store.ContentStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:     renderer,
		contentStore: contentStore,
		pageCache:    pageCache,
	}
}

// Home serves the blog index at the site root.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.blogIndex(w, r, "/")
}

// BlogIndex serves the blog index at /blog.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	p.blogIndex(w, r, "/blog")
}

func (p *Public) blogIndex(w http.ResponseWriter, r *http.Request, route string) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, route); ok {
		writeHTML(w, cached)
		return
	}

	posts, err := p.contentStore.ListByLayout(models.LayoutPost)
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rendered, err := p.renderer.BlogIndex(posts)
	if err != nil {
		slog.Error("blog index render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, route, rendered)
	writeHTML(w, rendered)
}

// Post serves a single blog post by slug.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "/blog/"+chi.URLParam(r, "slug"))
}

// About serves the about page with the resume section.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "/about")
}

// Project serves a single project write-up by slug.
func (p *Public) Project(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "/projects/"+chi.URLParam(r, "slug"))
}

// Sharing serves a single sharing page by slug.
func (p *Public) Sharing(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "/sharing/"+chi.URLParam(r, "slug"))
}

// Projects serves the project listing.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	p.listPage(w, r, "/projects", "Projects", models.LayoutProject)
}

// SharingIndex serves the sharing listing.
func (p *Public) SharingIndex(w http.ResponseWriter, r *http.Request) {
	p.listPage(w, r, "/sharing", "Sharing", models.LayoutSharing)
}

// page renders one content record by its route.
func (p *Public) page(w http.ResponseWriter, r *http.Request, route string) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, route); ok {
		writeHTML(w, cached)
		return
	}

	content, err := p.contentStore.FindByPath(route)
	if err != nil {
		slog.Error("find content failed", "error", err, "route", route)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if content == nil {
		http.NotFound(w, r)
		return
	}

	rendered, err := p.renderer.Page(content)
	if err != nil {
		slog.Error("render page failed", "error", err, "route", route)
		writeErrorPage(w, content.DisplayTitle())
		return
	}

	p.pageCache.Set(ctx, route, rendered)
	writeHTML(w, rendered)
}

// listPage renders the simple listing for a layout.
func (p *Public) listPage(w http.ResponseWriter, r *http.Request, route, title string, layout models.Layout) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, route); ok {
		writeHTML(w, cached)
		return
	}

	records, err := p.contentStore.ListByLayout(layout)
	if err != nil {
		slog.Error("list content failed", "error", err, "layout", layout)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rendered, err := p.renderer.List(title, records)
	if err != nil {
		slog.Error("list render failed", "error", err, "layout", layout)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, route, rendered)
	writeHTML(w, rendered)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// writeErrorPage emits a safe fallback when a record fails to render.
// Never echoes raw record content — it bypasses html/template escaping.
func writeErrorPage(w http.ResponseWriter, title string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeTitle := html.EscapeString(title)
	w.Write([]byte(`<!DOCTYPE html><html><head><title>` + safeTitle + `</title></head>
<body><h1>` + safeTitle + `</h1>
<p>This page could not be rendered.</p>
<a href="/">Go to Homepage</a></body></html>`))
}
