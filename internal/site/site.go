// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package site renders the public pages from embedded templates: the blog
// index with its filter attributes, the per-layout content pages, and the
// about page with the resume section. The layout set is closed — about,
// post, project, sharing — and dispatch is a switch, not open-ended
// registration.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/listing"
	"inkwell/internal/markdown"
	"inkwell/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// layoutTemplates maps each layout variant to its page template file.
var layoutTemplates = map[models.Layout]string{
	models.LayoutAbout:   "about.html",
	models.LayoutPost:    "post.html",
	models.LayoutProject: "project.html",
	models.LayoutSharing: "sharing.html",
}

// base holds the fields every page template can use.
type base struct {
	SiteName    string
	Title       string
	Year        int
	FooterLinks []config.Link
}

// pageData is passed to the per-layout content templates.
type pageData struct {
	base
	Body           template.HTML
	DisplayDate    string
	Tags           []string
	ReadingMinutes int
	CV             *models.CurriculumVitae // about layout only
	Meta           models.Metadata
}

// indexData is passed to the blog index template: sorted entries plus the
// sidebar months and the tag dropdown, all precomputed by the listing
// package.
type indexData struct {
	base
	Entries []listing.Entry
	Months  []listing.MonthBucket
	Tags    []string
}

// Renderer renders public pages. Footer links and the resume are passed in
// at construction rather than read from package state, so tests can build
// renderers with fixture data.
type Renderer struct {
	templates map[models.Layout]*template.Template
	index     *template.Template
	list      *template.Template
	siteName  string
	footer    []config.Link
	cv        *models.CurriculumVitae
}

// New parses the embedded templates and returns a ready Renderer. cv may
// be nil; the about page then renders without the resume section.
func New(siteName string, footer []config.Link, cv *models.CurriculumVitae) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[models.Layout]*template.Template),
		siteName:  siteName,
		footer:    footer,
		cv:        cv,
	}

	for layout, file := range layoutTemplates {
		tmpl, err := template.New("base.html").ParseFS(
			templateFS, "templates/base.html", "templates/"+file,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		r.templates[layout] = tmpl
	}

	index, err := template.New("base.html").ParseFS(
		templateFS, "templates/base.html", "templates/blog_index.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse template blog_index.html: %w", err)
	}
	r.index = index

	list, err := template.New("base.html").ParseFS(
		templateFS, "templates/base.html", "templates/list.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse template list.html: %w", err)
	}
	r.list = list

	return r, nil
}

// BlogIndex renders the blog listing page for the given posts: entries in
// date-descending order stamped with data-date/data-tags/data-month, the
// month sidebar (descending, with counts), and the tag dropdown
// (ascending). An empty collection renders an empty listing, not an error.
func (r *Renderer) BlogIndex(posts []models.Content) ([]byte, error) {
	data := indexData{
		base:    r.baseData("Blog"),
		Entries: listing.Build(posts),
		Months:  listing.SortedMonths(listing.GroupByMonth(posts)),
		Tags:    listing.Tags(posts),
	}
	return r.execute(r.index, data)
}

// Page renders a single content record with the template for its layout.
// Unknown layouts fall back to the post template rather than failing the
// page.
func (r *Renderer) Page(c *models.Content) ([]byte, error) {
	tmpl, ok := r.templates[c.Layout]
	if !ok {
		tmpl = r.templates[models.LayoutPost]
	}

	bodyHTML, err := markdown.ToHTML(c.Body)
	if err != nil {
		return nil, fmt.Errorf("render markdown for %s: %w", c.Path, err)
	}

	data := pageData{
		base: r.baseData(c.DisplayTitle()),
		Body: template.HTML(bodyHTML),
		Tags: c.Tags,
		Meta: c.Metadata,
	}
	if c.HasDate() {
		data.DisplayDate = listing.DisplayDate(c.Date)
	}
	if c.Layout == models.LayoutPost {
		data.ReadingMinutes = listing.ReadingMinutes(c.Body)
	}
	if c.Layout == models.LayoutAbout {
		data.CV = r.cv
	}

	return r.execute(tmpl, data)
}

// List renders a simple listing page (projects, sharing) without the blog
// filter apparatus.
func (r *Renderer) List(title string, records []models.Content) ([]byte, error) {
	data := indexData{
		base:    r.baseData(title),
		Entries: listing.Build(records),
	}
	return r.execute(r.list, data)
}

func (r *Renderer) baseData(title string) base {
	return base{
		SiteName:    r.siteName,
		Title:       title,
		Year:        time.Now().Year(),
		FooterLinks: r.footer,
	}
}

func (r *Renderer) execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}
