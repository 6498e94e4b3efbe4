// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the PostgreSQL persistence layer for ingested
// content records.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// ContentStore manages content records in the database.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore returns a new ContentStore.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `id, source_path, path, title, body, layout, date, tags, metadata, created_at, updated_at`

// scanContent scans a row into a Content struct, decoding the JSONB tag
// list and metadata bag.
func scanContent(scanner interface{ Scan(...any) error }) (*models.Content, error) {
	var c models.Content
	var date sql.NullTime
	var tags, metadata []byte

	err := scanner.Scan(
		&c.ID, &c.SourcePath, &c.Path, &c.Title, &c.Body, &c.Layout,
		&date, &tags, &metadata, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		c.Date = date.Time
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &c.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &c.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &c, nil
}

// Upsert inserts a record or updates the existing row with the same
// source path. The record's ID is filled in on insert.
func (s *ContentStore) Upsert(c *models.Content) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	tags, err := json.Marshal(tagsOrEmpty(c.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	metadata, err := json.Marshal(metaOrEmpty(c.Metadata))
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	var date sql.NullTime
	if c.HasDate() {
		date = sql.NullTime{Time: c.Date, Valid: true}
	}

	err = s.db.QueryRow(`
		INSERT INTO content (id, source_path, path, title, body, layout, date, tags, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (source_path) DO UPDATE SET
			path = EXCLUDED.path,
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			layout = EXCLUDED.layout,
			date = EXCLUDED.date,
			tags = EXCLUDED.tags,
			metadata = EXCLUDED.metadata,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, c.ID, c.SourcePath, c.Path, c.Title, c.Body, c.Layout, date, tags, metadata).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}
	return nil
}

// FindByPath returns the record published at the given route, or nil when
// none exists.
func (s *ContentStore) FindByPath(path string) (*models.Content, error) {
	row := s.db.QueryRow(
		`SELECT `+contentColumns+` FROM content WHERE path = $1`, path,
	)
	c, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by path: %w", err)
	}
	return c, nil
}

// ListByLayout returns all records with the given layout, newest first.
// Records without a date sort last, so a post with malformed front matter
// still appears at the end of the blog listing instead of vanishing.
func (s *ContentStore) ListByLayout(layout models.Layout) ([]models.Content, error) {
	rows, err := s.db.Query(
		`SELECT `+contentColumns+` FROM content
		 WHERE layout = $1
		 ORDER BY date DESC NULLS LAST, created_at DESC`, layout,
	)
	if err != nil {
		return nil, fmt.Errorf("list content by layout: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// ListAll returns every record, newest first.
func (s *ContentStore) ListAll() ([]models.Content, error) {
	rows, err := s.db.Query(
		`SELECT ` + contentColumns + ` FROM content
		 ORDER BY date DESC NULLS LAST, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// SourcePaths returns the set of source paths currently in the store,
// used by the sync pass to detect deleted files.
func (s *ContentStore) SourcePaths() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT source_path FROM content`)
	if err != nil {
		return nil, fmt.Errorf("list source paths: %w", err)
	}
	defer rows.Close()

	paths := make(map[string]bool)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan source path: %w", err)
		}
		paths[p] = true
	}
	return paths, rows.Err()
}

// DeleteBySourcePath removes the record ingested from the given file.
// Returns the route that vanished (for cache invalidation), or empty when
// nothing was deleted.
func (s *ContentStore) DeleteBySourcePath(sourcePath string) (string, error) {
	var path string
	err := s.db.QueryRow(
		`DELETE FROM content WHERE source_path = $1 RETURNING path`, sourcePath,
	).Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("delete content: %w", err)
	}
	return path, nil
}

// collect drains rows into a slice of content records.
func collect(rows *sql.Rows) ([]models.Content, error) {
	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// tagsOrEmpty avoids encoding nil tag slices as JSON null.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// metaOrEmpty avoids encoding nil metadata as JSON null.
func metaOrEmpty(m models.Metadata) models.Metadata {
	if m == nil {
		return models.Metadata{}
	}
	return m
}
