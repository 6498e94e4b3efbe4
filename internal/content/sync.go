// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"log/slog"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Syncer reconciles the content directory with the store and flushes the
// page cache when anything changed. pageCache may be nil.
type Syncer struct {
	loader    *Loader
	store     *store.ContentStore
	pageCache *cache.PageCache
}

// NewSyncer creates a Syncer over the given loader and store.
func NewSyncer(loader *Loader, contentStore *store.ContentStore, pageCache *cache.PageCache) *Syncer {
	return &Syncer{loader: loader, store: contentStore, pageCache: pageCache}
}

// SyncAll ingests every markdown file and deletes store rows whose source
// files vanished. Returns the number of records upserted.
func (s *Syncer) SyncAll(ctx context.Context) (int, error) {
	records, err := s.loader.LoadAll()
	if err != nil {
		return 0, err
	}

	known, err := s.store.SourcePaths()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(records))
	for i := range records {
		c := &records[i]
		seen[c.SourcePath] = true
		if err := s.store.Upsert(c); err != nil {
			return 0, fmt.Errorf("sync %s: %w", c.SourcePath, err)
		}
	}

	// Remove rows for files deleted from disk.
	removed := 0
	for src := range known {
		if seen[src] {
			continue
		}
		if _, err := s.store.DeleteBySourcePath(src); err != nil {
			return 0, fmt.Errorf("sync delete %s: %w", src, err)
		}
		removed++
	}

	s.pageCache.InvalidateAll(ctx)
	slog.Info("content synced", "records", len(records), "removed", removed)
	return len(records), nil
}

// SyncFile re-ingests a single changed file and invalidates its route and
// the listing pages. Used by the watcher for targeted updates.
func (s *Syncer) SyncFile(ctx context.Context, rel string) error {
	c, err := s.loader.LoadFile(rel)
	if err != nil {
		return err
	}
	if err := s.store.Upsert(c); err != nil {
		return fmt.Errorf("sync %s: %w", rel, err)
	}

	s.pageCache.Invalidate(ctx, c.Path)
	s.invalidateListings(ctx, c.Layout)
	return nil
}

// RemoveFile deletes the record for a vanished file and invalidates its
// cached page.
func (s *Syncer) RemoveFile(ctx context.Context, rel string) error {
	path, err := s.store.DeleteBySourcePath(rel)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	s.pageCache.Invalidate(ctx, path)
	s.pageCache.Invalidate(ctx, "/")
	s.pageCache.Invalidate(ctx, "/blog")
	return nil
}

// invalidateListings flushes the index pages affected by a change to a
// record with the given layout. The blog index aggregates posts (tags,
// month sidebar), so any post change touches it.
func (s *Syncer) invalidateListings(ctx context.Context, layout models.Layout) {
	switch layout {
	case models.LayoutPost:
		s.pageCache.Invalidate(ctx, "/")
		s.pageCache.Invalidate(ctx, "/blog")
	case models.LayoutProject:
		s.pageCache.Invalidate(ctx, "/projects")
	case models.LayoutSharing:
		s.pageCache.Invalidate(ctx, "/sharing")
	}
}
