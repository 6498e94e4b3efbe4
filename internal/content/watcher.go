// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reconcileDelay debounces rename/remove bursts (editors often save via
// rename) before running a full reconciliation pass.
const reconcileDelay = 200 * time.Millisecond

// Watch starts an fsnotify watcher on the content root and keeps the store
// in sync until ctx is cancelled. Writes and creates re-ingest the touched
// file; removes and renames schedule a debounced full resync, since the
// old path may no longer exist by the time the event arrives.
//
// New directories created at runtime are added to the watch list.
func (s *Syncer) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	root := s.loader.Root()
	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	slog.Info("content watcher started", "root", root)

	var reconcileTimer *time.Timer
	var reconcileCh <-chan time.Time

	scheduleReconcile := func() {
		if reconcileTimer == nil {
			reconcileTimer = time.NewTimer(reconcileDelay)
			reconcileCh = reconcileTimer.C
		} else {
			reconcileTimer.Reset(reconcileDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reconcileTimer != nil {
				reconcileTimer.Stop()
			}
			slog.Info("content watcher stopped")
			return nil

		case <-reconcileCh:
			if _, err := s.SyncAll(ctx); err != nil {
				slog.Error("content reconcile failed", "error", err)
			}

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.handleEvent(ctx, w, root, event, scheduleReconcile)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("content watcher error", "error", err)
		}
	}
}

// handleEvent routes one fsnotify event to the right sync action.
func (s *Syncer) handleEvent(ctx context.Context, w *fsnotify.Watcher, root string, event fsnotify.Event, scheduleReconcile func()) {
	// Newly created directories need to be watched too.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addDirsRecursive(w, event.Name); err != nil {
				slog.Warn("content watcher: add dir", "dir", event.Name, "error", err)
			}
			return
		}
	}

	if !isMarkdown(event.Name) {
		return
	}

	rel, err := filepath.Rel(root, event.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	switch {
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		if err := s.SyncFile(ctx, rel); err != nil {
			slog.Warn("content watcher: sync file", "file", rel, "error", err)
		} else {
			slog.Debug("content watcher: file synced", "file", rel)
		}

	case event.Op.Has(fsnotify.Remove):
		if err := s.RemoveFile(ctx, rel); err != nil {
			slog.Warn("content watcher: remove file", "file", rel, "error", err)
		}

	case event.Op.Has(fsnotify.Rename):
		// The old path is gone; sweep for stale rows once events settle.
		scheduleReconcile()
	}
}

// addDirsRecursive adds dir and all nested directories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
