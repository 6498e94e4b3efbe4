// Package main is the entry point for the inkwell personal site engine.
// The serve command ingests the markdown content directory into
// PostgreSQL, watches it for changes, and serves the rendered site over
// HTTP. The publish command exports the site as static HTML straight from
// the content files.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/content"
	"inkwell/internal/database"
	"inkwell/internal/handlers"
	"inkwell/internal/models"
	"inkwell/internal/publish"
	"inkwell/internal/router"
	"inkwell/internal/site"
	"inkwell/internal/store"
)

func main() {
	cmd := &cli.Command{
		Name:  "inkwell",
		Usage: "Personal website engine: markdown in, blog out",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the site over HTTP, watching the content directory",
				Action: runServe,
			},
			{
				Name:   "publish",
				Usage:  "Export the site as static HTML into the output directory",
				Action: runPublish,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setup loads configuration, wires logging, and builds the site renderer.
func setup() (*config.Config, *site.Renderer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	initLogging(cfg)

	// The resume is optional; the about page degrades without it.
	var cv *models.CurriculumVitae
	if cfg.CVPath != "" {
		cv, err = models.LoadCV(cfg.CVPath)
		if err != nil {
			slog.Warn("resume not loaded", "path", cfg.CVPath, "error", err)
		}
	}

	renderer, err := site.New(cfg.SiteName, cfg.FooterLinks, cv)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize renderer: %w", err)
	}
	return cfg, renderer, nil
}

// initLogging installs a tinted console handler in development and a JSON
// handler in production.
func initLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsDev() {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler))
}

func runServe(ctx context.Context, _ *cli.Command) error {
	cfg, renderer, err := setup()
	if err != nil {
		return err
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Valkey page cache is optional; the site renders on every request
	// without it.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect valkey: %w", err)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	} else {
		slog.Warn("valkey not configured, page caching disabled")
	}

	contentStore := store.NewContentStore(db)

	loader, err := content.NewLoader(cfg.ContentDir)
	if err != nil {
		return err
	}
	syncer := content.NewSyncer(loader, contentStore, pageCache)
	if _, err := syncer.SyncAll(ctx); err != nil {
		return fmt.Errorf("initial content sync: %w", err)
	}

	public := handlers.NewPublic(renderer, contentStore, pageCache)
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.New(public),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Stop on SIGINT/SIGTERM; the watcher and server share the lifetime.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return syncer.Watch(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runPublish(_ context.Context, _ *cli.Command) error {
	cfg, renderer, err := setup()
	if err != nil {
		return err
	}

	// Publishing reads the content files directly — no database or cache
	// involved, matching the batch one-shot nature of a static export.
	loader, err := content.NewLoader(cfg.ContentDir)
	if err != nil {
		return err
	}
	records, err := loader.LoadAll()
	if err != nil {
		return err
	}

	return publish.New(renderer, cfg.OutputDir).Run(records)
}
