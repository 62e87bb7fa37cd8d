package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"mxm-archiver/internal/archive"
	"mxm-archiver/internal/config"
	"mxm-archiver/internal/logging"
	"mxm-archiver/internal/state"
	"mxm-archiver/pkg/musixmatch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "mxm-archiver:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if errors.Is(err, config.ErrMissingAPIKey) && stdinIsTerminal() {
		if cfg.APIKey, err = promptAPIKey(); err != nil {
			return fmt.Errorf("read API key: %w", err)
		}
		err = cfg.Validate()
	}
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Prefix: "mxm-archiver",
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	store, err := state.NewStore(cfg.Archive.StatePath)
	if err != nil {
		return fmt.Errorf("initialize completion state: %w", err)
	}

	var apiErrors atomic.Int32
	client, err := musixmatch.New(musixmatch.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     logger,
		OnError: func(e *musixmatch.APIError) {
			apiErrors.Add(1)
			logger.Warn("Musixmatch request failed", "endpoint", e.Endpoint, "status", e.StatusCode, "reason", musixmatch.StatusText(e.StatusCode), "hint", e.Header.Hint)
		},
	})
	if err != nil {
		return err
	}

	subFormat, err := musixmatch.ParseSubtitleFormat(cfg.Archive.SubtitleFormat)
	if err != nil {
		return err
	}

	tracks, err := resolveTracks(ctx, cfg, client, logger)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		logger.Warn("No tracks found; exiting")
		return nil
	}

	selected, err := chooseTracks(ctx, cfg, tracks, store, client)
	if err != nil {
		return fmt.Errorf("select tracks: %w", err)
	}
	if len(selected) == 0 {
		logger.Warn("No tracks selected; exiting")
		return nil
	}
	logger.Info("Selected tracks for archiving", "selected", len(selected), "total", len(tracks), "format", cfg.Archive.Format)

	index := archive.NewIndex(cfg.Archive.IndexPath)
	writer := archive.NewWriter(cfg.OutputDir)
	if prev, _, err := index.Load(); err == nil {
		writer.Reserve(prev)
	}

	a := &archiver{
		client:    client,
		writer:    writer,
		store:     store,
		logger:    logger,
		kind:      cfg.Archive.Format,
		subFormat: subFormat,
		translate: cfg.Archive.TranslationLanguage,
	}
	started := time.Now()
	summary, runErr := a.run(ctx, cfg.Workers, selected)

	if err := updateIndex(index, summary.Entries, logger); err != nil {
		runErr = errors.Join(runErr, err)
	}

	logger.Info("Archive run finished",
		"archived", summary.Archived,
		"skipped", summary.Skipped,
		"api_errors", apiErrors.Load(),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	if runErr != nil {
		return fmt.Errorf("one or more tracks failed: %w", runErr)
	}
	return nil
}

func chooseTracks(ctx context.Context, cfg config.Config, tracks []musixmatch.Track, store *state.Store, client *musixmatch.Client) ([]musixmatch.Track, error) {
	if cfg.Select != "" {
		indexes, err := parseTrackIndexes(cfg.Select, len(tracks))
		if err != nil {
			return nil, err
		}
		return tracksFromIndexes(tracks, indexes)
	}
	if !cfg.Choose || len(tracks) == 1 {
		return tracks, nil
	}

	snippet := func(ctx context.Context, t musixmatch.Track) (*musixmatch.Snippet, error) {
		return client.TrackSnippet(ctx, trackRef(t))
	}
	return chooseTracksInteractively(ctx, tracks, store, snippet, cfg.Archive.Format)
}

// updateIndex merges this run's entries into the index on disk.
func updateIndex(ix *archive.Index, entries []archive.Entry, logger *slog.Logger) error {
	if len(entries) == 0 {
		return nil
	}

	prev, fetchedAt, err := ix.Load()
	switch {
	case err == nil:
		logger.Debug("Loaded previous index", "entries", len(prev), "fetchedAt", fetchedAt.Local().Format(time.RFC3339))
	case errors.Is(err, os.ErrNotExist):
	default:
		logger.Warn("Read index failed; rewriting it", "path", ix.Path(), "err", err)
		prev = nil
	}

	merged := archive.Merge(prev, entries)
	if err := ix.Save(merged); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	logger.Info("Updated index", "path", ix.Path(), "entries", len(merged))
	return nil
}
