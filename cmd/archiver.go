package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mxm-archiver/internal/archive"
	"mxm-archiver/internal/state"
	"mxm-archiver/internal/worker"
	"mxm-archiver/pkg/musixmatch"
)

// archiver fetches and stores the lyrics or subtitle of single tracks. It is shared by the
// pool workers.
type archiver struct {
	client    *musixmatch.Client
	writer    *archive.Writer
	store     *state.Store
	logger    *slog.Logger
	kind      string
	subFormat musixmatch.SubtitleFormat
	translate string

	mu      sync.Mutex
	entries []archive.Entry
	skipped int
}

type runSummary struct {
	Archived int
	Skipped  int
	Entries  []archive.Entry
}

func (a *archiver) run(ctx context.Context, workers int, tracks []musixmatch.Track) (runSummary, error) {
	err := worker.Each(ctx, workers, tracks, func(ctx context.Context, t musixmatch.Track) error {
		if err := a.archiveTrack(ctx, t); err != nil {
			return fmt.Errorf("track %q by %s: %w", t.Name, t.ArtistName, err)
		}
		return nil
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	return runSummary{Archived: len(a.entries), Skipped: a.skipped, Entries: a.entries}, err
}

func trackRef(t musixmatch.Track) musixmatch.TrackRef {
	if t.CommontrackID > 0 {
		return musixmatch.ByCommontrackID(uint(t.CommontrackID))
	}
	return musixmatch.ByTrackID(uint(t.ID))
}

func (a *archiver) archiveTrack(ctx context.Context, t musixmatch.Track) error {
	label := trackLabel(t)
	key := archive.TrackKey(t)
	if a.store.IsCompleted(key) {
		a.skip(label, "already archived")
		return nil
	}
	if t.Instrumental {
		a.skip(label, "instrumental")
		return nil
	}

	started := time.Now()
	var (
		entry archive.Entry
		err   error
	)
	switch a.kind {
	case archive.KindSubtitle:
		entry, err = a.archiveSubtitle(ctx, t)
	default:
		entry, err = a.archiveLyrics(ctx, t)
	}
	if errors.Is(err, errUnavailable) || errors.Is(err, archive.ErrEmpty) {
		a.skip(label, err.Error())
		return nil
	}
	if err != nil {
		return err
	}

	if err := a.store.MarkCompleted(key); err != nil {
		return fmt.Errorf("persist completion state: %w", err)
	}

	a.mu.Lock()
	a.entries = append(a.entries, entry)
	a.mu.Unlock()

	a.logger.Info("Archived track", "track", label, "file", entry.File, "translation", entry.Translation, "elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}

func (a *archiver) archiveLyrics(ctx context.Context, t musixmatch.Track) (archive.Entry, error) {
	ref := trackRef(t)

	var lyrics *musixmatch.Lyrics
	var err error
	if a.translate != "" {
		lyrics, err = a.client.TrackLyricsTranslation(ctx, ref, musixmatch.NewTranslationQuery().Language(&a.translate))
	} else {
		lyrics, err = a.client.TrackLyrics(ctx, ref)
	}
	if err != nil {
		return archive.Entry{}, fmt.Errorf("fetch lyrics: %w", err)
	}
	if lyrics == nil {
		return archive.Entry{}, fmt.Errorf("lyrics: %w", errUnavailable)
	}
	return a.writer.SaveLyrics(t, lyrics)
}

func (a *archiver) archiveSubtitle(ctx context.Context, t musixmatch.Track) (archive.Entry, error) {
	ref := trackRef(t)
	sq := musixmatch.NewSubtitleQuery().Format(&a.subFormat)

	var sub *musixmatch.Subtitle
	var err error
	if a.translate != "" {
		sub, err = a.client.TrackSubtitleTranslation(ctx, ref, musixmatch.NewTranslationQuery().Language(&a.translate), sq)
	} else {
		sub, err = a.client.TrackSubtitle(ctx, ref, sq)
	}
	if err != nil {
		return archive.Entry{}, fmt.Errorf("fetch subtitle: %w", err)
	}
	if sub == nil {
		return archive.Entry{}, fmt.Errorf("subtitle: %w", errUnavailable)
	}
	return a.writer.SaveSubtitle(t, sub, a.subFormat)
}

func (a *archiver) skip(label, reason string) {
	a.mu.Lock()
	a.skipped++
	a.mu.Unlock()
	a.logger.Info("Skipping track", "track", label, "reason", reason)
}
