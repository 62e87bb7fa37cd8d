package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mxm-archiver/internal/config"
	"mxm-archiver/internal/match"
	"mxm-archiver/pkg/musixmatch"
)

// errUnavailable means the API answered with an error status; OnError has already logged it.
var errUnavailable = errors.New("musixmatch reported an error")

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optUint(n uint) *uint {
	if n == 0 {
		return nil
	}
	return &n
}

// resolveTracks fetches the candidate tracks of the configured source.
func resolveTracks(ctx context.Context, cfg config.Config, client *musixmatch.Client, logger *slog.Logger) ([]musixmatch.Track, error) {
	src := cfg.Source
	switch src.Kind() {
	case config.SourceAlbum:
		return albumTracks(ctx, client, logger, src)
	case config.SourceSearch:
		return searchTracks(ctx, client, logger, src)
	case config.SourceChart:
		return chartTracks(ctx, client, logger, src)
	default:
		return nil, config.ErrSource
	}
}

func albumTracks(ctx context.Context, client *musixmatch.Client, logger *slog.Logger, src config.Source) ([]musixmatch.Track, error) {
	ref := musixmatch.ByAlbumID(src.AlbumID)

	album, err := client.Album(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch album %d: %w", src.AlbumID, err)
	}
	if album != nil {
		logger.Info("Resolved album", "album", album.Name, "artist", album.ArtistName, "tracks", album.TrackCount, "released", album.ReleaseDate)
	}

	q := musixmatch.NewAlbumTracksQuery().
		Page(musixmatch.Ptr[uint](1)).
		PageSize(musixmatch.Ptr(src.Limit))
	if err := q.Validate(); err != nil {
		return nil, err
	}
	tracks, err := client.AlbumTracks(ctx, ref, q)
	if err != nil {
		return nil, fmt.Errorf("fetch album tracks: %w", err)
	}
	if tracks == nil {
		return nil, fmt.Errorf("fetch album tracks: %w", errUnavailable)
	}
	return tracks, nil
}

func searchTracks(ctx context.Context, client *musixmatch.Client, logger *slog.Logger, src config.Source) ([]musixmatch.Track, error) {
	q := musixmatch.NewTrackSearchQuery().
		SongTitle(optString(src.Track)).
		SongArtist(optString(src.Artist)).
		AnyContain(optString(src.Query)).
		ArtistID(optUint(src.ArtistID)).
		HasLyrics(musixmatch.Ptr(true)).
		SortTrackRating(musixmatch.Ptr(musixmatch.Descending)).
		Page(musixmatch.Ptr[uint](1)).
		PageSize(musixmatch.Ptr(src.Limit))
	if err := q.Validate(); err != nil {
		return nil, err
	}

	tracks, err := client.SearchTracks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	if tracks == nil {
		return nil, fmt.Errorf("search tracks: %w", errUnavailable)
	}
	logger.Info("Search finished", "results", len(tracks))

	if !src.Match {
		return tracks, nil
	}
	return bestMatch(ctx, client, logger, src, tracks)
}

// bestMatch keeps the search result closest to -track/-artist. When no result is similar
// enough it falls back to the server-side matcher.
func bestMatch(ctx context.Context, client *musixmatch.Client, logger *slog.Logger, src config.Source, tracks []musixmatch.Track) ([]musixmatch.Track, error) {
	if best, ok := match.Best(src.Track, src.Artist, tracks, match.DefaultThreshold); ok {
		logger.Info("Matched search result", "track", best.Track.Name, "artist", best.Track.ArtistName, "score", fmt.Sprintf("%.3f", best.Score))
		return []musixmatch.Track{best.Track}, nil
	}

	logger.Info("No close search result; asking the matcher", "track", src.Track, "artist", src.Artist)
	track, err := client.MatchTrack(ctx, musixmatch.NewMatcherQuery().
		Title(optString(src.Track)).
		Artist(optString(src.Artist)))
	if err != nil {
		return nil, fmt.Errorf("match track: %w", err)
	}
	if track == nil {
		return nil, fmt.Errorf("match track: %w", errUnavailable)
	}
	return []musixmatch.Track{*track}, nil
}

func chartTracks(ctx context.Context, client *musixmatch.Client, logger *slog.Logger, src config.Source) ([]musixmatch.Track, error) {
	chart, err := musixmatch.ParseChart(src.ChartName)
	if err != nil {
		return nil, err
	}

	q := musixmatch.NewChartQuery().
		Country(optString(src.ChartCountry)).
		ChartName(&chart).
		HasLyrics(musixmatch.Ptr(true)).
		Page(musixmatch.Ptr[uint](1)).
		PageSize(musixmatch.Ptr(src.Limit))
	if err := q.Validate(); err != nil {
		return nil, err
	}

	tracks, err := client.TopTracks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch %s chart: %w", chart, err)
	}
	if tracks == nil {
		return nil, fmt.Errorf("fetch %s chart: %w", chart, errUnavailable)
	}
	logger.Info("Loaded chart", "chart", chart.String(), "country", src.ChartCountry, "tracks", len(tracks))
	return tracks, nil
}
