package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mxm-archiver/internal/archive"
	"mxm-archiver/internal/logging"
	"mxm-archiver/internal/state"
	"mxm-archiver/pkg/musixmatch"
)

func newTestArchiver(t *testing.T, api *fakeAPI, kind string) (*archiver, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := state.NewStore(filepath.Join(dir, ".completed_tracks.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return &archiver{
		client:    api.client(t),
		writer:    archive.NewWriter(dir),
		store:     store,
		logger:    logging.Discard(),
		kind:      kind,
		subFormat: musixmatch.SubtitleLRC,
	}, dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestArchiverWritesLyrics(t *testing.T) {
	api := newFakeAPI().reply("track.lyrics.get", `{"lyrics":{"lyrics_id":1,"lyrics_body":"Is this the real life?","lyrics_language":"en","lyrics_copyright":"Lyrics powered by www.musixmatch.com"}}`)
	a, dir := newTestArchiver(t, api, archive.KindLyrics)

	summary, err := a.run(context.Background(), 2, sampleTracks()[:1])
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if summary.Archived != 1 || summary.Skipped != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	entry := summary.Entries[0]
	if entry.File != "Queen - Bohemian Rhapsody.txt" || entry.Kind != archive.KindLyrics || entry.Language != "en" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	want := "Is this the real life?\n\nLyrics powered by www.musixmatch.com\n"
	if got := readFile(t, filepath.Join(dir, entry.File)); got != want {
		t.Fatalf("unexpected lyrics file: %q", got)
	}
	if !a.store.IsCompleted("c:11") {
		t.Fatalf("track should be marked completed")
	}

	q := api.queries("track.lyrics.get")
	if len(q) != 1 || q[0].Get("commontrack_id") != "11" {
		t.Fatalf("unexpected lyrics query: %v", q)
	}
}

func TestArchiverWritesTranslatedSubtitle(t *testing.T) {
	api := newFakeAPI().reply("track.subtitle.translation.get", `{"subtitle":{"subtitle_id":3,"subtitle_body":"[00:01.00] Mama","subtitle_language":"en","subtitle_translated":{"selected_language":"it","subtitle_body":"[00:01.00] Mamma"}}}`)
	a, dir := newTestArchiver(t, api, archive.KindSubtitle)
	a.translate = "it"

	summary, err := a.run(context.Background(), 1, sampleTracks()[:1])
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entry := summary.Entries[0]
	if entry.File != "Queen - Bohemian Rhapsody.lrc" || entry.Translation != "Queen - Bohemian Rhapsody.it.lrc" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if got := readFile(t, filepath.Join(dir, entry.Translation)); got != "[00:01.00] Mamma\n" {
		t.Fatalf("unexpected translation file: %q", got)
	}

	q := api.queries("track.subtitle.translation.get")[0]
	if q.Get("selected_language") != "it" || q.Get("subtitle_format") != "lrc" {
		t.Fatalf("unexpected subtitle query: %v", q)
	}
}

func TestArchiverSkips(t *testing.T) {
	api := newFakeAPI().
		reply("track.lyrics.get", `{"lyrics":{"lyrics_body":"   "}}`)
	a, _ := newTestArchiver(t, api, archive.KindLyrics)
	if err := a.store.MarkCompleted("c:12"); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}

	tracks := sampleTracks()[:3]
	tracks[2].Instrumental = true

	summary, err := a.run(context.Background(), 3, tracks)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if summary.Archived != 0 || summary.Skipped != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if n := len(api.queries("track.lyrics.get")); n != 1 {
		t.Fatalf("only the first track should be fetched, got %d calls", n)
	}
	if a.store.IsCompleted("c:11") {
		t.Fatalf("an empty body must not be marked completed")
	}
}

func TestArchiverSkipsAPIErrors(t *testing.T) {
	api := newFakeAPI().fail("track.lyrics.get", 404)
	a, _ := newTestArchiver(t, api, archive.KindLyrics)

	summary, err := a.run(context.Background(), 2, sampleTracks()[:2])
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if summary.Skipped != 2 || api.apiErrors != 2 {
		t.Fatalf("unexpected summary %+v with %d API errors", summary, api.apiErrors)
	}
}

func TestArchiverReportsSchemaFailures(t *testing.T) {
	api := newFakeAPI().reply("track.lyrics.get", `{"lyrics":"not an object"}`)
	a, _ := newTestArchiver(t, api, archive.KindLyrics)

	_, err := a.run(context.Background(), 1, sampleTracks()[:1])
	if err == nil || !strings.Contains(err.Error(), `track "Bohemian Rhapsody" by Queen`) {
		t.Fatalf("expected a per-track error, got %v", err)
	}
}

func TestTrackRefFallsBackToTrackID(t *testing.T) {
	api := newFakeAPI().reply("track.lyrics.get", `{"lyrics":{"lyrics_body":"la la"}}`)
	a, _ := newTestArchiver(t, api, archive.KindLyrics)

	if _, err := a.run(context.Background(), 1, []musixmatch.Track{{ID: 42, Name: "Demo", ArtistName: "Nobody"}}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	q := api.queries("track.lyrics.get")[0]
	if q.Get("track_id") != "42" || q.Has("commontrack_id") {
		t.Fatalf("unexpected lyrics query: %v", q)
	}
}

func TestUpdateIndexMerges(t *testing.T) {
	ix := archive.NewIndex(filepath.Join(t.TempDir(), "index.json"))

	first := []archive.Entry{{CommontrackID: 12, Artist: "Muse", Title: "Uprising", Kind: archive.KindLyrics, File: "Muse - Uprising.txt"}}
	if err := updateIndex(ix, first, logging.Discard()); err != nil {
		t.Fatalf("updateIndex failed: %v", err)
	}

	second := []archive.Entry{
		{CommontrackID: 12, Artist: "Muse", Title: "Uprising", Kind: archive.KindSubtitle, File: "Muse - Uprising.lrc"},
		{CommontrackID: 13, Artist: "ABBA", Title: "Waterloo", Kind: archive.KindLyrics, File: "ABBA - Waterloo.txt"},
	}
	if err := updateIndex(ix, second, logging.Discard()); err != nil {
		t.Fatalf("updateIndex failed: %v", err)
	}

	entries, _, err := ix.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Artist != "ABBA" || entries[1].File != "Muse - Uprising.lrc" {
		t.Fatalf("unexpected index: %+v", entries)
	}

	if err := updateIndex(ix, nil, logging.Discard()); err != nil {
		t.Fatalf("empty update should be a no-op: %v", err)
	}
}

func TestArchiverKeepsTracksWithoutCommontrackID(t *testing.T) {
	api := newFakeAPI().reply("track.lyrics.get", `{"lyrics":{"lyrics_body":"la la"}}`)
	a, dir := newTestArchiver(t, api, archive.KindLyrics)

	tracks := []musixmatch.Track{
		{ID: 101, Name: "Demo", ArtistName: "Nobody"},
		{ID: 202, Name: "Demo", ArtistName: "Nobody"},
	}
	summary, err := a.run(context.Background(), 1, tracks)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if summary.Archived != 2 || summary.Skipped != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if n := len(api.queries("track.lyrics.get")); n != 2 {
		t.Fatalf("expected two lyrics calls, got %d", n)
	}
	if !a.store.IsCompleted("t:101") || !a.store.IsCompleted("t:202") {
		t.Fatalf("both tracks should be marked completed by track id")
	}

	files := map[string]bool{}
	for _, e := range summary.Entries {
		files[e.File] = true
		if _, err := os.Stat(filepath.Join(dir, e.File)); err != nil {
			t.Fatalf("missing file %s: %v", e.File, err)
		}
	}
	if len(files) != 2 {
		t.Fatalf("tracks must not share a file: %+v", summary.Entries)
	}

	ix := archive.NewIndex(filepath.Join(dir, "index.json"))
	if err := updateIndex(ix, summary.Entries, logging.Discard()); err != nil {
		t.Fatalf("updateIndex failed: %v", err)
	}
	entries, _, err := ix.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("index should keep both tracks, got %+v", entries)
	}
}
