package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIndexSaveLoadRoundTrip(t *testing.T) {
	ix := NewIndex(filepath.Join(t.TempDir(), "out", "index.json"))
	entries := []Entry{
		{CommontrackID: 1, Artist: "Queen", Title: "Bohemian Rhapsody", Kind: KindLyrics, File: "Queen - Bohemian Rhapsody.txt"},
		{CommontrackID: 2, Artist: "Muse", Title: "Uprising", Kind: KindSubtitle, File: "Muse - Uprising.lrc"},
	}

	before := time.Now().Add(-2 * time.Second)
	if err := ix.Save(entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, fetchedAt, err := ix.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].File != entries[0].File || loaded[1].Kind != KindSubtitle {
		t.Fatalf("loaded entries mismatch: %+v", loaded)
	}
	if fetchedAt.Before(before) {
		t.Fatalf("unexpected stale fetchedAt: %s", fetchedAt)
	}
}

func TestIndexLoadNotExist(t *testing.T) {
	_, _, err := NewIndex(filepath.Join(t.TempDir(), "missing.json")).Load()
	if err == nil || !os.IsNotExist(err) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestIndexLoadInvalidTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(`{"fetchedAt":"yesterday","entries":[]}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, _, err := NewIndex(path).Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMergeReplacesAndSorts(t *testing.T) {
	prev := []Entry{
		{CommontrackID: 1, Artist: "Queen", Title: "Bohemian Rhapsody", Kind: KindLyrics},
		{CommontrackID: 3, Artist: "ABBA", Title: "Waterloo", Kind: KindLyrics},
	}
	next := []Entry{
		{CommontrackID: 1, Artist: "Queen", Title: "Bohemian Rhapsody", Kind: KindSubtitle},
		{CommontrackID: 2, Artist: "Muse", Title: "Uprising", Kind: KindLyrics},
	}

	got := Merge(prev, next)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Artist != "ABBA" || got[1].Artist != "Muse" || got[2].Artist != "Queen" {
		t.Fatalf("entries not sorted by artist: %+v", got)
	}
	if got[2].Kind != KindSubtitle {
		t.Fatalf("newer entry should win, got %+v", got[2])
	}
}

func TestMergeKeysTracksWithoutCommontrackID(t *testing.T) {
	prev := []Entry{{TrackID: 101, Artist: "Nobody", Title: "Demo", File: "Nobody - Demo.txt"}}
	next := []Entry{
		{TrackID: 202, Artist: "Nobody", Title: "Demo", File: "Nobody - Demo (202).txt"},
		{TrackID: 101, Artist: "Nobody", Title: "Demo", File: "Nobody - Demo.lrc"},
	}

	got := Merge(prev, next)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %+v", got)
	}
	if got[0].TrackID != 101 || got[0].File != "Nobody - Demo.lrc" || got[1].TrackID != 202 {
		t.Fatalf("unexpected merge: %+v", got)
	}
}

func TestKey(t *testing.T) {
	if got := Key(5920049, 15445219); got != "c:5920049" {
		t.Fatalf("Key with commontrack id = %q", got)
	}
	if got := Key(0, 15445219); got != "t:15445219" {
		t.Fatalf("Key without commontrack id = %q", got)
	}
	if got := (Entry{TrackID: 7}).Key(); got != "t:7" {
		t.Fatalf("Entry.Key = %q", got)
	}
}
