package archive

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"mxm-archiver/internal/atomicfile"
	"mxm-archiver/pkg/musixmatch"
)

const (
	KindLyrics   = "lyrics"
	KindSubtitle = "subtitle"
)

var ErrEmpty = errors.New("nothing to archive")

// Writer stores lyrics and subtitles as files under a directory. Each file name stem
// belongs to one track; a second track with the same artist and title gets its id appended.
type Writer struct {
	dir string

	mu     sync.Mutex
	owners map[string]string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, owners: make(map[string]string)}
}

// TrackKey is the Key of a track.
func TrackKey(t musixmatch.Track) string {
	return Key(t.CommontrackID, t.ID)
}

// Reserve registers the names used by entries of an earlier run, so that other tracks do not
// overwrite them.
func (w *Writer) Reserve(entries []Entry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range entries {
		if e.File == "" {
			continue
		}
		w.owners[strings.TrimSuffix(e.File, filepath.Ext(e.File))] = e.Key()
	}
}

// stem returns the file name stem of track, without extension.
func (w *Writer) stem(track musixmatch.Track) string {
	key := TrackKey(track)
	stem := FileName(track.ArtistName, track.Name, "")

	w.mu.Lock()
	defer w.mu.Unlock()
	if owner, ok := w.owners[stem]; ok && owner != key {
		stem = fmt.Sprintf("%s (%s)", stem, key[len("c:"):])
	}
	w.owners[stem] = key
	return stem
}

// SaveLyrics writes "<artist> - <title>.txt" and, when lyrics carries a translation,
// "<artist> - <title>.<lang>.txt".
func (w *Writer) SaveLyrics(track musixmatch.Track, lyrics *musixmatch.Lyrics) (Entry, error) {
	if lyrics == nil || strings.TrimSpace(lyrics.Body) == "" {
		return Entry{}, fmt.Errorf("lyrics of %q: %w", track.Name, ErrEmpty)
	}

	entry := newEntry(track, KindLyrics)
	entry.Language = lyrics.Language
	entry.Copyright = lyrics.Copyright
	stem := w.stem(track)
	entry.File = stem + ".txt"

	if err := w.write(entry.File, withFooter(lyrics.Body, lyrics.Copyright)); err != nil {
		return Entry{}, err
	}

	if tr := lyrics.Translated; tr != nil && strings.TrimSpace(tr.Body) != "" {
		entry.Translation = stem + "." + MakeValid(tr.Language) + ".txt"
		if err := w.write(entry.Translation, tr.Body); err != nil {
			return Entry{}, err
		}
	}
	return entry, nil
}

// SaveSubtitle writes the subtitle body with the extension of format, and its translation
// when present.
func (w *Writer) SaveSubtitle(track musixmatch.Track, sub *musixmatch.Subtitle, format musixmatch.SubtitleFormat) (Entry, error) {
	if sub == nil || strings.TrimSpace(sub.Body) == "" {
		return Entry{}, fmt.Errorf("subtitle of %q: %w", track.Name, ErrEmpty)
	}

	entry := newEntry(track, KindSubtitle)
	entry.Language = sub.Language
	entry.Copyright = sub.Copyright
	stem := w.stem(track)
	entry.File = stem + format.Ext()

	if err := w.write(entry.File, sub.Body); err != nil {
		return Entry{}, err
	}

	if tr := sub.Translated; tr != nil && strings.TrimSpace(tr.Body) != "" {
		entry.Translation = stem + "." + MakeValid(tr.Language) + format.Ext()
		if err := w.write(entry.Translation, tr.Body); err != nil {
			return Entry{}, err
		}
	}
	return entry, nil
}

func (w *Writer) write(name, body string) error {
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return atomicfile.Write(filepath.Join(w.dir, name), []byte(body), 0o644)
}

func newEntry(track musixmatch.Track, kind string) Entry {
	return Entry{
		CommontrackID: track.CommontrackID,
		TrackID:       track.ID,
		Artist:        track.ArtistName,
		Title:         track.Name,
		Album:         track.AlbumName,
		Kind:          kind,
	}
}

func withFooter(body, copyright string) string {
	body = strings.TrimRight(body, "\n")
	if copyright == "" {
		return body
	}
	return body + "\n\n" + strings.TrimSpace(copyright)
}
