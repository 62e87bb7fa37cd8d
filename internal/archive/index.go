package archive

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"mxm-archiver/internal/atomicfile"
)

// Entry describes one archived track.
type Entry struct {
	CommontrackID int    `json:"commontrackId"`
	TrackID       int    `json:"trackId"`
	Artist        string `json:"artist"`
	Title         string `json:"title"`
	Album         string `json:"album,omitempty"`
	Kind          string `json:"kind"`
	Language      string `json:"language,omitempty"`
	File          string `json:"file"`
	Translation   string `json:"translation,omitempty"`
	Copyright     string `json:"copyright,omitempty"`
}

// Key identifies a track the way requests address it: by commontrack id when there is one,
// by track id otherwise.
func Key(commontrackID, trackID int) string {
	if commontrackID > 0 {
		return "c:" + strconv.Itoa(commontrackID)
	}
	return "t:" + strconv.Itoa(trackID)
}

// Key returns the track key of e.
func (e Entry) Key() string {
	return Key(e.CommontrackID, e.TrackID)
}

// Index persists the list of archived tracks next to the files.
type Index struct {
	path string
}

func NewIndex(path string) *Index {
	return &Index{path: path}
}

type indexPayload struct {
	FetchedAt string  `json:"fetchedAt"`
	Entries   []Entry `json:"entries"`
}

// Load reads the index. If the file does not exist, os.ErrNotExist is returned.
func (ix *Index) Load() ([]Entry, time.Time, error) {
	b, err := os.ReadFile(ix.path)
	if err != nil {
		return nil, time.Time{}, err
	}

	var p indexPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, time.Time{}, fmt.Errorf("parse index %s: %w", ix.path, err)
	}

	var fetchedAt time.Time
	if p.FetchedAt != "" {
		parsed, err := time.Parse(time.RFC3339, p.FetchedAt)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("parse fetchedAt in index %s: %w", ix.path, err)
		}
		fetchedAt = parsed
	}
	return p.Entries, fetchedAt, nil
}

// Save writes entries atomically, stamped with the current time.
func (ix *Index) Save(entries []Entry) error {
	return atomicfile.WriteJSON(ix.path, indexPayload{
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:   entries,
	})
}

func (ix *Index) Path() string {
	return ix.path
}

// Merge combines two entry lists. Entries of next replace those of prev with the same Key;
// the result is sorted by artist then title.
func Merge(prev, next []Entry) []Entry {
	byKey := make(map[string]Entry, len(prev)+len(next))
	for _, e := range prev {
		byKey[e.Key()] = e
	}
	for _, e := range next {
		byKey[e.Key()] = e
	}

	out := make([]Entry, 0, len(byKey))
	for _, e := range byKey {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Artist, b.Artist),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.CommontrackID, b.CommontrackID),
			cmp.Compare(a.TrackID, b.TrackID),
		)
	})
	return out
}
