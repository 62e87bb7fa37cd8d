// Package match ranks search results by how closely they resemble a wanted title and artist.
package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"mxm-archiver/pkg/musixmatch"
)

// DefaultThreshold is the minimum Jaro-Winkler similarity accepted by Best.
const DefaultThreshold = 0.85

// Candidate is a track paired with its similarity score.
type Candidate struct {
	Track musixmatch.Track
	Score float64
}

// Normalize lowercases s and drops bracketed suffixes such as "(Remastered 2011)" or "[Live]".
func Normalize(s string) string {
	if idx := strings.IndexAny(s, "(["); idx > 0 {
		s = s[:idx]
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Score compares "artist title" against the same fields of track. An empty title or artist
// narrows the comparison to the other field.
func Score(title, artist string, track musixmatch.Track) float64 {
	query := Normalize(artist + " " + title)
	cand := Normalize(track.ArtistName + " " + track.Name)
	if artist == "" {
		query = Normalize(title)
		cand = Normalize(track.Name)
	}
	if title == "" {
		query = Normalize(artist)
		cand = Normalize(track.ArtistName)
	}
	return strutil.Similarity(query, cand, metrics.NewJaroWinkler())
}

// Rank scores every track and returns them best first. Ties keep the API order.
func Rank(title, artist string, tracks []musixmatch.Track) []Candidate {
	out := make([]Candidate, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, Candidate{Track: t, Score: Score(title, artist, t)})
	}
	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// Best returns the highest scoring track at or above threshold.
func Best(title, artist string, tracks []musixmatch.Track, threshold float64) (Candidate, bool) {
	ranked := Rank(title, artist, tracks)
	if len(ranked) == 0 || ranked[0].Score < threshold {
		return Candidate{}, false
	}
	return ranked[0], true
}
