package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mxm-archiver/pkg/musixmatch"
)

func tracks() []musixmatch.Track {
	return []musixmatch.Track{
		{ID: 1, Name: "Bohemian Rhapsody (Live Aid)", ArtistName: "Queen"},
		{ID: 2, Name: "Bohemian Rhapsody - Remastered 2011", ArtistName: "Queen"},
		{ID: 3, Name: "Bohemian Rhapsody", ArtistName: "Queen"},
		{ID: 4, Name: "Bohemian Like You", ArtistName: "The Dandy Warhols"},
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "bohemian rhapsody", Normalize("  Bohemian   Rhapsody (Remastered 2011)"))
	assert.Equal(t, "live", Normalize("LIVE [2020]"))
	assert.Equal(t, "(intro)", Normalize("(Intro)"))
}

func TestRankPutsExactMatchFirst(t *testing.T) {
	ranked := Rank("Bohemian Rhapsody", "Queen", tracks())
	require.Len(t, ranked, 4)

	// Bracketed suffixes are ignored, so the live version ties with the plain title and keeps API order.
	assert.Equal(t, 1, ranked[0].Track.ID)
	assert.Equal(t, 3, ranked[1].Track.ID)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.Equal(t, 4, ranked[3].Track.ID)
}

func TestBestHonorsThreshold(t *testing.T) {
	best, ok := Best("Bohemian Rhapsody", "Queen", tracks(), DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "Queen", best.Track.ArtistName)

	_, ok = Best("Stairway to Heaven", "Led Zeppelin", tracks(), DefaultThreshold)
	assert.False(t, ok)

	_, ok = Best("anything", "", nil, 0)
	assert.False(t, ok)
}

func TestScoreWithOnlyArtist(t *testing.T) {
	score := Score("", "queen", musixmatch.Track{Name: "Something Else", ArtistName: "Queen"})
	assert.InDelta(t, 1.0, score, 1e-9)
}
