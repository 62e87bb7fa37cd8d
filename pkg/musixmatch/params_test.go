package musixmatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsKeepInsertionOrder(t *testing.T) {
	var p Params
	p.Set("b", "1")
	p.Set("a", "2")
	p.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, p.Keys())
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, 2, p.Len())
}

func TestParamsMergeOverrides(t *testing.T) {
	var a, b Params
	a.Set("page", "1")
	a.Set("q", "x")
	b.Set("page", "2")

	a.Merge(b)
	v, _ := a.Get("page")
	assert.Equal(t, "2", v)
	assert.Equal(t, []string{"page", "q"}, a.Keys())
}

func TestEmptyBuildersProduceNoParams(t *testing.T) {
	builders := map[string]paramser{
		"track search":  NewTrackSearchQuery(),
		"artist search": NewArtistSearchQuery(),
		"chart":         NewChartQuery(),
		"matcher":       NewMatcherQuery(),
		"subtitle":      NewSubtitleQuery(),
		"translation":   NewTranslationQuery(),
		"albums":        NewAlbumsQuery(),
		"album tracks":  NewAlbumTracksQuery(),
		"paging":        NewPaging(),
	}
	for name, b := range builders {
		assert.Zero(t, b.Params().Len(), name)
	}
}

func TestNilArgumentsAreIgnored(t *testing.T) {
	q := NewTrackSearchQuery().
		SongTitle(nil).
		ArtistID(nil).
		HasLyrics(nil).
		SortTrackRating(nil).
		QuorumFactor(nil).
		Page(nil)
	assert.Zero(t, q.Params().Len())

	q.SongTitle(Ptr("Bohemian Rhapsody")).SongTitle(nil)
	v, ok := q.Params().Get(keyQTrack)
	require.True(t, ok)
	assert.Equal(t, "Bohemian Rhapsody", v)
}

func TestTrackSearchSettersUseDistinctKeys(t *testing.T) {
	q := NewTrackSearchQuery().
		SongTitle(Ptr("t")).
		SongArtist(Ptr("a")).
		LyricsContain(Ptr("l")).
		TitleOrArtistContain(Ptr("ta")).
		Writer(Ptr("w")).
		AnyContain(Ptr("any")).
		ArtistID(Ptr[uint](1)).
		MusicGenreID(Ptr[uint](2)).
		LyricsLanguage(Ptr("en")).
		HasLyrics(Ptr(true)).
		ReleasedAfter(Ptr("20000101")).
		ReleasedBefore(Ptr("20101231")).
		SortArtistRating(Ptr(Descending)).
		SortTrackRating(Ptr(Ascending)).
		QuorumFactor(Ptr(0.5)).
		Page(Ptr[uint](3)).
		PageSize(Ptr[uint](4))

	assert.Equal(t, 17, q.Params().Len())
	want := [][2]string{
		{"q_track", "t"},
		{"q_artist", "a"},
		{"q_lyrics", "l"},
		{"q_track_artist", "ta"},
		{"q_writer", "w"},
		{"q", "any"},
		{"f_artist_id", "1"},
		{"f_music_genre_id", "2"},
		{"f_lyrics_language", "en"},
		{"f_has_lyrics", "true"},
		{"f_track_release_group_first_release_date_min", "20000101"},
		{"f_track_release_group_first_release_date_max", "20101231"},
		{"s_artist_rating", "desc"},
		{"s_track_rating", "asc"},
		{"quorum_factor", "0.5"},
		{"page", "3"},
		{"page_size", "4"},
	}
	values := q.Params().Values()
	for _, kv := range want {
		assert.Equal(t, []string{kv[1]}, values[kv[0]], kv[0])
	}
}

func TestOtherBuildersUseDistinctKeys(t *testing.T) {
	tests := []struct {
		name string
		q    paramser
		want int
	}{
		{"artist search", NewArtistSearchQuery().Artist(Ptr("a")).ArtistID(Ptr[uint](1)).ArtistMBID(Ptr("m")).Page(Ptr[uint](1)).PageSize(Ptr[uint](2)), 5},
		{"chart", NewChartQuery().Country(Ptr("it")).ChartName(Ptr(ChartHot)).HasLyrics(Ptr(false)).Page(Ptr[uint](1)).PageSize(Ptr[uint](2)), 5},
		{"matcher", NewMatcherQuery().Title(Ptr("t")).Artist(Ptr("a")).Album(Ptr("b")), 3},
		{"subtitle", NewSubtitleQuery().Length(Ptr[uint](200)).MaxDeviation(Ptr[uint](3)).Format(Ptr(SubtitleDFXP)), 3},
		{"translation", NewTranslationQuery().Language(Ptr("it")).MinCompleted(Ptr(1.0)), 2},
		{"albums", NewAlbumsQuery().GroupByName(Ptr(true)).SortReleaseDate(Ptr(Descending)).Page(Ptr[uint](1)).PageSize(Ptr[uint](2)), 4},
		{"album tracks", NewAlbumTracksQuery().HasLyrics(Ptr(true)).Page(Ptr[uint](1)).PageSize(Ptr[uint](2)), 3},
		{"paging", NewPaging().Page(Ptr[uint](1)).PageSize(Ptr[uint](2)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Params().Len())
		})
	}
}

func TestChartAndSubtitleTokens(t *testing.T) {
	p := NewChartQuery().ChartName(Ptr(ChartWeeklyNew)).Params()
	v, _ := p.Get(keyChartName)
	assert.Equal(t, "mxmweekly_new", v)

	p = NewSubtitleQuery().Format(Ptr(SubtitleSTLEDU)).Params()
	v, _ = p.Get(keySubtitleFormat)
	assert.Equal(t, "stledu", v)
}

func TestEnumTokensAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []SortOrder{Ascending, Descending} {
		seen[s.String()] = true
		back, err := ParseSortOrder(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	assert.Len(t, seen, 2)

	seen = map[string]bool{}
	for _, c := range []Chart{ChartTop, ChartHot, ChartWeekly, ChartWeeklyNew} {
		seen[c.String()] = true
		back, err := ParseChart(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
	assert.Len(t, seen, 4)

	seen = map[string]bool{}
	for _, f := range []SubtitleFormat{SubtitleLRC, SubtitleDFXP, SubtitleSTLEDU} {
		seen[f.String()] = true
		back, err := ParseSubtitleFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, back)
	}
	assert.Len(t, seen, 3)

	_, err := ParseChart("weekly")
	assert.Error(t, err)
	_, err = ParseSortOrder("up")
	assert.Error(t, err)
	_, err = ParseSubtitleFormat("srt")
	assert.Error(t, err)
}

func TestNumberAndBoolRendering(t *testing.T) {
	p := NewTrackSearchQuery().
		QuorumFactor(Ptr(0.9)).
		HasLyrics(Ptr(false)).
		ArtistID(Ptr[uint](118)).
		Params()

	v, _ := p.Get(keyQuorumFactor)
	assert.Equal(t, "0.9", v)
	v, _ = p.Get(keyFHasLyrics)
	assert.Equal(t, "false", v)
	v, _ = p.Get(keyFArtistID)
	assert.Equal(t, "118", v)
}

func TestParamsAreForwardedVerbatimUntilValidated(t *testing.T) {
	q := NewTrackSearchQuery().
		Page(Ptr[uint](0)).
		PageSize(Ptr[uint](500)).
		QuorumFactor(Ptr(2.0))

	v, _ := q.Params().Get(keyPageSize)
	assert.Equal(t, "500", v)

	err := q.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Contains(t, err.Error(), "page=0")
	assert.Contains(t, err.Error(), "page_size=500")
	assert.Contains(t, err.Error(), "quorum_factor=2")

	ok := NewTranslationQuery().MinCompleted(Ptr(0.7))
	assert.NoError(t, ok.Validate())
	bad := NewTranslationQuery().MinCompleted(Ptr(1.5))
	assert.ErrorIs(t, bad.Validate(), ErrOutOfRange)
}

func TestNilBuildersValidate(t *testing.T) {
	validators := []interface{ Validate() error }{
		(*TrackSearchQuery)(nil),
		(*ArtistSearchQuery)(nil),
		(*ChartQuery)(nil),
		(*TranslationQuery)(nil),
		(*AlbumsQuery)(nil),
		(*AlbumTracksQuery)(nil),
		(*Paging)(nil),
	}
	for _, v := range validators {
		assert.NotPanics(t, func() { assert.NoError(t, v.Validate()) })
	}
}

func TestParamsReturnsACopy(t *testing.T) {
	q := NewPaging().Page(Ptr[uint](1))
	p := q.Params()
	p.Set("page", "9")

	v, _ := q.Params().Get("page")
	assert.Equal(t, "1", v)
}

func TestParamsOfMergesBuildersAndSkipsNil(t *testing.T) {
	var sub *SubtitleQuery
	p := paramsOf(NewMatcherQuery().Title(Ptr("t")), sub, NewTranslationQuery().Language(Ptr("fr")))
	assert.Equal(t, []string{keyQTrack, keySelectedLanguage}, p.Keys())
}

func TestReferences(t *testing.T) {
	tests := []struct {
		name string
		ref  interface{ apply(*Params) error }
		key  string
		val  string
	}{
		{"track id", ByTrackID(15445219), "track_id", "15445219"},
		{"commontrack id", ByCommontrackID(5920049), "commontrack_id", "5920049"},
		{"isrc", ByTrackISRC("GBUM71029604"), "track_isrc", "GBUM71029604"},
		{"track mbid", ByTrackMBID("mb-1"), "track_mbid", "mb-1"},
		{"artist id", ByArtistID(118), "artist_id", "118"},
		{"artist mbid", ByArtistMBID("mb-2"), "artist_mbid", "mb-2"},
		{"album id", ByAlbumID(14250417), "album_id", "14250417"},
		{"album mbid", ByAlbumMBID("mb-3"), "album_mbid", "mb-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Params
			require.NoError(t, tt.ref.apply(&p))
			v, ok := p.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.val, v)
			assert.Equal(t, 1, p.Len())
		})
	}

	var p Params
	assert.ErrorIs(t, TrackRef{}.apply(&p), ErrInvalidReference)
	assert.ErrorIs(t, ByTrackISRC("").apply(&p), ErrInvalidReference)
}
