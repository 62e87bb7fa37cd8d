package musixmatch

// Query parameter names understood by the API. Each builder setter owns exactly one of them.
const (
	keyQTrack                = "q_track"
	keyQArtist               = "q_artist"
	keyQAlbum                = "q_album"
	keyQLyrics               = "q_lyrics"
	keyQTrackArtist          = "q_track_artist"
	keyQWriter               = "q_writer"
	keyQ                     = "q"
	keyFArtistID             = "f_artist_id"
	keyFArtistMBID           = "f_artist_mbid"
	keyFMusicGenreID         = "f_music_genre_id"
	keyFLyricsLanguage       = "f_lyrics_language"
	keyFHasLyrics            = "f_has_lyrics"
	keyFReleaseDateMin       = "f_track_release_group_first_release_date_min"
	keyFReleaseDateMax       = "f_track_release_group_first_release_date_max"
	keySArtistRating         = "s_artist_rating"
	keySTrackRating          = "s_track_rating"
	keySReleaseDate          = "s_release_date"
	keyGAlbumName            = "g_album_name"
	keyQuorumFactor          = "quorum_factor"
	keyPage                  = "page"
	keyPageSize              = "page_size"
	keyCountry               = "country"
	keyChartName             = "chart_name"
	keyFSubtitleLength       = "f_subtitle_length"
	keyFSubtitleMaxDeviation = "f_subtitle_length_max_deviation"
	keySubtitleFormat        = "subtitle_format"
	keySelectedLanguage      = "selected_language"
	keyMinCompleted          = "min_completed"
)

// TrackSearchQuery accumulates the filters of track.search.
// Every setter ignores a nil argument and returns the query for chaining.
type TrackSearchQuery struct {
	params Params
}

// NewTrackSearchQuery returns an empty query.
func NewTrackSearchQuery() *TrackSearchQuery {
	return &TrackSearchQuery{}
}

// SongTitle searches the song title.
func (q *TrackSearchQuery) SongTitle(v *string) *TrackSearchQuery {
	q.params.setString(keyQTrack, v)
	return q
}

// SongArtist searches the artist name.
func (q *TrackSearchQuery) SongArtist(v *string) *TrackSearchQuery {
	q.params.setString(keyQArtist, v)
	return q
}

// LyricsContain searches for a word in the lyrics.
func (q *TrackSearchQuery) LyricsContain(v *string) *TrackSearchQuery {
	q.params.setString(keyQLyrics, v)
	return q
}

// TitleOrArtistContain searches for a word in the song title or the artist name.
func (q *TrackSearchQuery) TitleOrArtistContain(v *string) *TrackSearchQuery {
	q.params.setString(keyQTrackArtist, v)
	return q
}

// Writer searches among the writers.
func (q *TrackSearchQuery) Writer(v *string) *TrackSearchQuery {
	q.params.setString(keyQWriter, v)
	return q
}

// AnyContain searches for a word in the title, the artist name or the lyrics.
func (q *TrackSearchQuery) AnyContain(v *string) *TrackSearchQuery {
	q.params.setString(keyQ, v)
	return q
}

// ArtistID filters by artist id.
func (q *TrackSearchQuery) ArtistID(v *uint) *TrackSearchQuery {
	q.params.setUint(keyFArtistID, v)
	return q
}

// MusicGenreID filters by music genre id.
func (q *TrackSearchQuery) MusicGenreID(v *uint) *TrackSearchQuery {
	q.params.setUint(keyFMusicGenreID, v)
	return q
}

// LyricsLanguage filters by lyrics language (ISO 639-1).
func (q *TrackSearchQuery) LyricsLanguage(v *string) *TrackSearchQuery {
	q.params.setString(keyFLyricsLanguage, v)
	return q
}

// HasLyrics keeps only tracks with lyrics when true.
func (q *TrackSearchQuery) HasLyrics(v *bool) *TrackSearchQuery {
	q.params.setBool(keyFHasLyrics, v)
	return q
}

// ReleasedAfter keeps tracks first released after the date (YYYYMMDD).
func (q *TrackSearchQuery) ReleasedAfter(v *string) *TrackSearchQuery {
	q.params.setString(keyFReleaseDateMin, v)
	return q
}

// ReleasedBefore keeps tracks first released before the date (YYYYMMDD).
func (q *TrackSearchQuery) ReleasedBefore(v *string) *TrackSearchQuery {
	q.params.setString(keyFReleaseDateMax, v)
	return q
}

// SortArtistRating sorts by artist popularity.
func (q *TrackSearchQuery) SortArtistRating(v *SortOrder) *TrackSearchQuery {
	setToken(&q.params, keySArtistRating, v)
	return q
}

// SortTrackRating sorts by track popularity.
func (q *TrackSearchQuery) SortTrackRating(v *SortOrder) *TrackSearchQuery {
	setToken(&q.params, keySTrackRating, v)
	return q
}

// QuorumFactor matches only part of the query string. Documented range is 0.1 to 0.9.
func (q *TrackSearchQuery) QuorumFactor(v *float64) *TrackSearchQuery {
	q.params.setFloat(keyQuorumFactor, v)
	return q
}

// Page selects the result page.
func (q *TrackSearchQuery) Page(v *uint) *TrackSearchQuery {
	q.params.setUint(keyPage, v)
	return q
}

// PageSize sets the page size. Documented range is 1 to 100.
func (q *TrackSearchQuery) PageSize(v *uint) *TrackSearchQuery {
	q.params.setUint(keyPageSize, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *TrackSearchQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *TrackSearchQuery) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

// ArtistSearchQuery accumulates the filters of artist.search.
type ArtistSearchQuery struct {
	params Params
}

// NewArtistSearchQuery returns an empty query.
func NewArtistSearchQuery() *ArtistSearchQuery {
	return &ArtistSearchQuery{}
}

// Artist searches the artist name.
func (q *ArtistSearchQuery) Artist(v *string) *ArtistSearchQuery {
	q.params.setString(keyQArtist, v)
	return q
}

// ArtistID filters by artist id.
func (q *ArtistSearchQuery) ArtistID(v *uint) *ArtistSearchQuery {
	q.params.setUint(keyFArtistID, v)
	return q
}

// ArtistMBID filters by MusicBrainz artist id.
func (q *ArtistSearchQuery) ArtistMBID(v *string) *ArtistSearchQuery {
	q.params.setString(keyFArtistMBID, v)
	return q
}

// Page selects the result page, starting at 1.
func (q *ArtistSearchQuery) Page(v *uint) *ArtistSearchQuery {
	q.params.setUint(keyPage, v)
	return q
}

// PageSize sets the page size. Documented range is 1 to 100.
func (q *ArtistSearchQuery) PageSize(v *uint) *ArtistSearchQuery {
	q.params.setUint(keyPageSize, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *ArtistSearchQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *ArtistSearchQuery) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

// ChartQuery accumulates the filters of chart.artists.get and chart.tracks.get.
// ChartName and HasLyrics only apply to the track chart.
type ChartQuery struct {
	params Params
}

// NewChartQuery returns an empty query.
func NewChartQuery() *ChartQuery {
	return &ChartQuery{}
}

// Country is an ISO 3166 country code; the API defaults to "us".
func (q *ChartQuery) Country(v *string) *ChartQuery {
	q.params.setString(keyCountry, v)
	return q
}

// ChartName selects the track chart.
func (q *ChartQuery) ChartName(v *Chart) *ChartQuery {
	setToken(&q.params, keyChartName, v)
	return q
}

// HasLyrics keeps only tracks with lyrics.
func (q *ChartQuery) HasLyrics(v *bool) *ChartQuery {
	q.params.setBool(keyFHasLyrics, v)
	return q
}

// Page selects the result page, starting at 1.
func (q *ChartQuery) Page(v *uint) *ChartQuery {
	q.params.setUint(keyPage, v)
	return q
}

// PageSize sets the page size. Documented range is 1 to 100.
func (q *ChartQuery) PageSize(v *uint) *ChartQuery {
	q.params.setUint(keyPageSize, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *ChartQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *ChartQuery) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

// MatcherQuery carries the title/artist/album triple used by the matcher.* endpoints.
type MatcherQuery struct {
	params Params
}

// NewMatcherQuery returns an empty query.
func NewMatcherQuery() *MatcherQuery {
	return &MatcherQuery{}
}

// Title is the song title to match.
func (q *MatcherQuery) Title(v *string) *MatcherQuery {
	q.params.setString(keyQTrack, v)
	return q
}

// Artist is the artist name to match.
func (q *MatcherQuery) Artist(v *string) *MatcherQuery {
	q.params.setString(keyQArtist, v)
	return q
}

// Album is ignored by matcher.lyrics.get.
func (q *MatcherQuery) Album(v *string) *MatcherQuery {
	q.params.setString(keyQAlbum, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *MatcherQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// SubtitleQuery carries the length constraints and output format of the subtitle endpoints.
type SubtitleQuery struct {
	params Params
}

// NewSubtitleQuery returns an empty query.
func NewSubtitleQuery() *SubtitleQuery {
	return &SubtitleQuery{}
}

// Length is the desired subtitle length in seconds.
func (q *SubtitleQuery) Length(v *uint) *SubtitleQuery {
	q.params.setUint(keyFSubtitleLength, v)
	return q
}

// MaxDeviation is the accepted deviation from Length in seconds.
func (q *SubtitleQuery) MaxDeviation(v *uint) *SubtitleQuery {
	q.params.setUint(keyFSubtitleMaxDeviation, v)
	return q
}

// Format selects the subtitle body format. Not used by matcher.subtitle.get.
func (q *SubtitleQuery) Format(v *SubtitleFormat) *SubtitleQuery {
	setToken(&q.params, keySubtitleFormat, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *SubtitleQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// TranslationQuery carries the options of the *.translation.get endpoints.
type TranslationQuery struct {
	params Params
}

// NewTranslationQuery returns an empty query.
func NewTranslationQuery() *TranslationQuery {
	return &TranslationQuery{}
}

// Language is the target language (ISO 639-1).
func (q *TranslationQuery) Language(v *string) *TranslationQuery {
	q.params.setString(keySelectedLanguage, v)
	return q
}

// MinCompleted is the minimum completion ratio (0 to 1) of an acceptable translation.
func (q *TranslationQuery) MinCompleted(v *float64) *TranslationQuery {
	q.params.setFloat(keyMinCompleted, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *TranslationQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *TranslationQuery) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

// AlbumsQuery accumulates the options of artist.albums.get.
type AlbumsQuery struct {
	params Params
}

// NewAlbumsQuery returns an empty query.
func NewAlbumsQuery() *AlbumsQuery {
	return &AlbumsQuery{}
}

// GroupByName collapses albums sharing a name when true.
func (q *AlbumsQuery) GroupByName(v *bool) *AlbumsQuery {
	q.params.setBool(keyGAlbumName, v)
	return q
}

// SortReleaseDate orders albums by release date.
func (q *AlbumsQuery) SortReleaseDate(v *SortOrder) *AlbumsQuery {
	setToken(&q.params, keySReleaseDate, v)
	return q
}

// Page selects the result page, starting at 1.
func (q *AlbumsQuery) Page(v *uint) *AlbumsQuery {
	q.params.setUint(keyPage, v)
	return q
}

// PageSize sets the page size. Documented range is 1 to 100.
func (q *AlbumsQuery) PageSize(v *uint) *AlbumsQuery {
	q.params.setUint(keyPageSize, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *AlbumsQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *AlbumsQuery) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

// AlbumTracksQuery accumulates the options of album.tracks.get.
type AlbumTracksQuery struct {
	params Params
}

// NewAlbumTracksQuery returns an empty query.
func NewAlbumTracksQuery() *AlbumTracksQuery {
	return &AlbumTracksQuery{}
}

// HasLyrics keeps only tracks with lyrics.
func (q *AlbumTracksQuery) HasLyrics(v *bool) *AlbumTracksQuery {
	q.params.setBool(keyFHasLyrics, v)
	return q
}

// Page selects the result page, starting at 1.
func (q *AlbumTracksQuery) Page(v *uint) *AlbumTracksQuery {
	q.params.setUint(keyPage, v)
	return q
}

// PageSize sets the page size. Documented range is 1 to 100.
func (q *AlbumTracksQuery) PageSize(v *uint) *AlbumTracksQuery {
	q.params.setUint(keyPageSize, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *AlbumTracksQuery) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *AlbumTracksQuery) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

// Paging carries page and page_size for endpoints that take nothing else.
type Paging struct {
	params Params
}

// NewPaging returns an empty paging.
func NewPaging() *Paging {
	return &Paging{}
}

// Page selects the result page, starting at 1.
func (q *Paging) Page(v *uint) *Paging {
	q.params.setUint(keyPage, v)
	return q
}

// PageSize sets the page size. Documented range is 1 to 100.
func (q *Paging) PageSize(v *uint) *Paging {
	q.params.setUint(keyPageSize, v)
	return q
}

// Params returns a copy of the accumulated parameters. A nil query yields an empty set.
func (q *Paging) Params() Params {
	if q == nil {
		return Params{}
	}
	return clone(q.params)
}

// Validate reports documented range violations (see Params.Validate). A nil query is valid.
func (q *Paging) Validate() error {
	if q == nil {
		return nil
	}
	return q.params.Validate()
}

func clone(p Params) Params {
	var out Params
	out.Merge(p)
	return out
}

type paramser interface {
	Params() Params
}

// paramsOf merges the parameters of several builders. Nil builders contribute nothing.
func paramsOf(qs ...paramser) Params {
	var out Params
	for _, q := range qs {
		if q != nil {
			out.Merge(q.Params())
		}
	}
	return out
}
