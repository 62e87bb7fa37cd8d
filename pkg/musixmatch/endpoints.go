package musixmatch

import "context"

type trackItem struct {
	Track Track `json:"track"`
}

type artistItem struct {
	Artist Artist `json:"artist"`
}

type albumItem struct {
	Album Album `json:"album"`
}

// fetchList decodes body[field] as a list of wrapped items and unwraps them.
// A nil slice means the API reported an error; an empty slice is an empty page.
func fetchList[I, T any](ctx context.Context, c *Client, endpoint string, params Params, field string, unwrap func(I) T) ([]T, error) {
	items, err := Fetch[[]I](ctx, c, endpoint, params, field)
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]T, 0, len(*items))
	for _, it := range *items {
		out = append(out, unwrap(it))
	}
	return out, nil
}

func fetchTracks(ctx context.Context, c *Client, endpoint string, params Params) ([]Track, error) {
	return fetchList(ctx, c, endpoint, params, "track_list", func(i trackItem) Track { return i.Track })
}

func fetchArtists(ctx context.Context, c *Client, endpoint string, params Params) ([]Artist, error) {
	return fetchList(ctx, c, endpoint, params, "artist_list", func(i artistItem) Artist { return i.Artist })
}

// TopArtists returns the artist chart of a country.
func (c *Client) TopArtists(ctx context.Context, q *ChartQuery) ([]Artist, error) {
	return fetchArtists(ctx, c, "chart.artists.get", paramsOf(q))
}

// TopTracks returns a track chart of a country.
func (c *Client) TopTracks(ctx context.Context, q *ChartQuery) ([]Track, error) {
	return fetchTracks(ctx, c, "chart.tracks.get", paramsOf(q))
}

// SearchTracks runs track.search.
func (c *Client) SearchTracks(ctx context.Context, q *TrackSearchQuery) ([]Track, error) {
	return fetchTracks(ctx, c, "track.search", paramsOf(q))
}

// Track fetches a single track.
func (c *Client) Track(ctx context.Context, ref TrackRef) (*Track, error) {
	var p Params
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Track](ctx, c, "track.get", p, "track")
}

// MatchTrack finds the track best matching a title, artist and album.
func (c *Client) MatchTrack(ctx context.Context, q *MatcherQuery) (*Track, error) {
	return Fetch[Track](ctx, c, "matcher.track.get", paramsOf(q), "track")
}

// MatchLyrics finds lyrics by title and artist.
func (c *Client) MatchLyrics(ctx context.Context, q *MatcherQuery) (*Lyrics, error) {
	return Fetch[Lyrics](ctx, c, "matcher.lyrics.get", paramsOf(q), "lyrics")
}

// MatchSubtitle finds a subtitle by title and artist, optionally constrained by length.
func (c *Client) MatchSubtitle(ctx context.Context, q *MatcherQuery, sub *SubtitleQuery) (*Subtitle, error) {
	return Fetch[Subtitle](ctx, c, "matcher.subtitle.get", paramsOf(q, sub), "subtitle")
}

// TrackLyrics fetches the lyrics of a track.
func (c *Client) TrackLyrics(ctx context.Context, ref TrackRef) (*Lyrics, error) {
	var p Params
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Lyrics](ctx, c, "track.lyrics.get", p, "lyrics")
}

// TrackLyricsMood fetches the mood analysis of a track's lyrics.
func (c *Client) TrackLyricsMood(ctx context.Context, ref TrackRef) (*LyricsMood, error) {
	var p Params
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[LyricsMood](ctx, c, "track.lyrics.mood.get", p, "")
}

// TrackLyricsTranslation fetches lyrics with a translation in Lyrics.Translated.
func (c *Client) TrackLyricsTranslation(ctx context.Context, ref TrackRef, q *TranslationQuery) (*Lyrics, error) {
	p := paramsOf(q)
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Lyrics](ctx, c, "track.lyrics.translation.get", p, "lyrics")
}

// TrackSubtitle fetches the time-synced lyrics of a track.
func (c *Client) TrackSubtitle(ctx context.Context, ref TrackRef, q *SubtitleQuery) (*Subtitle, error) {
	p := paramsOf(q)
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Subtitle](ctx, c, "track.subtitle.get", p, "subtitle")
}

// TrackSubtitleTranslation fetches a subtitle with a translation in Subtitle.Translated.
func (c *Client) TrackSubtitleTranslation(ctx context.Context, ref TrackRef, tq *TranslationQuery, sq *SubtitleQuery) (*Subtitle, error) {
	p := paramsOf(tq, sq)
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Subtitle](ctx, c, "track.subtitle.translation.get", p, "subtitle")
}

// TrackSnippet fetches a short excerpt of a track's lyrics.
func (c *Client) TrackSnippet(ctx context.Context, ref TrackRef) (*Snippet, error) {
	var p Params
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Snippet](ctx, c, "track.snippet.get", p, "snippet")
}

// Artist fetches a single artist.
func (c *Client) Artist(ctx context.Context, ref ArtistRef) (*Artist, error) {
	var p Params
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Artist](ctx, c, "artist.get", p, "artist")
}

// SearchArtists runs artist.search.
func (c *Client) SearchArtists(ctx context.Context, q *ArtistSearchQuery) ([]Artist, error) {
	return fetchArtists(ctx, c, "artist.search", paramsOf(q))
}

// ArtistAlbums lists the discography of an artist.
func (c *Client) ArtistAlbums(ctx context.Context, ref ArtistRef, q *AlbumsQuery) ([]Album, error) {
	p := paramsOf(q)
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return fetchList(ctx, c, "artist.albums.get", p, "album_list", func(i albumItem) Album { return i.Album })
}

// RelatedArtists lists artists similar to the given one.
func (c *Client) RelatedArtists(ctx context.Context, ref ArtistRef, q *Paging) ([]Artist, error) {
	p := paramsOf(q)
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return fetchArtists(ctx, c, "artist.related.get", p)
}

// Album fetches a single album.
func (c *Client) Album(ctx context.Context, ref AlbumRef) (*Album, error) {
	var p Params
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return Fetch[Album](ctx, c, "album.get", p, "album")
}

// AlbumTracks lists the tracks of an album.
func (c *Client) AlbumTracks(ctx context.Context, ref AlbumRef, q *AlbumTracksQuery) ([]Track, error) {
	p := paramsOf(q)
	if err := ref.apply(&p); err != nil {
		return nil, err
	}
	return fetchTracks(ctx, c, "album.tracks.get", p)
}

// Genres lists every music genre known to the catalogue.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	return fetchList(ctx, c, "music.genres.get", Params{}, "music_genre_list", func(e GenreEntry) Genre { return e.Genre })
}
