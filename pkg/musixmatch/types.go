package musixmatch

import (
	"bytes"
	"fmt"
	"strconv"
)

// Flag is a boolean the API encodes as 0/1. JSON booleans are accepted too.
type Flag bool

// UnmarshalJSON accepts 0/1 (also quoted), true/false and null.
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null":
		return nil
	case "true":
		*f = true
		return nil
	case "false":
		*f = false
		return nil
	}
	n, err := strconv.ParseInt(string(bytes.Trim(b, `"`)), 10, 64)
	if err != nil {
		return fmt.Errorf("flag: %q is neither a boolean nor an integer", b)
	}
	*f = n != 0
	return nil
}

// MarshalJSON writes the API form, 0 or 1.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Track is returned by the track, chart, album and matcher endpoints.
type Track struct {
	ID               int         `json:"track_id"`
	Name             string      `json:"track_name"`
	NameTranslations []NameEntry `json:"track_name_translation_list"`
	Rating           int         `json:"track_rating"`
	FavouriteCount   int         `json:"num_favourite"`
	CommontrackID    int         `json:"commontrack_id"`
	Instrumental     Flag        `json:"instrumental"`
	Explicit         Flag        `json:"explicit"`
	HasLyrics        Flag        `json:"has_lyrics"`
	HasSubtitles     Flag        `json:"has_subtitles"`
	HasRichsync      Flag        `json:"has_richsync"`
	AlbumID          int         `json:"album_id"`
	AlbumName        string      `json:"album_name"`
	ArtistID         int         `json:"artist_id"`
	ArtistName       string      `json:"artist_name"`
	ShareURL         string      `json:"track_share_url"`
	EditURL          string      `json:"track_edit_url"`
	Restricted       Flag        `json:"restricted"`
	UpdatedTime      string      `json:"updated_time"`
	PrimaryGenres    GenreList   `json:"primary_genres"`
}

// NameEntry is one item of a *_name_translation_list.
type NameEntry struct {
	Translation Translation `json:"track_name_translation"`
}

// Translation is a localized name.
type Translation struct {
	Language    string `json:"language"`
	Translation string `json:"translation"`
}

// GenreList is the music_genre_list wrapper used by primary_genres and music.genres.get.
type GenreList struct {
	Items []GenreEntry `json:"music_genre_list"`
}

// GenreEntry wraps one genre of a music_genre_list.
type GenreEntry struct {
	Genre Genre `json:"music_genre"`
}

// Genre is a music genre; ParentID is 0 for top-level genres.
type Genre struct {
	ID           int    `json:"music_genre_id"`
	ParentID     int    `json:"music_genre_parent_id"`
	Name         string `json:"music_genre_name"`
	NameExtended string `json:"music_genre_name_extended"`
	Vanity       string `json:"music_genre_vanity"`
}

// Artist is returned by artist.get, artist.search, artist.related.get and chart.artists.get.
type Artist struct {
	ID               int                `json:"artist_id"`
	MBID             string             `json:"artist_mbid"`
	Name             string             `json:"artist_name"`
	NameTranslations []ArtistNameEntry  `json:"artist_name_translation_list"`
	Comment          string             `json:"artist_comment"`
	Country          string             `json:"artist_country"`
	Aliases          []ArtistAliasEntry `json:"artist_alias_list"`
	Rating           int                `json:"artist_rating"`
	TwitterURL       string             `json:"artist_twitter_url"`
	Restricted       Flag               `json:"restricted"`
	BeginDateYear    string             `json:"begin_date_year"`
	BeginDate        string             `json:"begin_date"`
	EndDateYear      string             `json:"end_date_year"`
	EndDate          string             `json:"end_date"`
	UpdatedTime      string             `json:"updated_time"`
}

// ArtistNameEntry is one item of artist_name_translation_list.
type ArtistNameEntry struct {
	Translation Translation `json:"artist_name_translation"`
}

// ArtistAliasEntry is one alternative artist name.
type ArtistAliasEntry struct {
	Alias string `json:"artist_alias"`
}

// Album is returned by album.get and artist.albums.get.
type Album struct {
	ID            int         `json:"album_id"`
	MBID          string      `json:"album_mbid"`
	Name          string      `json:"album_name"`
	Rating        int         `json:"album_rating"`
	TrackCount    int         `json:"album_track_count"`
	ReleaseDate   string      `json:"album_release_date"`
	ReleaseType   string      `json:"album_release_type"`
	ArtistID      int         `json:"artist_id"`
	ArtistName    string      `json:"artist_name"`
	PLine         string      `json:"album_pline"`
	Copyright     string      `json:"album_copyright"`
	Label         string      `json:"album_label"`
	PrimaryGenres GenreList   `json:"primary_genres"`
	Restricted    Flag        `json:"restricted"`
	ExternalIDs   ExternalIDs `json:"external_ids"`
	UpdatedTime   string      `json:"updated_time"`
}

// ExternalIDs lists the album's identifiers on other services.
type ExternalIDs struct {
	Spotify     []string `json:"spotify"`
	ITunes      []string `json:"itunes"`
	AmazonMusic []string `json:"amazon_music"`
}

// Lyrics is returned by the lyrics endpoints. Translated is only set by track.lyrics.translation.get.
type Lyrics struct {
	ID                int              `json:"lyrics_id"`
	Restricted        Flag             `json:"restricted"`
	Instrumental      Flag             `json:"instrumental"`
	Explicit          Flag             `json:"explicit"`
	Body              string           `json:"lyrics_body"`
	Language          string           `json:"lyrics_language"`
	ScriptTrackingURL string           `json:"script_tracking_url"`
	PixelTrackingURL  string           `json:"pixel_tracking_url"`
	Copyright         string           `json:"lyrics_copyright"`
	BacklinkURL       string           `json:"backlink_url"`
	UpdatedTime       string           `json:"updated_time"`
	Translated        *TranslatedLyric `json:"lyrics_translated,omitempty"`
}

// TranslatedLyric is the translated body in the selected language.
type TranslatedLyric struct {
	Language string `json:"selected_language"`
	Body     string `json:"lyrics_body"`
}

// Subtitle is returned by the subtitle endpoints. Body is in the requested SubtitleFormat.
type Subtitle struct {
	ID                int                 `json:"subtitle_id"`
	Restricted        Flag                `json:"restricted"`
	Body              string              `json:"subtitle_body"`
	Language          string              `json:"subtitle_language"`
	Length            int                 `json:"subtitle_length"`
	ScriptTrackingURL string              `json:"script_tracking_url"`
	PixelTrackingURL  string              `json:"pixel_tracking_url"`
	HTMLTrackingURL   string              `json:"html_tracking_url"`
	Copyright         string              `json:"lyrics_copyright"`
	UpdatedTime       string              `json:"updated_time"`
	Translated        *TranslatedSubtitle `json:"subtitle_translated,omitempty"`
}

// TranslatedSubtitle is the translated subtitle body in the selected language.
type TranslatedSubtitle struct {
	Language string `json:"selected_language"`
	Body     string `json:"subtitle_body"`
}

// Snippet is a short, representative excerpt of a track's lyrics.
type Snippet struct {
	ID                int    `json:"snippet_id"`
	Language          string `json:"snippet_language"`
	Restricted        Flag   `json:"restricted"`
	Instrumental      Flag   `json:"instrumental"`
	Body              string `json:"snippet_body"`
	ScriptTrackingURL string `json:"script_tracking_url"`
	PixelTrackingURL  string `json:"pixel_tracking_url"`
	HTMLTrackingURL   string `json:"html_tracking_url"`
	UpdatedTime       string `json:"updated_time"`
}

// LyricsMood is the mood analysis of a track's lyrics.
type LyricsMood struct {
	Moods   []Mood      `json:"mood_list"`
	RawData MoodRawData `json:"raw_data"`
}

// Mood is a labelled mood score between 0 and 1.
type Mood struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MoodRawData holds the valence/arousal coordinates the moods derive from.
type MoodRawData struct {
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
}
