package musixmatch

import (
	"errors"
	"strconv"
)

// ErrInvalidReference is returned when an endpoint receives a zero TrackRef, ArtistRef or AlbumRef.
var ErrInvalidReference = errors.New("invalid lookup reference")

// lookup is a single identifier parameter; the same entity can be addressed through several
// identifier namespaces (Musixmatch id, commontrack id, ISRC, MusicBrainz id).
type lookup struct {
	key   string
	value string
}

func (l lookup) apply(p *Params) error {
	if l.key == "" || l.value == "" {
		return ErrInvalidReference
	}
	p.Set(l.key, l.value)
	return nil
}

func (l lookup) String() string {
	return l.key + "=" + l.value
}

// TrackRef identifies a track.
type TrackRef struct{ lookup }

// ByTrackID addresses one Musixmatch track id.
func ByTrackID(id uint) TrackRef {
	return TrackRef{lookup{"track_id", strconv.FormatUint(uint64(id), 10)}}
}

// ByCommontrackID addresses every version of a song through its shared commontrack id.
func ByCommontrackID(id uint) TrackRef {
	return TrackRef{lookup{"commontrack_id", strconv.FormatUint(uint64(id), 10)}}
}

// ByTrackISRC addresses a track by its ISRC recording code.
func ByTrackISRC(isrc string) TrackRef {
	return TrackRef{lookup{"track_isrc", isrc}}
}

// ByTrackMBID addresses a track by its MusicBrainz recording id.
func ByTrackMBID(mbid string) TrackRef {
	return TrackRef{lookup{"track_mbid", mbid}}
}

// ArtistRef identifies an artist.
type ArtistRef struct{ lookup }

// ByArtistID addresses a Musixmatch artist id.
func ByArtistID(id uint) ArtistRef {
	return ArtistRef{lookup{"artist_id", strconv.FormatUint(uint64(id), 10)}}
}

// ByArtistMBID addresses an artist by its MusicBrainz id.
func ByArtistMBID(mbid string) ArtistRef {
	return ArtistRef{lookup{"artist_mbid", mbid}}
}

// AlbumRef identifies an album.
type AlbumRef struct{ lookup }

// ByAlbumID addresses a Musixmatch album id.
func ByAlbumID(id uint) AlbumRef {
	return AlbumRef{lookup{"album_id", strconv.FormatUint(uint64(id), 10)}}
}

// ByAlbumMBID addresses an album by its MusicBrainz release id.
func ByAlbumMBID(mbid string) AlbumRef {
	return AlbumRef{lookup{"album_mbid", mbid}}
}
