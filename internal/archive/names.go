package archive

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxNameBytes = 200

var replacer = strings.NewReplacer(
	":", "_",
	"/", "_",
	"<", "_",
	">", "_",
	"\"", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// MakeValid turns a display name into a filesystem-safe file name component.
func MakeValid(name string) string {
	name = replacer.Replace(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, name)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.Trim(name, ". ")

	for len(name) > maxNameBytes {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return strings.TrimRight(name, ". ")
}

// FileName builds "<artist> - <title><ext>". Missing parts fall back to placeholders.
func FileName(artist, title, ext string) string {
	artist = MakeValid(artist)
	title = MakeValid(title)
	if artist == "" {
		artist = "Unknown Artist"
	}
	if title == "" {
		title = "Untitled"
	}
	return MakeValid(artist+" - "+title) + ext
}
