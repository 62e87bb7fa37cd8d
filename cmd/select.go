package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"mxm-archiver/pkg/musixmatch"
)

var errNotTerminal = errors.New("interactive selection requires a terminal; use -select or -choose=false instead")

// parseTrackIndexes turns "1,3-4" (1-based, inclusive ranges) or "all" into sorted unique
// 0-based indexes below total.
func parseTrackIndexes(raw string, total int) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty track selection")
	}
	if strings.EqualFold(raw, "all") {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid track index %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, fmt.Errorf("invalid track range %q", part)
			}
		}
		if first > last {
			return nil, fmt.Errorf("invalid track range %q: start after end", part)
		}
		if first < 1 || last > total {
			return nil, fmt.Errorf("track index %q out of bounds (1-%d)", part, total)
		}
		for i := first; i <= last; i++ {
			seen[i-1] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no valid track index in %q", raw)
	}
	return selectedIndexesFromSet(seen), nil
}

func selectedIndexesFromSet(selected map[int]struct{}) []int {
	indexes := make([]int, 0, len(selected))
	for idx := range selected {
		indexes = append(indexes, idx)
	}
	slices.Sort(indexes)
	return indexes
}

func tracksFromIndexes(tracks []musixmatch.Track, indexes []int) ([]musixmatch.Track, error) {
	if len(indexes) == 0 {
		return nil, fmt.Errorf("no tracks selected")
	}

	seen := make(map[int]struct{}, len(indexes))
	selected := make([]musixmatch.Track, 0, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(tracks) {
			return nil, fmt.Errorf("selected track index %d out of bounds", idx)
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		selected = append(selected, tracks[idx])
	}
	return selected, nil
}

func trackLabel(t musixmatch.Track) string {
	label := fmt.Sprintf("%s - %s", t.ArtistName, t.Name)
	if t.AlbumName != "" {
		label += " [" + t.AlbumName + "]"
	}
	return label
}

func buildSelectedTracksPreview(tracks []musixmatch.Track, selectedIndexes []int, maxItems int) string {
	if len(selectedIndexes) == 0 {
		return "No tracks selected yet."
	}
	maxItems = max(maxItems, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "Selected %d track(s):", len(selectedIndexes))

	shown := 0
	for _, idx := range selectedIndexes {
		if idx < 0 || idx >= len(tracks) {
			continue
		}
		shown++
		fmt.Fprintf(&b, "\n%d. %s", shown, trackLabel(tracks[idx]))
		if shown >= maxItems {
			break
		}
	}
	if len(selectedIndexes) > shown {
		fmt.Fprintf(&b, "\n... and %d more", len(selectedIndexes)-shown)
	}
	return b.String()
}

func stdinIsTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

func promptAPIKey() (string, error) {
	var key string
	err := huh.NewInput().
		Title("Musixmatch API key").
		Description("Not found in the config file, .env or MUSIXMATCH_API_KEY.").
		EchoMode(huh.EchoModePassword).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("the key is required")
			}
			return nil
		}).
		Value(&key).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

func confirmSelectedTracks(tracks []musixmatch.Track, selectedIndexes []int, what string) (bool, error) {
	start := true
	err := huh.NewConfirm().
		Title("Archive " + what + "?").
		Description(buildSelectedTracksPreview(tracks, selectedIndexes, 16)).
		Affirmative("Start").
		Negative("Back to selection").
		Value(&start).
		Run()
	return start, err
}
