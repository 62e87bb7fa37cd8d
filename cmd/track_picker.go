package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mxm-archiver/internal/archive"
	"mxm-archiver/internal/state"
	"mxm-archiver/pkg/musixmatch"
)

const (
	trackListHeight  = 12
	detailListHeight = 12
)

var errPickerAborted = errors.New("interactive selection aborted")

type pickerPhase int

const (
	pickerPhaseSelect pickerPhase = iota
	pickerPhaseDetail
)

type snippetLoadedMsg struct {
	trackIdx int
	snippet  *musixmatch.Snippet
	err      error
}

// snippetFunc loads the lyrics excerpt shown in the detail view.
type snippetFunc func(context.Context, musixmatch.Track) (*musixmatch.Snippet, error)

type trackPickerModel struct {
	ctx      context.Context
	snippet  snippetFunc
	tracks   []musixmatch.Track
	selected map[int]struct{}

	completed map[int]bool
	filtered  []int
	cursor    int

	filterInput textinput.Model
	filtering   bool

	phase pickerPhase

	detailIdx     int
	detailLines   []string
	detailErr     string
	detailLoading bool
	detailOffset  int

	snippetCache map[int][]string
	snippetErrs  map[int]string

	done    bool
	aborted bool
}

// chooseTracksInteractively runs the picker, then asks for confirmation. Declining the
// confirmation returns to the picker with the selection kept.
func chooseTracksInteractively(ctx context.Context, tracks []musixmatch.Track, store *state.Store, snippet snippetFunc, what string) ([]musixmatch.Track, error) {
	if !stdinIsTerminal() {
		return nil, errNotTerminal
	}

	picker := newTrackPickerModel(ctx, tracks, store, snippet)
	for {
		picker.done = false
		finalModel, err := tea.NewProgram(picker).Run()
		if err != nil {
			return nil, fmt.Errorf("run interactive track selector: %w", err)
		}
		picker = finalModel.(*trackPickerModel)
		if picker.aborted {
			return nil, errPickerAborted
		}

		indexes := selectedIndexesFromSet(picker.selected)
		start, err := confirmSelectedTracks(tracks, indexes, what)
		if err != nil {
			return nil, fmt.Errorf("review selected tracks: %w", err)
		}
		if start && len(indexes) > 0 {
			return tracksFromIndexes(tracks, indexes)
		}
	}
}

func newTrackPickerModel(ctx context.Context, tracks []musixmatch.Track, store *state.Store, snippet snippetFunc) *trackPickerModel {
	filter := textinput.New()
	filter.Prompt = "/"

	completed := make(map[int]bool, len(tracks))
	for i, t := range tracks {
		completed[i] = store != nil && store.IsCompleted(archive.TrackKey(t))
	}

	m := &trackPickerModel{
		ctx:          ctx,
		snippet:      snippet,
		tracks:       tracks,
		selected:     make(map[int]struct{}),
		completed:    completed,
		filterInput:  filter,
		phase:        pickerPhaseSelect,
		snippetCache: make(map[int][]string),
		snippetErrs:  make(map[int]string),
	}
	m.rebuildFiltered()
	return m
}

func (m *trackPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *trackPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snippetLoadedMsg:
		m.storeSnippet(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}

		switch m.phase {
		case pickerPhaseSelect:
			return m.updateSelect(msg)
		case pickerPhaseDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m *trackPickerModel) View() string {
	if m.phase == pickerPhaseDetail {
		return m.detailView()
	}
	return m.selectionView()
}

func (m *trackPickerModel) storeSnippet(msg snippetLoadedMsg) {
	var lines []string
	var errMsg string
	switch {
	case msg.err != nil:
		errMsg = msg.err.Error()
	case msg.snippet == nil:
		errMsg = "no snippet available for this track"
	default:
		lines = strings.Split(strings.TrimSpace(msg.snippet.Body), "\n")
	}

	if errMsg != "" {
		m.snippetErrs[msg.trackIdx] = errMsg
		delete(m.snippetCache, msg.trackIdx)
	} else {
		m.snippetCache[msg.trackIdx] = lines
		delete(m.snippetErrs, msg.trackIdx)
	}

	if m.phase == pickerPhaseDetail && m.detailIdx == msg.trackIdx {
		m.detailLoading = false
		m.detailLines = lines
		m.detailErr = errMsg
		m.detailOffset = 0
	}
}

func (m *trackPickerModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.rebuildFiltered()
			return m, cmd
		}
	}

	switch msg.String() {
	case "/":
		m.filtering = true
		m.filterInput.Focus()
	case "esc":
		if strings.TrimSpace(m.filterInput.Value()) != "" {
			m.filterInput.SetValue("")
			m.rebuildFiltered()
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "ctrl+u", "pgup":
		m.cursor = max(0, m.cursor-max(1, trackListHeight/2))
	case "ctrl+d", "pgdown":
		if len(m.filtered) > 0 {
			m.cursor = min(len(m.filtered)-1, m.cursor+max(1, trackListHeight/2))
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}
	case "x", " ":
		if idx, ok := m.currentTrackIndex(); ok {
			m.toggleSelection(idx)
		}
	case "ctrl+a":
		m.toggleSelectAllFiltered()
	case "d":
		if idx, ok := m.currentTrackIndex(); ok {
			return m.openDetails(idx, false)
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *trackPickerModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "esc", "q":
		m.phase = pickerPhaseSelect
		m.detailLoading = false
		return m, nil
	case "x", " ":
		if m.detailIdx >= 0 && m.detailIdx < len(m.tracks) {
			m.toggleSelection(m.detailIdx)
		}
		return m, nil
	case "n":
		return m.moveDetail(1)
	case "p":
		return m.moveDetail(-1)
	case "r":
		return m.openDetails(m.detailIdx, true)
	}

	if m.detailLoading {
		return m, nil
	}

	maxOffset := max(0, len(m.detailLines)-detailListHeight)
	switch msg.String() {
	case "up", "k":
		if m.detailOffset > 0 {
			m.detailOffset--
		}
	case "down", "j":
		if m.detailOffset < maxOffset {
			m.detailOffset++
		}
	}
	return m, nil
}

func (m *trackPickerModel) rebuildFiltered() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	m.filtered = m.filtered[:0]

	for idx, t := range m.tracks {
		if query == "" ||
			strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.ArtistName), query) ||
			strings.Contains(strings.ToLower(t.AlbumName), query) {
			m.filtered = append(m.filtered, idx)
		}
	}

	if len(m.filtered) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(m.cursor, len(m.filtered)-1))
}

func (m *trackPickerModel) currentTrackIndex() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return 0, false
	}
	return m.filtered[m.cursor], true
}

func (m *trackPickerModel) toggleSelection(idx int) {
	if _, ok := m.selected[idx]; ok {
		delete(m.selected, idx)
		return
	}
	m.selected[idx] = struct{}{}
}

func (m *trackPickerModel) toggleSelectAllFiltered() {
	if len(m.filtered) == 0 {
		return
	}

	allSelected := true
	for _, idx := range m.filtered {
		if _, ok := m.selected[idx]; !ok {
			allSelected = false
			break
		}
	}
	for _, idx := range m.filtered {
		if allSelected {
			delete(m.selected, idx)
		} else {
			m.selected[idx] = struct{}{}
		}
	}
}

func (m *trackPickerModel) moveDetail(step int) (tea.Model, tea.Cmd) {
	if len(m.filtered) == 0 || step == 0 {
		return m, nil
	}

	pos := 0
	for i, idx := range m.filtered {
		if idx == m.detailIdx {
			pos = i
			break
		}
	}
	pos = max(0, min(len(m.filtered)-1, pos+step))
	m.cursor = pos
	return m.openDetails(m.filtered[pos], false)
}

func (m *trackPickerModel) openDetails(idx int, refetch bool) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.tracks) {
		return m, nil
	}

	m.phase = pickerPhaseDetail
	m.detailIdx = idx
	m.detailOffset = 0

	if refetch {
		delete(m.snippetCache, idx)
		delete(m.snippetErrs, idx)
	} else if lines, ok := m.snippetCache[idx]; ok {
		m.detailLoading, m.detailLines, m.detailErr = false, lines, ""
		return m, nil
	} else if errMsg, ok := m.snippetErrs[idx]; ok {
		m.detailLoading, m.detailLines, m.detailErr = false, nil, errMsg
		return m, nil
	}

	if m.snippet == nil {
		m.detailLoading, m.detailLines, m.detailErr = false, nil, "snippet loader is unavailable"
		return m, nil
	}

	m.detailLoading, m.detailLines, m.detailErr = true, nil, ""
	return m, loadSnippetCmd(m.ctx, m.snippet, m.tracks[idx], idx)
}

func loadSnippetCmd(ctx context.Context, load snippetFunc, track musixmatch.Track, idx int) tea.Cmd {
	return func() tea.Msg {
		snippet, err := load(ctx, track)
		return snippetLoadedMsg{trackIdx: idx, snippet: snippet, err: err}
	}
}

func (m *trackPickerModel) selectionView() string {
	lines := []string{
		fmt.Sprintf("Select tracks (%d total, %d selected)", len(m.tracks), len(m.selected)),
	}

	switch q := strings.TrimSpace(m.filterInput.Value()); {
	case m.filtering:
		lines = append(lines, "Filter mode: type title, artist or album, then Enter or Esc to apply.", m.filterInput.View())
	case q != "":
		lines = append(lines, fmt.Sprintf("Active filter: /%s (press / to edit, Esc to clear)", q))
	default:
		lines = append(lines, "Filter: press / to search by title, artist or album")
	}

	lines = append(lines, "")
	if len(m.filtered) == 0 {
		lines = append(lines, "No tracks match the current filter.")
	} else {
		start, end := listWindow(len(m.filtered), m.cursor, trackListHeight)
		for pos := start; pos < end; pos++ {
			idx := m.filtered[pos]
			cursor := " "
			if pos == m.cursor {
				cursor = ">"
			}
			checked := " "
			if _, ok := m.selected[idx]; ok {
				checked = "x"
			}
			lines = append(lines, fmt.Sprintf("%s [%s] %s", cursor, checked, trackOptionLabel(idx+1, m.tracks[idx], m.completed[idx])))
		}
		if end < len(m.filtered) {
			lines = append(lines, fmt.Sprintf("... %d more track(s)", len(m.filtered)-end))
		}
	}

	lines = append(lines, "")
	if m.filtering {
		lines = append(lines, "Keys: type filter | Enter/Esc apply | Ctrl+C exit")
	} else {
		lines = append(lines, "Keys: j/k move | x toggle | Ctrl+A select all | / filter | d snippet | Enter review | Ctrl+C exit")
	}
	return strings.Join(lines, "\n")
}

func trackOptionLabel(n int, t musixmatch.Track, completed bool) string {
	label := fmt.Sprintf("%3d. %s", n, trackLabel(t))
	var tags []string
	if completed {
		tags = append(tags, "archived")
	}
	if t.Instrumental {
		tags = append(tags, "instrumental")
	}
	if t.HasSubtitles {
		tags = append(tags, "synced")
	}
	if len(tags) > 0 {
		label += " (" + strings.Join(tags, ", ") + ")"
	}
	return label
}

func (m *trackPickerModel) detailView() string {
	if m.detailIdx < 0 || m.detailIdx >= len(m.tracks) {
		return "Track details unavailable. Press Esc to go back."
	}

	t := m.tracks[m.detailIdx]
	status := "not archived"
	if m.completed[m.detailIdx] {
		status = "archived"
	}

	lines := []string{
		fmt.Sprintf("Track: %s", trackLabel(t)),
		fmt.Sprintf("Track id: %d | Commontrack id: %d | Rating: %d | Status: %s", t.ID, t.CommontrackID, t.Rating, status),
	}
	if genres := genreNames(t.PrimaryGenres); genres != "" {
		lines = append(lines, "Genres: "+genres)
	}
	lines = append(lines, "")

	switch {
	case m.detailLoading:
		lines = append(lines, "Loading snippet from API...", "", "Keys: n/p next/prev track | x toggle | Esc/B back")
		return strings.Join(lines, "\n")
	case m.detailErr != "":
		lines = append(lines, "Failed to load snippet: "+m.detailErr, "", "Keys: r retry | n/p next/prev track | x toggle | Esc/B back")
		return strings.Join(lines, "\n")
	}

	end := min(len(m.detailLines), m.detailOffset+detailListHeight)
	for i := m.detailOffset; i < end; i++ {
		lines = append(lines, "  "+m.detailLines[i])
	}
	if end < len(m.detailLines) {
		lines = append(lines, fmt.Sprintf("... %d more line(s)", len(m.detailLines)-end))
	}
	lines = append(lines, "", "Keys: j/k scroll | r refetch | n/p next/prev track | x toggle | Esc/B back")
	return strings.Join(lines, "\n")
}

func genreNames(g musixmatch.GenreList) string {
	names := make([]string, 0, len(g.Items))
	for _, e := range g.Items {
		if e.Genre.Name != "" {
			names = append(names, e.Genre.Name)
		}
	}
	return strings.Join(names, ", ")
}

func listWindow(total, cursor, size int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if size <= 0 || total <= size {
		return 0, total
	}

	start := max(0, cursor-size/2)
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
