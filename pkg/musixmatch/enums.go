package musixmatch

import (
	"fmt"
	"strings"
)

// SortOrder selects ascending or descending ordering for s_* parameters.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// String returns the canonical API token ("asc" or "desc").
func (s SortOrder) String() string {
	switch s {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(s))
	}
}

// ParseSortOrder maps "asc"/"desc" back to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return 0, fmt.Errorf("unknown sort order %q", s)
}

// Chart names one of the chart.tracks.get rankings.
type Chart int

const (
	// ChartTop is the editorial chart.
	ChartTop Chart = iota
	// ChartHot ranks the most viewed lyrics in the last two hours.
	ChartHot
	// ChartWeekly ranks the most viewed lyrics in the last seven days.
	ChartWeekly
	// ChartWeeklyNew is ChartWeekly restricted to new releases.
	ChartWeeklyNew
)

// String returns the chart_name token.
func (c Chart) String() string {
	switch c {
	case ChartTop:
		return "top"
	case ChartHot:
		return "hot"
	case ChartWeekly:
		return "mxmweekly"
	case ChartWeeklyNew:
		return "mxmweekly_new"
	default:
		return fmt.Sprintf("Chart(%d)", int(c))
	}
}

// ParseChart maps a chart_name token back to a Chart.
func ParseChart(s string) (Chart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return ChartTop, nil
	case "hot":
		return ChartHot, nil
	case "mxmweekly":
		return ChartWeekly, nil
	case "mxmweekly_new":
		return ChartWeeklyNew, nil
	}
	return 0, fmt.Errorf("unknown chart %q", s)
}

// SubtitleFormat is the subtitle_format requested from the subtitle endpoints.
type SubtitleFormat int

const (
	SubtitleLRC SubtitleFormat = iota
	SubtitleDFXP
	SubtitleSTLEDU
)

// String returns the subtitle_format token.
func (f SubtitleFormat) String() string {
	switch f {
	case SubtitleLRC:
		return "lrc"
	case SubtitleDFXP:
		return "dfxp"
	case SubtitleSTLEDU:
		return "stledu"
	default:
		return fmt.Sprintf("SubtitleFormat(%d)", int(f))
	}
}

// Ext returns a file extension suitable for a subtitle body in this format.
func (f SubtitleFormat) Ext() string {
	switch f {
	case SubtitleDFXP:
		return ".dfxp"
	case SubtitleSTLEDU:
		return ".stl"
	default:
		return ".lrc"
	}
}

// ParseSubtitleFormat maps a subtitle_format token back to a SubtitleFormat.
func ParseSubtitleFormat(s string) (SubtitleFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lrc":
		return SubtitleLRC, nil
	case "dfxp":
		return SubtitleDFXP, nil
	case "stledu":
		return SubtitleSTLEDU, nil
	}
	return 0, fmt.Errorf("unknown subtitle format %q", s)
}
