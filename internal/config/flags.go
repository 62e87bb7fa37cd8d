package config

import (
	"flag"
	"time"
)

// flags mirrors Config for the command line. Only flags the user actually set are applied, so
// the defaults below are documentation and never override the file or the environment.
type flags struct {
	configPath *string
	envFile    *string

	baseURL     *string
	outputDir   *string
	workers     *int
	httpTimeout *time.Duration
	logLevel    *string
	logFormat   *string

	format         *string
	subtitleFormat *string
	translate      *string
	indexPath      *string
	statePath      *string

	albumID      *uint
	artistID     *uint
	query        *string
	track        *string
	artist       *string
	chartCountry *string
	chartName    *string
	match        *bool
	limit        *uint

	choose *bool
	sel    *string
}

func bindFlags(fs *flag.FlagSet) *flags {
	d := Default()
	return &flags{
		configPath: fs.String("config", DefaultConfigPath, "YAML config file"),
		envFile:    fs.String("env-file", ".env", "dotenv file with "+EnvAPIKey),

		baseURL:     fs.String("base-url", "", "API root (default: the public Musixmatch endpoint)"),
		outputDir:   fs.String("output", d.OutputDir, "output directory"),
		workers:     fs.Int("workers", d.Workers, "number of concurrent track workers"),
		httpTimeout: fs.Duration("http-timeout", d.HTTPTimeout, "HTTP request timeout"),
		logLevel:    fs.String("log-level", d.Logger.Level, "debug, info, warn or error"),
		logFormat:   fs.String("log-format", d.Logger.Format, "text, logfmt or json"),

		format:         fs.String("format", d.Archive.Format, "what to archive: lyrics or subtitle"),
		subtitleFormat: fs.String("subtitle-format", d.Archive.SubtitleFormat, "lrc, dfxp or stledu"),
		translate:      fs.String("translate", "", "also fetch a translation into this ISO 639-1 language"),
		indexPath:      fs.String("index", "", "index file path (default: <output>/index.json)"),
		statePath:      fs.String("state", "", "completed tracks file (default: <output>/.completed_tracks.json)"),

		albumID:      fs.Uint("album", 0, "archive the tracks of this album id"),
		artistID:     fs.Uint("artist-id", 0, "search: restrict to this artist id"),
		query:        fs.String("q", "", "search: words in title, artist or lyrics"),
		track:        fs.String("track", "", "search: song title"),
		artist:       fs.String("artist", "", "search: artist name"),
		chartCountry: fs.String("chart-country", "", "archive the chart of this country (ISO 3166-1)"),
		chartName:    fs.String("chart", d.Source.ChartName, "top, hot, mxmweekly or mxmweekly_new"),
		match:        fs.Bool("match", false, "search: keep only the result closest to -track and -artist"),
		limit:        fs.Uint("limit", d.Source.Limit, "number of candidate tracks to fetch (1-100)"),

		choose: fs.Bool("choose", d.Choose, "interactively choose tracks (set --choose=false to archive all)"),
		sel:    fs.String("select", "", "1-based track indexes to archive, e.g. 1,3-4"),
	}
}

func (f *flags) configSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "config" {
			set = true
		}
	})
	return set
}

func (f *flags) apply(name string, cfg *Config) {
	switch name {
	case "base-url":
		cfg.BaseURL = *f.baseURL
	case "output":
		cfg.OutputDir = *f.outputDir
	case "workers":
		cfg.Workers = *f.workers
	case "http-timeout":
		cfg.HTTPTimeout = *f.httpTimeout
	case "log-level":
		cfg.Logger.Level = *f.logLevel
	case "log-format":
		cfg.Logger.Format = *f.logFormat
	case "format":
		cfg.Archive.Format = *f.format
	case "subtitle-format":
		cfg.Archive.SubtitleFormat = *f.subtitleFormat
	case "translate":
		cfg.Archive.TranslationLanguage = *f.translate
	case "index":
		cfg.Archive.IndexPath = *f.indexPath
	case "state":
		cfg.Archive.StatePath = *f.statePath
	case "album":
		cfg.Source.AlbumID = *f.albumID
	case "artist-id":
		cfg.Source.ArtistID = *f.artistID
	case "q":
		cfg.Source.Query = *f.query
	case "track":
		cfg.Source.Track = *f.track
	case "artist":
		cfg.Source.Artist = *f.artist
	case "chart-country":
		cfg.Source.ChartCountry = *f.chartCountry
	case "chart":
		cfg.Source.ChartName = *f.chartName
	case "match":
		cfg.Source.Match = *f.match
	case "limit":
		cfg.Source.Limit = *f.limit
	case "choose":
		cfg.Choose = *f.choose
	case "select":
		cfg.Select = *f.sel
	}
}
