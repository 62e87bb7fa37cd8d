package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAPIKey  = "MUSIXMATCH_API_KEY"
	EnvBaseURL = "MUSIXMATCH_BASE_URL"

	DefaultConfigPath = "mxm-archiver.yaml"
)

var (
	// ErrMissingAPIKey is returned by Validate when no key came from the file, the environment or a prompt.
	ErrMissingAPIKey = errors.New("musixmatch API key is not configured (set " + EnvAPIKey + ")")
	ErrSource        = errors.New("exactly one of -album, a search (-q, -track, -artist) or -chart-country is required")
)

// Config contains runtime options for the archiver.
type Config struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url" validate:"omitempty,url"`
	HTTPTimeout time.Duration `yaml:"http_timeout" validate:"gt=0"`
	OutputDir   string        `yaml:"output_dir" validate:"required"`
	Workers     int           `yaml:"workers" validate:"min=1,max=64"`
	Logger      Logger        `yaml:"logger"`
	Archive     Archive       `yaml:"archive"`
	Source      Source        `yaml:"source"`
	Choose      bool          `yaml:"choose"`

	// Select holds 1-based index ranges ("1,3-4") picked without the interactive picker.
	Select string `yaml:"-"`
}

type Logger struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text logfmt json"`
}

type Archive struct {
	Format              string `yaml:"format" validate:"oneof=lyrics subtitle"`
	SubtitleFormat      string `yaml:"subtitle_format" validate:"oneof=lrc dfxp stledu"`
	TranslationLanguage string `yaml:"translation_language" validate:"omitempty,len=2,alpha"`
	IndexPath           string `yaml:"index_path"`
	StatePath           string `yaml:"state_path"`
}

// Source selects where candidate tracks come from.
type Source struct {
	AlbumID      uint   `yaml:"album_id"`
	ArtistID     uint   `yaml:"artist_id"`
	Query        string `yaml:"query"`
	Track        string `yaml:"track"`
	Artist       string `yaml:"artist"`
	ChartCountry string `yaml:"chart_country" validate:"omitempty,len=2,alpha"`
	ChartName    string `yaml:"chart_name" validate:"oneof=top hot mxmweekly mxmweekly_new"`
	Match        bool   `yaml:"match"`
	Limit        uint   `yaml:"limit" validate:"min=1,max=100"`
}

type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceAlbum
	SourceSearch
	SourceChart
)

func (s Source) Kind() SourceKind {
	kinds := s.kinds()
	if len(kinds) != 1 {
		return SourceNone
	}
	return kinds[0]
}

func (s Source) kinds() []SourceKind {
	var out []SourceKind
	if s.AlbumID != 0 {
		out = append(out, SourceAlbum)
	}
	if s.Query != "" || s.Track != "" || s.Artist != "" || s.ArtistID != 0 {
		out = append(out, SourceSearch)
	}
	if s.ChartCountry != "" {
		out = append(out, SourceChart)
	}
	return out
}

// Default returns the configuration used when neither a file nor flags set a value.
func Default() Config {
	workers := runtime.NumCPU()
	if workers < 2 {
		workers = 2
	}
	return Config{
		HTTPTimeout: 30 * time.Second,
		OutputDir:   "./lyrics",
		Workers:     workers,
		Logger:      Logger{Level: "info", Format: "text"},
		Archive:     Archive{Format: "lyrics", SubtitleFormat: "lrc"},
		Source:      Source{ChartName: "top", Limit: 20},
		Choose:      true,
	}
}

// Load builds the configuration from defaults, the YAML file, a .env file, the environment and
// finally args, each layer overriding the previous one. The returned Config is usable even when
// the error is ErrMissingAPIKey, so callers can prompt for the key and call Validate again.
func Load(args []string) (Config, error) {
	fset := flag.NewFlagSet("mxm-archiver", flag.ContinueOnError)
	f := bindFlags(fset)
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := loadFile(*f.configPath, f.configSet(fset), &cfg); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", *f.envFile, err)
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	fset.Visit(func(fl *flag.Flag) { f.apply(fl.Name, &cfg) })
	cfg.resolvePaths()

	return cfg, cfg.Validate()
}

// Validate checks field ranges, the source selection and finally the API key.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if len(c.Source.kinds()) != 1 {
		return ErrSource
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) resolvePaths() {
	if c.Archive.IndexPath == "" {
		c.Archive.IndexPath = filepath.Join(c.OutputDir, "index.json")
	}
	if c.Archive.StatePath == "" {
		c.Archive.StatePath = filepath.Join(c.OutputDir, ".completed_tracks.json")
	}
}

// loadFile decodes path into cfg. A missing file is only an error when the path was given explicitly.
func loadFile(path string, explicit bool, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}
