// Package config loads tagcloud settings from a TOML file.
//
// Every key is optional. Missing keys keep the values from [Default], so an
// empty file is a valid configuration:
//
//	[layout]
//	center_x = 0
//	center_y = 0
//	compaction_step = 1
//	max_iterations = 1000000
//
//	[tags]
//	min_font_size = 12
//	max_font_size = 64
//	padding = 2
//	min_word_length = 3
//	limit = 100
//	stop_words = ["the", "and"]
//
//	[render]
//	style = "simple"
//	background = "#ffffff"
//	palette = ["#1b9e77", "#d95f02"]
//	margin = 20
//	scale = 1.0
//
// Command-line flags override file values; the CLI applies them after
// [Load].
package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// Render styles.
const (
	StyleSimple  = "simple"
	StyleOutline = "outline"
)

// Config is the full configuration file.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Tags   TagsConfig   `toml:"tags"`
	Render RenderConfig `toml:"render"`
}

// LayoutConfig controls the layouter.
type LayoutConfig struct {
	CenterX        int `toml:"center_x"`
	CenterY        int `toml:"center_y"`
	CompactionStep int `toml:"compaction_step"`
	MaxIterations  int `toml:"max_iterations"`
}

// TagsConfig controls word extraction and sizing.
type TagsConfig struct {
	MinFontSize   float64  `toml:"min_font_size"`
	MaxFontSize   float64  `toml:"max_font_size"`
	Padding       int      `toml:"padding"`
	MinWordLength int      `toml:"min_word_length"`
	Limit         int      `toml:"limit"`
	StopWords     []string `toml:"stop_words"`
}

// RenderConfig controls the output sinks.
type RenderConfig struct {
	Style      string   `toml:"style"`
	Background string   `toml:"background"`
	Palette    []string `toml:"palette"`
	Margin     int      `toml:"margin"`
	Scale      float64  `toml:"scale"`
}

// DefaultPalette is the Dark2 qualitative palette.
var DefaultPalette = []string{
	"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
	"#66a61e", "#e6ab02", "#a6761d", "#666666",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			CompactionStep: cloud.DefaultCompactionStep,
			MaxIterations:  cloud.DefaultMaxIterations,
		},
		Tags: TagsConfig{
			MinFontSize:   tags.DefaultMinFontSize,
			MaxFontSize:   tags.DefaultMaxFontSize,
			Padding:       2,
			MinWordLength: 3,
			Limit:         100,
			StopWords:     []string{"the", "and", "for", "with", "that", "this", "are", "was"},
		},
		Render: RenderConfig{
			Style:      StyleSimple,
			Background: "#ffffff",
			Palette:    append([]string(nil), DefaultPalette...),
			Margin:     20,
			Scale:      1.0,
		},
	}
}

// Load reads and validates the file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	l, t, r := c.Layout, c.Tags, c.Render
	switch {
	case l.CompactionStep < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "layout.compaction_step must be >= 0, got %d", l.CompactionStep)
	case l.MaxIterations < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "layout.max_iterations must be >= 1, got %d", l.MaxIterations)
	case t.MinFontSize <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "tags.min_font_size must be > 0, got %v", t.MinFontSize)
	case t.MaxFontSize < t.MinFontSize:
		return errors.New(errors.ErrCodeInvalidConfig, "tags.max_font_size (%v) is below min_font_size (%v)", t.MaxFontSize, t.MinFontSize)
	case t.Padding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "tags.padding must be >= 0, got %d", t.Padding)
	case t.Limit < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "tags.limit must be >= 0, got %d", t.Limit)
	case r.Style != StyleSimple && r.Style != StyleOutline:
		return errors.New(errors.ErrCodeInvalidConfig, "render.style must be %q or %q, got %q", StyleSimple, StyleOutline, r.Style)
	case r.Margin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "render.margin must be >= 0, got %d", r.Margin)
	case r.Scale <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "render.scale must be > 0, got %v", r.Scale)
	case len(r.Palette) == 0:
		return errors.New(errors.ErrCodeInvalidConfig, "render.palette must not be empty")
	}

	if err := errors.ValidateColor(r.Background); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.background")
	}
	for i, color := range r.Palette {
		if err := errors.ValidateColor(color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.palette[%d]", i)
		}
	}
	return nil
}
