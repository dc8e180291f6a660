// Package pipeline provides the tags → layout → render pipeline for tagcloud.
//
// The CLI and the HTTP API both run tag clouds through this package so that
// defaults, validation, caching and logging behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Tags: extract weighted words from text ([ParseTags])
//  2. Layout: size every word and place it with the spiral layouter
//  3. Render: generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{"svg"}
//	result, err := runner.Execute(ctx, ts, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/config"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the tag cloud pipeline.
// This struct supports JSON serialization for API requests; decode requests
// on top of [DefaultOptions] so omitted fields keep their defaults.
type Options struct {
	// Tag options
	Weighted      bool     `json:"weighted,omitempty"`
	MinWordLength int      `json:"min_word_length,omitempty"`
	StopWords     []string `json:"stop_words,omitempty"`
	Limit         int      `json:"limit,omitempty"`

	// Layout options. CompactionStep 0 disables compaction.
	CenterX        int     `json:"center_x"`
	CenterY        int     `json:"center_y"`
	CompactionStep int     `json:"compaction_step"`
	MaxIterations  int     `json:"max_iterations,omitempty"`
	MinFontSize    float64 `json:"min_font_size,omitempty"`
	MaxFontSize    float64 `json:"max_font_size,omitempty"`
	Padding        int     `json:"padding"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Background  string   `json:"background,omitempty"`
	Palette     []string `json:"palette,omitempty"`
	Margin      int      `json:"margin"`
	Scale       float64  `json:"scale,omitempty"`
	DebugCenter bool     `json:"debug_center,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Layout    cloud.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TagCount   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all requested artifacts came from cache
}

// DefaultOptions returns the options matching the built-in configuration.
func DefaultOptions() Options {
	return FromConfig(config.Default())
}

// FromConfig converts a configuration file into pipeline options.
func FromConfig(cfg config.Config) Options {
	return Options{
		MinWordLength:  cfg.Tags.MinWordLength,
		StopWords:      slices.Clone(cfg.Tags.StopWords),
		Limit:          cfg.Tags.Limit,
		CenterX:        cfg.Layout.CenterX,
		CenterY:        cfg.Layout.CenterY,
		CompactionStep: cfg.Layout.CompactionStep,
		MaxIterations:  cfg.Layout.MaxIterations,
		MinFontSize:    cfg.Tags.MinFontSize,
		MaxFontSize:    cfg.Tags.MaxFontSize,
		Padding:        cfg.Tags.Padding,
		Formats:        []string{FormatSVG},
		Style:          cfg.Render.Style,
		Background:     cfg.Render.Background,
		Palette:        slices.Clone(cfg.Render.Palette),
		Margin:         cfg.Render.Margin,
		Scale:          cfg.Render.Scale,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := sink.StyleByName(style)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults fills zero values that have no valid meaning and
// checks the rest. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.validateLayout(); err != nil {
		return err
	}
	if err := o.validateRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.MaxIterations == 0 {
		o.MaxIterations = cloud.DefaultMaxIterations
	}
	if o.MinFontSize == 0 {
		o.MinFontSize = config.Default().Tags.MinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = max(o.MinFontSize, config.Default().Tags.MaxFontSize)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = sink.StyleSimple
	}
	if o.Background == "" {
		o.Background = sink.DefaultBackground
	}
	if len(o.Palette) == 0 {
		o.Palette = slices.Clone(config.DefaultPalette)
	}
	if o.Scale == 0 {
		o.Scale = 1.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func (o *Options) validateLayout() error {
	switch {
	case o.CompactionStep < 0:
		return errors.New(errors.ErrCodeInvalidArgument, "compaction_step must be >= 0, got %d", o.CompactionStep)
	case o.MaxIterations < 0:
		return errors.New(errors.ErrCodeInvalidArgument, "max_iterations must be >= 0, got %d", o.MaxIterations)
	case o.MinFontSize < 0 || o.MaxFontSize < o.MinFontSize:
		return errors.New(errors.ErrCodeInvalidArgument, "invalid font size range [%v, %v]", o.MinFontSize, o.MaxFontSize)
	case o.Padding < 0:
		return errors.New(errors.ErrCodeInvalidArgument, "padding must be >= 0, got %d", o.Padding)
	}
	return nil
}

func (o *Options) validateRender() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "margin must be >= 0, got %d", o.Margin)
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "scale must be > 0, got %v", o.Scale)
	}
	if err := errors.ValidateColor(o.Background); err != nil {
		return err
	}
	for _, c := range o.Palette {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy that has not been validated yet, safe to decode
// a request onto.
func (o Options) Clone() Options {
	o.StopWords = slices.Clone(o.StopWords)
	o.Formats = slices.Clone(o.Formats)
	o.Palette = slices.Clone(o.Palette)
	o.validated = false
	return o
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		CenterX:        o.CenterX,
		CenterY:        o.CenterY,
		CompactionStep: o.CompactionStep,
		MaxIterations:  o.MaxIterations,
		MinFontSize:    o.MinFontSize,
		MaxFontSize:    o.MaxFontSize,
		Padding:        o.Padding,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Style:      o.Style,
		Background: o.Background,
		Palette:    o.Palette,
		Margin:     o.Margin,
		Scale:      o.Scale,
	}
}
