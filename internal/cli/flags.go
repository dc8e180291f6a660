package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// tagFlags are the input flags shared by commands that read words.
type tagFlags struct {
	weighted  bool
	minLength int
	limit     int
}

func (f *tagFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.weighted, "weighted", false, `input is a "word weight" list instead of free text`)
	cmd.Flags().IntVar(&f.minLength, "min-length", 0, "ignore words shorter than this (free text only)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "keep at most this many words")
}

func (f *tagFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	opts.Weighted = f.weighted
	if cmd.Flags().Changed("min-length") {
		opts.MinWordLength = f.minLength
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = f.limit
	}
}

// layoutFlags control placement. Only flags the user set override the
// config file.
type layoutFlags struct {
	centerX int
	centerY int
	step    int
	maxIter int
	padding int
	minFont float64
	maxFont float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.centerX, "center-x", 0, "cloud center X")
	cmd.Flags().IntVar(&f.centerY, "center-y", 0, "cloud center Y")
	cmd.Flags().IntVar(&f.step, "step", 1, "compaction step toward the center (0 disables compaction)")
	cmd.Flags().IntVar(&f.maxIter, "max-iterations", 0, "spiral points tried per word before giving up")
	cmd.Flags().IntVar(&f.padding, "padding", 0, "padding around each word")
	cmd.Flags().Float64Var(&f.minFont, "min-font", tags.DefaultMinFontSize, "font size of the lightest word")
	cmd.Flags().Float64Var(&f.maxFont, "max-font", tags.DefaultMaxFontSize, "font size of the heaviest word")
}

func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("center-x") {
		opts.CenterX = f.centerX
	}
	if flags.Changed("center-y") {
		opts.CenterY = f.centerY
	}
	if flags.Changed("step") {
		opts.CompactionStep = f.step
	}
	if flags.Changed("max-iterations") {
		opts.MaxIterations = f.maxIter
	}
	if flags.Changed("padding") {
		opts.Padding = f.padding
	}
	if flags.Changed("min-font") {
		opts.MinFontSize = f.minFont
	}
	if flags.Changed("max-font") {
		opts.MaxFontSize = f.maxFont
	}
}

// renderFlags control artifact output.
type renderFlags struct {
	formats     string
	style       string
	background  string
	margin      int
	scale       float64
	debugCenter bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple (default), outline")
	cmd.Flags().StringVar(&f.background, "background", "", "background color (#rgb or #rrggbb)")
	cmd.Flags().IntVar(&f.margin, "margin", 0, "margin around the cloud")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixels per layout unit")
	cmd.Flags().BoolVar(&f.debugCenter, "debug-center", false, "mark the cloud center")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	flags := cmd.Flags()
	opts.Formats = parseFormats(f.formats)
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	if flags.Changed("style") {
		if err := pipeline.ValidateStyle(f.style); err != nil {
			return err
		}
		opts.Style = f.style
	}
	if flags.Changed("background") {
		opts.Background = f.background
	}
	if flags.Changed("margin") {
		opts.Margin = f.margin
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
	opts.DebugCenter = f.debugCenter
	return nil
}

// readTags reads words from path ("-" is stdin) using the tag options.
func readTags(ctx context.Context, path string, opts pipeline.Options) ([]tags.Tag, error) {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}
	ts, err := pipeline.ParseTags(in, opts)
	if err != nil {
		return nil, fmt.Errorf("read words from %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("read words", "input", path, "count", len(ts), "weighted", opts.Weighted)
	return ts, nil
}
