package pipeline

import (
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/sink"
)

// RenderFromLayout generates artifacts in the requested formats.
func RenderFromLayout(l cloud.Layout, opts Options) (map[string][]byte, error) {
	style, err := sink.StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := buildSVGOptions(style, opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(style.Name()), sink.WithJSONPalette(opts.Palette))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, wrap(err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(style sink.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithBackground(opts.Background),
		sink.WithPalette(opts.Palette),
		sink.WithMargin(opts.Margin),
	}
	if opts.DebugCenter {
		svgOpts = append(svgOpts, sink.WithDebugCenter())
	}
	return svgOpts
}

// wrap adds context to err, keeping its code. Errors without a code are
// internal.
func wrap(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, format, args...)
}
