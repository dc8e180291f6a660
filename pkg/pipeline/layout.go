package pipeline

import (
	"context"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// GenerateLayout sizes ts with m and places them in order, heaviest first
// when ts comes from ParseTags. ctx is checked between placements.
func GenerateLayout(ctx context.Context, ts []tags.Tag, m tags.Measurer, opts Options) (cloud.Layout, error) {
	if len(ts) == 0 {
		return cloud.Layout{}, errors.New(errors.ErrCodeInvalidInput, "no words to lay out")
	}

	sizer := tags.Sizer{
		MinFontSize: opts.MinFontSize,
		MaxFontSize: opts.MaxFontSize,
		Padding:     opts.Padding,
		Measurer:    m,
	}
	sized, err := sizer.Sizes(ts)
	if err != nil {
		return cloud.Layout{}, err
	}

	center := geom.Pt(opts.CenterX, opts.CenterY)
	l := cloud.New(center,
		cloud.WithCompactionStep(opts.CompactionStep),
		cloud.WithMaxIterations(opts.MaxIterations),
		cloud.WithLogger(opts.Logger),
	)

	placed := make([]cloud.Tag, len(sized))
	for i, s := range sized {
		if err := ctx.Err(); err != nil {
			return cloud.Layout{}, err
		}
		if _, err := l.PutNextRectangle(s.Size); err != nil {
			return cloud.Layout{}, wrap(err, "place %q", s.Word)
		}
		placed[i] = cloud.Tag{Word: s.Word, Weight: s.Weight, FontSize: s.FontSize}
	}

	layout, err := cloud.NewLayout(center, l.Rectangles(), placed)
	if err != nil {
		return cloud.Layout{}, err
	}
	layout.Step = opts.CompactionStep
	return layout, nil
}
