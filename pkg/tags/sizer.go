package tags

import (
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Default font size range in points.
const (
	DefaultMinFontSize = 12.0
	DefaultMaxFontSize = 64.0
)

// Measurer reports the box a word occupies when rendered at fontSize.
type Measurer interface {
	Measure(word string, fontSize float64) (geom.Size, error)
}

// Sized is a tag with its font size and box size.
type Sized struct {
	Tag
	FontSize float64
	Size     geom.Size
}

// Sizer maps tag weights to font sizes and box sizes.
type Sizer struct {
	MinFontSize float64
	MaxFontSize float64
	// Padding is added on every side of the measured text.
	Padding  int
	Measurer Measurer
}

// FontSize interpolates weight within [minWeight, maxWeight] onto the
// font size range. When all weights are equal every word gets MaxFontSize.
func (s Sizer) FontSize(weight, minWeight, maxWeight int) float64 {
	if maxWeight <= minWeight {
		return s.MaxFontSize
	}
	t := float64(weight-minWeight) / float64(maxWeight-minWeight)
	return s.MinFontSize + t*(s.MaxFontSize-s.MinFontSize)
}

// Sizes measures every tag. The input order is kept.
func (s Sizer) Sizes(tags []Tag) ([]Sized, error) {
	if s.Measurer == nil {
		return nil, errors.New(errors.ErrCodeInternal, "sizer has no measurer")
	}
	if s.MinFontSize <= 0 || s.MaxFontSize < s.MinFontSize {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"invalid font size range [%v, %v]", s.MinFontSize, s.MaxFontSize)
	}
	if len(tags) == 0 {
		return nil, nil
	}

	minW, maxW := tags[0].Weight, tags[0].Weight
	for _, t := range tags[1:] {
		minW = min(minW, t.Weight)
		maxW = max(maxW, t.Weight)
	}

	out := make([]Sized, len(tags))
	for i, t := range tags {
		fs := s.FontSize(t.Weight, minW, maxW)
		size, err := s.Measurer.Measure(t.Word, fs)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "measure %q", t.Word)
		}
		size.Width += 2 * s.Padding
		size.Height += 2 * s.Padding
		out[i] = Sized{Tag: t, FontSize: fs, Size: size}
	}
	return out, nil
}
