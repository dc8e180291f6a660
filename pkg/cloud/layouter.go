package cloud

import (
	"slices"

	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/spiral"
)

// Layouter builds one cloud around a fixed center.
type Layouter struct {
	center geom.Point
	rects  []geom.Rect
	cursor spiral.Spiral
	cfg    Config
}

// New creates an empty cloud centered on center.
func New(center geom.Point, opts ...Option) *Layouter {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Layouter{center: center, cfg: cfg}
}

// PutNextRectangle places a rectangle of the given size and returns it.
// On error nothing is recorded and the spiral cursor is unchanged.
func (l *Layouter) PutNextRectangle(size geom.Size) (geom.Rect, error) {
	rect, cursor, err := Place(l.rects, l.center, l.cursor, size, l.cfg)
	if err != nil {
		return geom.Rect{}, err
	}
	l.rects = append(l.rects, rect)
	l.cursor = cursor
	return rect, nil
}

// Rectangles returns the placed rectangles in placement order. The returned
// slice is a copy.
func (l *Layouter) Rectangles() []geom.Rect { return slices.Clone(l.rects) }

// Len returns the number of placed rectangles.
func (l *Layouter) Len() int { return len(l.rects) }

// Center returns the cloud center.
func (l *Layouter) Center() geom.Point { return l.center }

// Spiral returns a copy of the current spiral cursor. It is the zero Spiral
// until the first rectangle is placed.
func (l *Layouter) Spiral() spiral.Spiral { return l.cursor }

// Bounds returns the bounding box of all placed rectangles.
func (l *Layouter) Bounds() geom.Rect { return geom.Bounds(l.rects) }
