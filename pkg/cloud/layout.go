package cloud

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// =============================================================================
// Layout - Serialized Cloud
// =============================================================================

// Layout is the serialization format of a finished cloud. Tags keep the
// placement order.
type Layout struct {
	ID        string     `json:"id,omitempty" bson:"_id,omitempty"`
	Center    geom.Point `json:"center" bson:"center"`
	Bounds    geom.Rect  `json:"bounds" bson:"bounds"`
	Tags      []Tag      `json:"tags" bson:"tags"`
	Step      int        `json:"compaction_step,omitempty" bson:"compaction_step,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero" bson:"created_at,omitempty"`
}

// Tag is one placed word.
type Tag struct {
	Word     string    `json:"word" bson:"word"`
	Weight   int       `json:"weight" bson:"weight"`
	FontSize float64   `json:"font_size" bson:"font_size"`
	Rect     geom.Rect `json:"rect" bson:"rect"`
}

// NewLayout assembles a Layout from placed rectangles and the tags they were
// sized for. rects and tags must have the same length.
func NewLayout(center geom.Point, rects []geom.Rect, tags []Tag) (Layout, error) {
	if len(rects) != len(tags) {
		return Layout{}, errors.New(errors.ErrCodeInternal,
			"layout has %d rectangles for %d tags", len(rects), len(tags))
	}
	out := make([]Tag, len(tags))
	for i, t := range tags {
		t.Rect = rects[i]
		out[i] = t
	}
	return Layout{
		Center: center,
		Bounds: geom.Bounds(rects),
		Tags:   out,
	}, nil
}

// Rects returns the tag rectangles in placement order.
func (l Layout) Rects() []geom.Rect {
	rects := make([]geom.Rect, len(l.Tags))
	for i, t := range l.Tags {
		rects[i] = t.Rect
	}
	return rects
}

// Overlap returns the indices of the first pair of overlapping tags.
func (l Layout) Overlap() (int, int, bool) {
	for i := range l.Tags {
		for j := i + 1; j < len(l.Tags); j++ {
			if l.Tags[i].Rect.IntersectsWith(l.Tags[j].Rect) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Validate checks that sizes are non-negative and that no two tags overlap.
func (l Layout) Validate() error {
	for i, t := range l.Tags {
		if err := t.Rect.Size().Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "tag %d (%q)", i, t.Word)
		}
	}
	if i, j, ok := l.Overlap(); ok {
		return errors.New(errors.ErrCodeInvalidInput,
			"tags %d (%q) and %d (%q) overlap", i, l.Tags[i].Word, j, l.Tags[j].Word)
	}
	return nil
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and validates it.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	if l.Bounds == (geom.Rect{}) && len(l.Tags) > 0 {
		l.Bounds = geom.Bounds(l.Rects())
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
