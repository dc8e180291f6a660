package sink

import (
	"encoding/json"

	"github.com/matzehuels/tagcloud/pkg/cloud"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	palette []string
}

// WithJSONStyle records the style name in the JSON output for round-trip
// rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONPalette assigns each tag its palette color in the output.
func WithJSONPalette(colors []string) JSONOption {
	return func(r *jsonRenderer) { r.palette = colors }
}

type jsonOutput struct {
	ID     string    `json:"id,omitempty"`
	Center jsonPoint `json:"center"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Style  string    `json:"style,omitempty"`
	Tags   []jsonTag `json:"tags"`
}

type jsonPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type jsonTag struct {
	Word     string  `json:"word"`
	Weight   int     `json:"weight"`
	FontSize float64 `json:"font_size"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Color    string  `json:"color,omitempty"`
}

// RenderJSON exports the tags with their boxes as a pretty-printed JSON
// document. Coordinates stay in layout space (Y up, (X, Y) the top-left
// corner). It does not modify l and is safe to call concurrently.
func RenderJSON(l cloud.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:     l.ID,
		Center: jsonPoint{X: l.Center.X, Y: l.Center.Y},
		Width:  l.Bounds.Width,
		Height: l.Bounds.Height,
		Style:  r.style,
		Tags:   make([]jsonTag, 0, len(l.Tags)),
	}
	for i, t := range l.Tags {
		jt := jsonTag{
			Word:     t.Word,
			Weight:   t.Weight,
			FontSize: t.FontSize,
			X:        t.Rect.X,
			Y:        t.Rect.Y,
			Width:    t.Rect.Width,
			Height:   t.Rect.Height,
		}
		if len(r.palette) > 0 {
			jt.Color = r.palette[i%len(r.palette)]
		}
		out.Tags = append(out.Tags, jt)
	}

	return json.MarshalIndent(out, "", "  ")
}
