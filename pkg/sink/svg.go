package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Defaults shared by all sinks.
const (
	DefaultMargin     = 20
	DefaultBackground = "#ffffff"
)

// DefaultPalette is used when no palette is given.
var DefaultPalette = []string{"#1b9e77", "#d95f02", "#7570b3", "#e7298a"}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       Style
	background  string
	palette     []string
	margin      int
	debugCenter bool
}

func WithStyle(s Style) SVGOption           { return func(r *svgRenderer) { r.style = s } }
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }
func WithPalette(colors []string) SVGOption { return func(r *svgRenderer) { r.palette = colors } }
func WithMargin(m int) SVGOption            { return func(r *svgRenderer) { r.margin = max(0, m) } }
func WithDebugCenter() SVGOption            { return func(r *svgRenderer) { r.debugCenter = true } }

// RenderSVG draws one box and one label per tag, in placement order.
func RenderSVG(l cloud.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := r.frame(l, 1)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		f.width, f.height, f.width, f.height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	buf.WriteString(`  <g font-family="Go, Helvetica, Arial, sans-serif">` + "\n")
	for i, t := range l.Tags {
		r.style.RenderTag(&buf, r.block(f, i, t))
	}
	buf.WriteString("  </g>\n")

	if r.debugCenter {
		cx, cy := f.point(l.Center)
		fmt.Fprintf(&buf, `  <path class="center" d="M%.1f %.1fh10M%.1f %.1fv10" stroke="#ff0000" stroke-width="1"/>`+"\n",
			cx-5, cy, cx, cy-5)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// ValidateSVGOptions checks the colors an option set would render with.
func ValidateSVGOptions(opts ...SVGOption) error {
	r := newSVGRenderer(opts...)
	if err := errors.ValidateColor(r.background); err != nil {
		return err
	}
	for _, c := range r.palette {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	return nil
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:      Simple{},
		background: DefaultBackground,
		palette:    DefaultPalette,
		margin:     DefaultMargin,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if len(r.palette) == 0 {
		r.palette = DefaultPalette
	}
	if r.style == nil {
		r.style = Simple{}
	}
	return r
}

// frame maps layout coordinates to screen pixels.
type frame struct {
	bounds        geom.Rect
	margin        int
	scale         float64
	width, height int
}

func (r svgRenderer) frame(l cloud.Layout, scale float64) frame {
	b := l.Bounds
	if len(l.Tags) > 0 && b == (geom.Rect{}) {
		b = geom.Bounds(l.Rects())
	}
	return frame{
		bounds: b,
		margin: r.margin,
		scale:  scale,
		width:  max(1, int(float64(b.Width+2*r.margin)*scale+0.5)),
		height: max(1, int(float64(b.Height+2*r.margin)*scale+0.5)),
	}
}

func (f frame) point(p geom.Point) (float64, float64) {
	x := float64(p.X-f.bounds.Left()+f.margin) * f.scale
	y := float64(f.bounds.Top()-p.Y+f.margin) * f.scale
	return x, y
}

func (r svgRenderer) block(f frame, i int, t cloud.Tag) Block {
	x, y := f.point(t.Rect.Location())
	w := float64(t.Rect.Width) * f.scale
	h := float64(t.Rect.Height) * f.scale
	return Block{
		Label:    t.Word,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		CX:       x + w/2,
		CY:       y + h/2,
		FontSize: t.FontSize * f.scale,
		Color:    r.palette[i%len(r.palette)],
	}
}
