package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Style names.
const (
	StyleSimple  = "simple"
	StyleOutline = "outline"
)

// Style defines the visual appearance of a tag. Implementations must render
// the same picture in both output paths.
type Style interface {
	// Name is the identifier used by config files and flags.
	Name() string
	// RenderTag writes the SVG elements for one tag.
	RenderTag(buf *bytes.Buffer, b Block)
	// DrawTag paints one tag into dst using face for the label.
	DrawTag(dst draw.Image, b Block, face font.Face)
}

// Block is a tag in screen coordinates.
type Block struct {
	Label      string
	X, Y, W, H float64 // top-left corner and size, Y grows downward
	CX, CY     float64
	FontSize   float64
	Color      string
}

// StyleByName returns the style registered under name.
func StyleByName(name string) (Style, error) {
	switch name {
	case "", StyleSimple:
		return Simple{}, nil
	case StyleOutline:
		return Outline{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (must be one of: simple, outline)", name)
}

// Simple draws a lightly tinted box behind each label.
type Simple struct{}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderTag(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="tag" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.15"/>`+"\n",
		b.X, b.Y, b.W, b.H, b.Color)
	renderLabel(buf, b)
}

func (Simple) DrawTag(dst draw.Image, b Block, face font.Face) {
	c := parseColor(b.Color)
	c.A = 0x26
	fillRect(dst, b, c)
	drawLabel(dst, b, face)
}

// Outline strokes each box without filling it.
type Outline struct{}

func (Outline) Name() string { return StyleOutline }

func (Outline) RenderTag(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="tag" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		b.X, b.Y, b.W, b.H, b.Color)
	renderLabel(buf, b)
}

func (Outline) DrawTag(dst draw.Image, b Block, face font.Face) {
	c := parseColor(b.Color)
	x0, y0 := int(b.X), int(b.Y)
	x1, y1 := int(b.X+b.W), int(b.Y+b.H)
	src := image.NewUniform(c)
	for _, r := range []image.Rectangle{
		image.Rect(x0, y0, x1, y0+1),
		image.Rect(x0, y1-1, x1, y1),
		image.Rect(x0, y0, x0+1, y1),
		image.Rect(x1-1, y0, x1, y1),
	} {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
	}
	drawLabel(dst, b, face)
}

func renderLabel(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <text class="tag-text" x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		b.CX, b.CY, b.FontSize, b.Color, escapeXML(b.Label))
}

func fillRect(dst draw.Image, b Block, c color.NRGBA) {
	r := image.Rect(int(b.X), int(b.Y), int(b.X+b.W), int(b.Y+b.H))
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// drawLabel centers the label on (CX, CY), placing the baseline so the
// ascent and descent are balanced around the center.
func drawLabel(dst draw.Image, b Block, face font.Face) {
	if face == nil || b.Label == "" {
		return
	}
	d := font.Drawer{Dst: dst, Src: image.NewUniform(parseColor(b.Color)), Face: face}
	m := face.Metrics()
	width := d.MeasureString(b.Label)
	x := fixed.Int26_6(b.CX*64) - width/2
	y := fixed.Int26_6(b.CY*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(b.Label)
}

// parseColor decodes #rgb or #rrggbb. Invalid input yields opaque black;
// colors are validated before rendering.
func parseColor(s string) color.NRGBA {
	black := color.NRGBA{A: 0xff}
	if len(s) == 0 || s[0] != '#' {
		return black
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return black
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return black
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
