package sink

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// FaceSource supplies font faces by point size.
// *tags.FontMeasurer implements it.
type FaceSource interface {
	Face(size float64) (font.Face, error)
}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
	faces   FaceSource
}

// WithPNGSVGOptions applies the SVG style, colors and margin to the PNG.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithFaces draws labels with faces from src instead of a private Go Regular
// measurer. src must not be used concurrently while rendering.
func WithFaces(src FaceSource) PNGOption {
	return func(r *pngRenderer) { r.faces = src }
}

// RenderPNG rasterizes the layout into a PNG image.
func RenderPNG(l cloud.Layout, opts ...PNGOption) ([]byte, error) {
	p := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&p)
	}
	if p.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "png scale must be > 0, got %v", p.scale)
	}
	if err := ValidateSVGOptions(p.svgOpts...); err != nil {
		return nil, err
	}

	if p.faces == nil {
		m, err := tags.NewFontMeasurer()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
		}
		defer m.Close()
		p.faces = m
	}

	r := newSVGRenderer(p.svgOpts...)
	f := r.frame(l, p.scale)

	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(parseColor(r.background)), image.Point{}, draw.Src)

	for i, t := range l.Tags {
		b := r.block(f, i, t)
		var face font.Face
		if b.FontSize > 0 {
			var err error
			if face, err = p.faces.Face(b.FontSize); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "face for %q", t.Word)
			}
		}
		r.style.DrawTag(img, b, face)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
