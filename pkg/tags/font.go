package tags

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// FontMeasurer measures words with an OpenType font. Faces are created
// lazily per font size and cached. It is safe for concurrent use.
type FontMeasurer struct {
	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFontMeasurer returns a measurer backed by the Go Regular font.
func NewFontMeasurer() (*FontMeasurer, error) {
	return NewFontMeasurerFromTTF(goregular.TTF)
}

// NewFontMeasurerFromTTF parses a TrueType/OpenType font.
func NewFontMeasurerFromTTF(ttf []byte) (*FontMeasurer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns the cached face for size, creating it on first use. The face
// is owned by the measurer and must not be closed by the caller.
func (m *FontMeasurer) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %.1fpt: %w", size, err)
	}
	m.faces[size] = f
	return f, nil
}

// Measure returns the advance width and line height of word at fontSize,
// rounded up to whole pixels.
func (m *FontMeasurer) Measure(word string, fontSize float64) (geom.Size, error) {
	face, err := m.Face(fontSize)
	if err != nil {
		return geom.Size{}, err
	}

	// opentype faces are not safe for concurrent use.
	m.mu.Lock()
	defer m.mu.Unlock()
	adv := font.MeasureString(face, word)
	metrics := face.Metrics()
	return geom.Size{
		Width:  adv.Ceil(),
		Height: (metrics.Ascent + metrics.Descent).Ceil(),
	}, nil
}

// Close releases all cached faces.
func (m *FontMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, f := range m.faces {
		_ = f.Close()
		delete(m.faces, size)
	}
	return nil
}
