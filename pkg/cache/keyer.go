package cache

import "fmt"

// Keyer derives cache keys. Implementations must return equal keys for
// equal inputs and distinct keys whenever an option changes the output.
type Keyer interface {
	// LayoutKey identifies a layout computed from a tag list.
	LayoutKey(tagsHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies one rendered format of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the tags that change a layout.
type LayoutKeyOpts struct {
	CenterX        int     `json:"center_x"`
	CenterY        int     `json:"center_y"`
	CompactionStep int     `json:"compaction_step"`
	MaxIterations  int     `json:"max_iterations"`
	MinFontSize    float64 `json:"min_font_size"`
	MaxFontSize    float64 `json:"max_font_size"`
	Padding        int     `json:"padding"`
}

// ArtifactKeyOpts are the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format     string   `json:"format"`
	Style      string   `json:"style"`
	Background string   `json:"background"`
	Palette    []string `json:"palette"`
	Margin     int      `json:"margin"`
	Scale      float64  `json:"scale"`
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(tagsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", tagsHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutHash, opts)
}
