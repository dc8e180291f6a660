package spiral

import (
	"math"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

func TestForSize(t *testing.T) {
	tests := []struct {
		name string
		size geom.Size
	}{
		{"zero size", geom.Sz(0, 0)},
		{"square", geom.Sz(2, 2)},
		{"horizontal rectangle", geom.Sz(5, 3)},
		{"vertical rectangle", geom.Sz(3, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := New(math.Pi/4, float64(tt.size.Width/2+1), Density(tt.size), geom.Point{})
			got := ForSize(tt.size, geom.Point{})
			if !got.Equal(want) {
				t.Errorf("ForSize(%v) = %+v, want %+v", tt.size, got, want)
			}
			if got.Step() != DefaultAngleStep {
				t.Errorf("Step() = %v, want %v", got.Step(), DefaultAngleStep)
			}
			if got.FirstRadius() != float64(tt.size.Width/2+1) {
				t.Errorf("FirstRadius() = %v, want %v", got.FirstRadius(), tt.size.Width/2+1)
			}
		})
	}
}

func TestDensity(t *testing.T) {
	tests := []struct {
		name    string
		size    geom.Size
		spacing float64
	}{
		{"zero size falls back to one", geom.Sz(0, 0), 1},
		{"square uses side", geom.Sz(2, 2), 2},
		{"wide uses sqrt area", geom.Sz(5, 3), math.Sqrt(15)},
		{"tall uses height", geom.Sz(3, 5), 5},
		{"flat line uses height floor", geom.Sz(10, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Density(tt.size) * 2 * math.Pi
			if math.Abs(got-tt.spacing) > 1e-9 {
				t.Errorf("Density(%v)*2π = %v, want %v", tt.size, got, tt.spacing)
			}
		})
	}
}

func TestDensityIsDeterministic(t *testing.T) {
	for _, size := range []geom.Size{geom.Sz(0, 0), geom.Sz(7, 2), geom.Sz(100, 40)} {
		if Density(size) != Density(size) {
			t.Errorf("Density(%v) not deterministic", size)
		}
		if ForSize(size, geom.Pt(3, 4)) != ForSize(size, geom.Pt(3, 4)) {
			t.Errorf("ForSize(%v) not deterministic", size)
		}
	}
}

func TestNextQuarterTurns(t *testing.T) {
	s := New(math.Pi/2, 1, 0, geom.Pt(10, 10))
	want := []geom.Point{
		geom.Pt(10, 11),
		geom.Pt(9, 10),
		geom.Pt(10, 9),
		geom.Pt(11, 10),
	}

	for i, w := range want {
		if got := s.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestRadiusGrowsMonotonically(t *testing.T) {
	s := ForSize(geom.Sz(4, 3), geom.Point{})
	prev := s.Radius()
	for i := 0; i < 204; i++ {
		s.Next()
		if s.Radius() < prev {
			t.Fatalf("radius decreased at step %d: %v < %v", i, s.Radius(), prev)
		}
		prev = s.Radius()
	}
	if s.Layer() != 25 {
		t.Errorf("Layer() = %d, want 25", s.Layer())
	}
}

func TestLayerSpacing(t *testing.T) {
	size := geom.Sz(6, 4)
	s := ForSize(size, geom.Point{})
	for i := 0; i < 8; i++ {
		s.Next()
	}
	grown := s.Radius() - s.FirstRadius()
	if grown < float64(size.Height) {
		t.Errorf("one layer grew radius by %v, want at least %d", grown, size.Height)
	}
}

func TestPointsDoesNotAdvance(t *testing.T) {
	s := ForSize(geom.Sz(2, 2), geom.Point{})
	before := s

	var fromSeq []geom.Point
	for p := range s.Points() {
		fromSeq = append(fromSeq, p)
		if len(fromSeq) == 16 {
			break
		}
	}

	if s != before {
		t.Fatal("Points() advanced the receiver")
	}
	for i, want := range fromSeq {
		if got := s.Next(); got != want {
			t.Errorf("Next() #%d = %v, want %v", i, got, want)
		}
	}
}

func TestPointsRestartable(t *testing.T) {
	seq := ForSize(geom.Sz(3, 3), geom.Pt(1, 1)).Points()

	first := func() geom.Point {
		for p := range seq {
			return p
		}
		return geom.Point{}
	}

	if a, b := first(), first(); a != b {
		t.Errorf("second iteration started at %v, want %v", b, a)
	}
}
