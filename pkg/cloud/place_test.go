package cloud

import (
	"slices"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/spiral"
)

func TestMoveFromCenter(t *testing.T) {
	tests := []struct {
		name   string
		center geom.Point
		rect   geom.Rect
		want   geom.Point
	}{
		{"square at (-2, 0) when center at (0, 0)", geom.Pt(0, 0), geom.Rect{X: -2, Y: 0, Width: 2, Height: 2}, geom.Pt(-3, -1)},
		{"square at (0, 2) when center at (0, 0)", geom.Pt(0, 0), geom.Rect{X: 0, Y: 2, Width: 2, Height: 2}, geom.Pt(1, 3)},
		{"square at (-1, 1) when center at (0, 0)", geom.Pt(0, 0), geom.Rect{X: -1, Y: 1, Width: 2, Height: 2}, geom.Pt(-2, 0)},
		{"square at (1, 3) when center at (1, 1)", geom.Pt(1, 1), geom.Rect{X: 1, Y: 3, Width: 2, Height: 2}, geom.Pt(2, 4)},
		{"square at (-1, 1) when center at (1, 1)", geom.Pt(1, 1), geom.Rect{X: -1, Y: 1, Width: 2, Height: 2}, geom.Pt(-2, 0)},
		{"rectangle(3,2) at (0, 2) when center at (0, 0)", geom.Pt(0, 0), geom.Rect{X: 0, Y: 2, Width: 3, Height: 2}, geom.Pt(1, 3)},
		{"rectangle(5,3) at (-3, 2) when center at (0, 0)", geom.Pt(0, 0), geom.Rect{X: -3, Y: 2, Width: 5, Height: 3}, geom.Pt(-4, 3)},
		{"rectangle(6,4) at (-1, 3) when center at (1, 1)", geom.Pt(1, 1), geom.Rect{X: -1, Y: 3, Width: 6, Height: 4}, geom.Pt(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveFromCenter(tt.rect, 1, tt.center)
			if got.Location() != tt.want {
				t.Errorf("MoveFromCenter().Location() = %v, want %v", got.Location(), tt.want)
			}
			if got.Size() != tt.rect.Size() {
				t.Errorf("MoveFromCenter() changed size to %v", got.Size())
			}
		})
	}
}

func TestPlaceIsPure(t *testing.T) {
	center := geom.Pt(3, -2)
	placed := []geom.Rect{geom.CenteredAt(center, geom.Sz(4, 4))}
	snapshot := slices.Clone(placed)
	cursor := spiral.ForSize(geom.Sz(4, 4), center)

	r1, c1, err := Place(placed, center, cursor, geom.Sz(3, 2), DefaultConfig())
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	r2, c2, err := Place(placed, center, cursor, geom.Sz(3, 2), DefaultConfig())
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	if r1 != r2 || c1 != c2 {
		t.Errorf("Place() not reproducible: %v/%v vs %v/%v", r1, c1, r2, c2)
	}
	if !slices.Equal(placed, snapshot) {
		t.Error("Place() modified placed rects")
	}
	if c1 == cursor {
		t.Error("Place() did not advance the returned cursor")
	}
}

func TestPlaceMatchesLayouter(t *testing.T) {
	sizes := []geom.Size{geom.Sz(8, 3), geom.Sz(5, 5), geom.Sz(2, 7), geom.Sz(9, 1), geom.Sz(4, 4)}
	center := geom.Pt(-5, 5)

	l := New(center)
	var (
		placed []geom.Rect
		cursor spiral.Spiral
	)
	for _, s := range sizes {
		want, err := l.PutNextRectangle(s)
		if err != nil {
			t.Fatal(err)
		}
		var got geom.Rect
		got, cursor, err = Place(placed, center, cursor, s, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Place(%v) = %v, Layouter placed %v", s, got, want)
		}
		placed = append(placed, got)
	}
}

func TestPlaceSearchExhausted(t *testing.T) {
	center := geom.Point{}
	placed := []geom.Rect{geom.CenteredAt(center, geom.Sz(1000, 1000))}
	cursor := spiral.ForSize(geom.Sz(1, 1), center)

	_, got, err := Place(placed, center, cursor, geom.Sz(1, 1), Config{MaxIterations: 5})
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Fatalf("Place() error = %v, want %s", err, errors.ErrCodeInternal)
	}
	if got.Angle() == cursor.Angle() {
		t.Error("exhausted search should report the cursor it reached")
	}
}

func TestPlaceZeroSizeNeverIntersects(t *testing.T) {
	center := geom.Point{}
	placed := []geom.Rect{geom.CenteredAt(center, geom.Sz(10, 10))}
	cursor := spiral.ForSize(geom.Sz(10, 10), center)

	rect, _, err := Place(placed, center, cursor, geom.Size{}, DefaultConfig())
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if rect.Area() != 0 {
		t.Errorf("Area() = %d, want 0", rect.Area())
	}
}

func TestNudge(t *testing.T) {
	center := geom.Point{}
	tests := []struct {
		name   string
		rect   geom.Rect
		placed []geom.Rect
		want   geom.Point
		ok     bool
	}{
		{
			name: "diagonal toward center",
			rect: geom.Rect{X: 4, Y: 6, Width: 2, Height: 2},
			want: geom.Pt(3, 5),
			ok:   true,
		},
		{
			name: "already centered",
			rect: geom.Rect{X: -1, Y: 1, Width: 2, Height: 2},
			ok:   false,
		},
		{
			name: "only vertical offset",
			rect: geom.Rect{X: -1, Y: 5, Width: 2, Height: 2},
			want: geom.Pt(-1, 4),
			ok:   true,
		},
		{
			name:   "diagonal blocked falls back to x",
			rect:   geom.Rect{X: 4, Y: 6, Width: 2, Height: 2},
			placed: []geom.Rect{{X: 0, Y: 4, Width: 10, Height: 4}},
			want:   geom.Pt(3, 6),
			ok:     true,
		},
		{
			name:   "fully blocked",
			rect:   geom.Rect{X: 4, Y: 6, Width: 2, Height: 2},
			placed: []geom.Rect{{X: -10, Y: 4, Width: 20, Height: 4}, {X: 0, Y: 10, Width: 4, Height: 10}},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nudge(tt.rect, tt.placed, center, 1)
			if ok != tt.ok {
				t.Fatalf("nudge() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Location() != tt.want {
				t.Errorf("nudge().Location() = %v, want %v", got.Location(), tt.want)
			}
		})
	}
}
