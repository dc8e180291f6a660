package geom

import "testing"

func TestRectBottom(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want int
	}{
		{"square at origin", Rect{X: 0, Y: 0, Width: 2, Height: 2}, -2},
		{"above origin", Rect{X: -1, Y: 1, Width: 2, Height: 2}, -1},
		{"zero height", Rect{X: 3, Y: 4, Width: 5, Height: 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bottom(tt.rect); got != tt.want {
				t.Errorf("Bottom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want PointF
	}{
		{"even size", Rect{X: -1, Y: 1, Width: 2, Height: 2}, PointF{0, 0}},
		{"odd size", Rect{X: -1, Y: 2, Width: 3, Height: 5}, PointF{0.5, -0.5}},
		{"offset", Rect{X: -3, Y: 2, Width: 5, Height: 3}, PointF{-0.5, 0.5}},
		{"zero size", Rect{X: 4, Y: 7}, PointF{4, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Center(tt.rect); got != tt.want {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenteredAt(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		size   Size
		want   Point
	}{
		{"center at origin", Pt(0, 0), Sz(2, 2), Pt(-1, 1)},
		{"center at (1, 1)", Pt(1, 1), Sz(2, 2), Pt(0, 2)},
		{"odd width and height", Pt(0, 0), Sz(3, 5), Pt(-1, 2)},
		{"zero size", Pt(0, 0), Sz(0, 0), Pt(0, 0)},
		{"negative center", Pt(-3, -3), Sz(1, 1), Pt(-3, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CenteredAt(tt.center, tt.size)
			if got := r.Location(); got != tt.want {
				t.Errorf("CenteredAt().Location() = %v, want %v", got, tt.want)
			}
			if r.Size() != tt.size {
				t.Errorf("CenteredAt().Size() = %v, want %v", r.Size(), tt.size)
			}
		})
	}
}

func TestRectIntersectsWith(t *testing.T) {
	base := Rect{X: 0, Y: 2, Width: 2, Height: 2}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same rect", base, true},
		{"overlap corner", Rect{X: 1, Y: 1, Width: 2, Height: 2}, true},
		{"contained", Rect{X: 0, Y: 1, Width: 1, Height: 1}, true},
		{"touching right edge", Rect{X: 2, Y: 2, Width: 2, Height: 2}, false},
		{"touching bottom edge", Rect{X: 0, Y: 0, Width: 2, Height: 2}, false},
		{"touching corner", Rect{X: 2, Y: 4, Width: 2, Height: 2}, false},
		{"far away", Rect{X: 10, Y: 10, Width: 2, Height: 2}, false},
		{"zero size inside", Rect{X: 1, Y: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.IntersectsWith(tt.other); got != tt.want {
				t.Errorf("IntersectsWith() = %v, want %v", got, tt.want)
			}
			if got := tt.other.IntersectsWith(base); got != tt.want {
				t.Errorf("IntersectsWith() reversed = %v, want %v", got, tt.want)
			}
			if got := base.Intersection(tt.other) > 0; got != tt.want {
				t.Errorf("Intersection() > 0 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnionAndBounds(t *testing.T) {
	a := Rect{X: -1, Y: 1, Width: 2, Height: 2}
	b := Rect{X: 3, Y: 5, Width: 1, Height: 1}

	want := Rect{X: -1, Y: 5, Width: 5, Height: 6}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
	if got := Bounds([]Rect{a, b}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := Bounds(nil); got != (Rect{}) {
		t.Errorf("Bounds(nil) = %v, want zero", got)
	}
}

func TestSizeValidate(t *testing.T) {
	tests := []struct {
		size    Size
		wantErr bool
	}{
		{Sz(0, 0), false},
		{Sz(5, 3), false},
		{Sz(-1, 0), true},
		{Sz(0, -1), true},
		{Sz(-1, -1), true},
	}

	for _, tt := range tests {
		err := tt.size.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Size(%v).Validate() error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
	}
}
