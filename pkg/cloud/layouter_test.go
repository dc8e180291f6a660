package cloud

import (
	"fmt"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/spiral"
)

func TestPutNextRectangleSavesRectangles(t *testing.T) {
	const want = 5
	l := New(geom.Point{})

	for i := 0; i < want; i++ {
		if _, err := l.PutNextRectangle(geom.Size{}); err != nil {
			t.Fatalf("PutNextRectangle() error: %v", err)
		}
	}

	if got := len(l.Rectangles()); got != want {
		t.Errorf("len(Rectangles()) = %d, want %d", got, want)
	}
	if l.Len() != want {
		t.Errorf("Len() = %d, want %d", l.Len(), want)
	}
}

func TestPutNextRectanglePutsFirstRectangleInCenter(t *testing.T) {
	tests := []struct {
		name   string
		center geom.Point
		size   geom.Size
		want   geom.Point
	}{
		{"center at (0, 0)", geom.Pt(0, 0), geom.Sz(2, 2), geom.Pt(-1, 1)},
		{"center at (1, 1)", geom.Pt(1, 1), geom.Sz(2, 2), geom.Pt(0, 2)},
		{"odd width and height", geom.Pt(0, 0), geom.Sz(3, 5), geom.Pt(-1, 2)},
		{"zero size", geom.Pt(0, 0), geom.Sz(0, 0), geom.Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.center)
			rect, err := l.PutNextRectangle(tt.size)
			if err != nil {
				t.Fatalf("PutNextRectangle() error: %v", err)
			}
			if got := rect.Location(); got != tt.want {
				t.Errorf("Location() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPutNextRectangleRejectsNegativeSize(t *testing.T) {
	tests := []struct {
		name string
		size geom.Size
	}{
		{"negative width", geom.Sz(-1, 0)},
		{"negative height", geom.Sz(0, -1)},
		{"negative width and height", geom.Sz(-1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(geom.Point{})
			if _, err := l.PutNextRectangle(geom.Sz(2, 2)); err != nil {
				t.Fatalf("PutNextRectangle() error: %v", err)
			}
			before := l.Spiral()

			_, err := l.PutNextRectangle(tt.size)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Fatalf("PutNextRectangle(%v) error = %v, want %s", tt.size, err, errors.ErrCodeInvalidArgument)
			}
			if l.Len() != 1 {
				t.Errorf("Len() = %d after rejected size, want 1", l.Len())
			}
			if l.Spiral() != before {
				t.Error("spiral cursor changed after rejected size")
			}
		})
	}
}

func TestPutNextRectangleInitializesSpiral(t *testing.T) {
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
			l := New(geom.Point{})
			if _, err := l.PutNextRectangle(tt.size); err != nil {
				t.Fatalf("PutNextRectangle() error: %v", err)
			}

			want := spiral.New(spiral.DefaultAngleStep, float64(tt.size.Width/2+1), spiral.Density(tt.size), geom.Point{})
			if got := l.Spiral(); !got.Equal(want) {
				t.Errorf("Spiral() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestRectanglesShouldNotIntersect(t *testing.T) {
	tests := []struct {
		name string
		size geom.Size
	}{
		{"squares", geom.Sz(2, 2)},
		{"horizontal rectangles", geom.Sz(5, 3)},
		{"vertical rectangles", geom.Sz(3, 5)},
		{"zero size", geom.Sz(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(geom.Point{})
			for i := 0; i < 20; i++ {
				if _, err := l.PutNextRectangle(tt.size); err != nil {
					t.Fatalf("PutNextRectangle() #%d error: %v", i, err)
				}
			}

			rects := l.Rectangles()
			checks := 0
			for i := range rects {
				for j := i + 1; j < len(rects); j++ {
					checks++
					if rects[i].IntersectsWith(rects[j]) {
						t.Errorf("rect %d %v intersects rect %d %v", i, rects[i], j, rects[j])
					}
				}
			}
			if checks != 190 {
				t.Errorf("pair checks = %d, want 190", checks)
			}
		})
	}
}

func TestMixedSizesDoNotIntersect(t *testing.T) {
	l := New(geom.Pt(50, -20))
	sizes := []geom.Size{
		geom.Sz(120, 40), geom.Sz(0, 0), geom.Sz(80, 30), geom.Sz(10, 60),
		geom.Sz(45, 20), geom.Sz(200, 12), geom.Sz(1, 1), geom.Sz(33, 33),
	}
	for round := 0; round < 4; round++ {
		for _, s := range sizes {
			if _, err := l.PutNextRectangle(s); err != nil {
				t.Fatalf("PutNextRectangle(%v) error: %v", s, err)
			}
		}
	}

	rects := l.Rectangles()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].IntersectsWith(rects[j]) {
				t.Fatalf("rect %d %v intersects rect %d %v", i, rects[i], j, rects[j])
			}
		}
	}
}

func TestRectanglesReturnsCopy(t *testing.T) {
	l := New(geom.Point{})
	if _, err := l.PutNextRectangle(geom.Sz(2, 2)); err != nil {
		t.Fatal(err)
	}
	rects := l.Rectangles()
	rects[0] = geom.Rect{X: 100}

	if got := l.Rectangles()[0]; got.X == 100 {
		t.Error("Rectangles() exposed internal slice")
	}
}

func TestCompactedRectanglesCannotMoveCloser(t *testing.T) {
	center := geom.Pt(0, 0)
	l := New(center)
	for i := 0; i < 15; i++ {
		if _, err := l.PutNextRectangle(geom.Sz(4+i%3, 2+i%2)); err != nil {
			t.Fatal(err)
		}
	}

	rects := l.Rectangles()
	for i := 1; i < len(rects); i++ {
		if next, ok := nudge(rects[i], rects[:i], center, DefaultCompactionStep); ok {
			t.Errorf("rect %d %v could still move to %v", i, rects[i], next)
		}
	}
}

func TestCompactionPullsTowardCenter(t *testing.T) {
	compacted := New(geom.Point{})
	loose := New(geom.Point{}, WithCompactionStep(0))

	var a, b geom.Rect
	for i := 0; i < 2; i++ {
		var err error
		if a, err = compacted.PutNextRectangle(geom.Sz(6, 3)); err != nil {
			t.Fatal(err)
		}
		if b, err = loose.PutNextRectangle(geom.Sz(6, 3)); err != nil {
			t.Fatal(err)
		}
	}

	c := geom.Point{}.Float()
	if got, limit := a.Center().Dist(c), b.Center().Dist(c); got >= limit {
		t.Errorf("compacted distance %v, want less than uncompacted %v", got, limit)
	}
	if a.IntersectsWith(compacted.Rectangles()[0]) {
		t.Errorf("compacted rect %v overlaps the first rect", a)
	}
}

func ExampleLayouter() {
	l := New(geom.Pt(0, 0))

	first, _ := l.PutNextRectangle(geom.Sz(2, 2))
	fmt.Println(first.Location())

	_, err := l.PutNextRectangle(geom.Sz(-1, 2))
	fmt.Println(errors.GetCode(err), l.Len())
	// Output:
	// (-1, 1)
	// INVALID_ARGUMENT 1
}
