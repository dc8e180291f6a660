package geom

import "fmt"

// Rect is a placed tag box. (X, Y) is its highest-left corner.
type Rect struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// NewRect builds a Rect from a location and a size.
func NewRect(loc Point, size Size) Rect {
	return Rect{X: loc.X, Y: loc.Y, Width: size.Width, Height: size.Height}
}

// CenteredAt returns the rect of the given size whose center is c, using
// truncating integer division for the half extents.
func CenteredAt(c Point, size Size) Rect {
	return NewRect(Point{X: c.X - size.Width/2, Y: c.Y + size.Height/2}, size)
}

// Location returns the stored (highest-left) corner.
func (r Rect) Location() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rect dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Left returns the minimum X.
func (r Rect) Left() int { return r.X }

// Right returns the maximum X.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the maximum Y.
func (r Rect) Top() int { return r.Y }

// Bottom returns the minimum Y.
func (r Rect) Bottom() int { return r.Y - r.Height }

// Center returns the geometric center.
func (r Rect) Center() PointF {
	return PointF{
		X: float64(r.X) + float64(r.Width)/2,
		Y: float64(r.Y) - float64(r.Height)/2,
	}
}

// Area returns Width*Height.
func (r Rect) Area() int { return r.Width * r.Height }

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// IntersectsWith reports whether r and other share a region of positive
// area. Touching edges do not count, so zero-area rects never intersect.
func (r Rect) IntersectsWith(other Rect) bool {
	return max(r.Left(), other.Left()) < min(r.Right(), other.Right()) &&
		max(r.Bottom(), other.Bottom()) < min(r.Top(), other.Top())
}

// Intersection returns the area shared by r and other.
func (r Rect) Intersection(other Rect) int {
	w := min(r.Right(), other.Right()) - max(r.Left(), other.Left())
	h := min(r.Top(), other.Top()) - max(r.Bottom(), other.Bottom())
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Union returns the smallest rect containing r and other.
func (r Rect) Union(other Rect) Rect {
	left := min(r.Left(), other.Left())
	right := max(r.Right(), other.Right())
	top := max(r.Top(), other.Top())
	bottom := min(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: top - bottom}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}

// Bottom returns r.Y - r.Height.
func Bottom(r Rect) int { return r.Bottom() }

// Center returns the geometric center of r.
func Center(r Rect) PointF { return r.Center() }

// IntersectsAny reports whether r intersects any of rects.
func IntersectsAny(r Rect, rects []Rect) bool {
	for _, other := range rects {
		if r.IntersectsWith(other) {
			return true
		}
	}
	return false
}

// Bounds returns the union of rects, or the zero Rect if rects is empty.
func Bounds(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	b := rects[0]
	for _, r := range rects[1:] {
		b = b.Union(r)
	}
	return b
}
