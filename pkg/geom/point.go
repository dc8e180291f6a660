package geom

import (
	"fmt"
	"math"
)

// Point is an integer coordinate.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by other.
func (p Point) Add(other Point) Point { return Point{X: p.X + other.X, Y: p.Y + other.Y} }

// Sub returns p translated by -other.
func (p Point) Sub(other Point) Point { return Point{X: p.X - other.X, Y: p.Y - other.Y} }

// String returns "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// PointF is a floating point coordinate, used for rectangle centers.
type PointF struct {
	X, Y float64
}

// Float converts p to a PointF.
func (p Point) Float() PointF { return PointF{X: float64(p.X), Y: float64(p.Y)} }

// Sub returns p - other.
func (p PointF) Sub(other PointF) PointF { return PointF{X: p.X - other.X, Y: p.Y - other.Y} }

// Dist returns the Euclidean distance between p and other.
func (p PointF) Dist(other PointF) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}
