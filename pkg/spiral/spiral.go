// Package spiral generates candidate positions along an Archimedean spiral.
//
// A [Spiral] starts at a first-layer radius around its origin and advances
// by a fixed angle step on every call to [Spiral.Next]. The radius grows
// linearly with the accumulated angle:
//
//	radius = firstRadius + density*angle
//
// so one full revolution (a "layer") widens the spiral by density*2π. The
// sequence is infinite; callers stop drawing points once they find a free
// slot.
//
// Spiral is a comparable value type. Copying it forks the cursor, which is
// how [Spiral.Points] iterates without advancing the receiver.
package spiral

import (
	"iter"
	"math"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// DefaultAngleStep advances the spiral by 45°, eight points per revolution.
const DefaultAngleStep = math.Pi / 4

// Spiral is a spiral cursor.
type Spiral struct {
	angle       float64
	radius      float64
	step        float64
	density     float64
	firstRadius float64
	origin      geom.Point
}

// New returns a spiral cursor positioned at angle zero.
func New(step, firstRadius, density float64, origin geom.Point) Spiral {
	return Spiral{
		radius:      firstRadius,
		step:        step,
		density:     density,
		firstRadius: firstRadius,
		origin:      origin,
	}
}

// ForSize seeds a spiral from the first box of a cloud. The first layer
// clears half of the box width and the layer spacing comes from Density.
func ForSize(size geom.Size, origin geom.Point) Spiral {
	return New(DefaultAngleStep, float64(size.Width/2+1), Density(size), origin)
}

// Density returns the radial growth per radian for a spiral seeded by size.
// One revolution widens the spiral by max(sqrt(area), height, 1), which keeps
// consecutive layers at least a box height apart and is never zero.
func Density(size geom.Size) float64 {
	spacing := math.Sqrt(float64(max(size.Area(), 0)))
	spacing = max(spacing, float64(size.Height), 1)
	return spacing / (2 * math.Pi)
}

// Next advances the cursor by one step and returns the new point.
func (s *Spiral) Next() geom.Point {
	s.angle += s.step
	s.radius = s.firstRadius + s.density*s.angle
	return s.Point()
}

// Point returns the point under the cursor without advancing it.
func (s Spiral) Point() geom.Point {
	return geom.Point{
		X: s.origin.X + int(math.Round(s.radius*math.Cos(s.angle))),
		Y: s.origin.Y + int(math.Round(s.radius*math.Sin(s.angle))),
	}
}

// Points yields the points Next would return, starting from the current
// cursor. The receiver is not advanced.
func (s Spiral) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		c := s
		for {
			if !yield(c.Next()) {
				return
			}
		}
	}
}

// Equal reports whether s and other have identical parameters and cursor.
func (s Spiral) Equal(other Spiral) bool { return s == other }

// Angle returns the accumulated angle in radians.
func (s Spiral) Angle() float64 { return s.angle }

// Radius returns the current radius.
func (s Spiral) Radius() float64 { return s.radius }

// Step returns the angle step in radians.
func (s Spiral) Step() float64 { return s.step }

// Density returns the radial growth per radian.
func (s Spiral) Density() float64 { return s.density }

// FirstRadius returns the radius at angle zero.
func (s Spiral) FirstRadius() float64 { return s.firstRadius }

// Origin returns the spiral center.
func (s Spiral) Origin() geom.Point { return s.origin }

// Layer returns the number of completed revolutions.
func (s Spiral) Layer() int {
	return int(s.angle / (2 * math.Pi))
}
