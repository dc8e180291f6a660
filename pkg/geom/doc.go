// Package geom provides the integer geometry used to lay out tag clouds.
//
// The package uses the mathematical axis convention: Y grows upward. A [Rect]
// stores its highest-left corner and extends Width to the right and Height
// downward from it, so
//
//	Bottom(r) = r.Y - r.Height
//	Center(r) = (r.X + r.Width/2, r.Y - r.Height/2)
//
// where the center is computed in floating point because half a width or
// height may be fractional.
//
// All types are small comparable values; none of them are mutated in place.
package geom
