package cloud

import (
	"math"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/spiral"
)

// Place computes where a rectangle of the given size goes, given the
// rectangles already placed around center and the current spiral cursor.
// It returns the new rectangle and the advanced cursor; none of its inputs
// are modified.
//
// Negative sizes fail with ErrCodeInvalidArgument. A search that draws more
// than cfg.MaxIterations spiral points fails with ErrCodeInternal.
func Place(placed []geom.Rect, center geom.Point, cursor spiral.Spiral, size geom.Size, cfg Config) (geom.Rect, spiral.Spiral, error) {
	if err := size.Validate(); err != nil {
		return geom.Rect{}, cursor, err
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	if len(placed) == 0 {
		cursor = spiral.ForSize(size, center)
		rect := geom.CenteredAt(center, size)
		if cfg.Logger != nil {
			cfg.Logger.Debug("placed first rectangle", "size", size, "rect", rect,
				"density", cursor.Density(), "first_radius", cursor.FirstRadius())
		}
		return rect, cursor, nil
	}

	for i := 1; i <= cfg.MaxIterations; i++ {
		candidate := geom.CenteredAt(cursor.Next(), size)
		if geom.IntersectsAny(candidate, placed) {
			continue
		}
		rect, moves := compact(candidate, placed, center, cfg)
		if cfg.Logger != nil {
			cfg.Logger.Debug("placed rectangle", "size", size, "rect", rect,
				"spiral_steps", i, "layer", cursor.Layer(), "compaction_moves", moves)
		}
		return rect, cursor, nil
	}

	return geom.Rect{}, cursor, errors.New(errors.ErrCodeInternal,
		"spiral search exhausted after %d points for size %v", cfg.MaxIterations, size)
}

// MoveFromCenter moves rect by step along each axis independently, away
// from center: +step where the rect center lies strictly on the positive side
// of center on that axis, -step otherwise. A negative step moves toward the
// center instead.
func MoveFromCenter(rect geom.Rect, step int, center geom.Point) geom.Rect {
	off := rect.Center().Sub(center.Float())
	dx, dy := -step, -step
	if off.X > 0 {
		dx = step
	}
	if off.Y > 0 {
		dy = step
	}
	return rect.Offset(dx, dy)
}

// compact nudges rect toward center while the move stays free of overlaps
// and reports the number of moves made. Each accepted move shortens the L1
// distance between the rect center and the cloud center by at least step.
func compact(rect geom.Rect, placed []geom.Rect, center geom.Point, cfg Config) (geom.Rect, int) {
	step := cfg.CompactionStep
	if step <= 0 {
		return rect, 0
	}

	moves := 0
	for moves < cfg.MaxIterations {
		next, ok := nudge(rect, placed, center, step)
		if !ok {
			break
		}
		rect = next
		moves++
	}
	return rect, moves
}

// nudge tries a diagonal move toward center, then each axis alone, and
// returns the first that overlaps nothing. Axes closer to center than step
// are left alone so that a move never overshoots.
func nudge(rect geom.Rect, placed []geom.Rect, center geom.Point, step int) (geom.Rect, bool) {
	toward := MoveFromCenter(rect, -step, center)
	dx, dy := toward.X-rect.X, toward.Y-rect.Y

	off := rect.Center().Sub(center.Float())
	if math.Abs(off.X) < float64(step) {
		dx = 0
	}
	if math.Abs(off.Y) < float64(step) {
		dy = 0
	}

	var candidates [3]geom.Rect
	n := 0
	if dx != 0 && dy != 0 {
		candidates[n] = rect.Offset(dx, dy)
		n++
	}
	if dx != 0 {
		candidates[n] = rect.Offset(dx, 0)
		n++
	}
	if dy != 0 {
		candidates[n] = rect.Offset(0, dy)
		n++
	}

	for _, c := range candidates[:n] {
		if !geom.IntersectsAny(c, placed) {
			return c, true
		}
	}
	return rect, false
}
