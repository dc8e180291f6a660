// Package cloud places tag boxes around a center point.
//
// # Overview
//
// A [Layouter] owns the rectangles placed so far and a [spiral.Spiral]
// cursor. Every call to [Layouter.PutNextRectangle] runs one greedy step:
//
//  1. The first rectangle is centered exactly on the cloud center and seeds
//     the spiral from its size.
//  2. Later rectangles walk the spiral outward until a candidate centered on
//     the spiral point overlaps nothing already placed.
//  3. The accepted candidate is compacted: nudged toward the center one step
//     at a time while the move keeps it free of overlaps.
//
// Placed rectangles are never moved again. There is no backtracking and no
// attempt at packing optimality.
//
// The step itself is the pure function [Place]; the Layouter only stores its
// inputs and outputs, so a layout can be replayed from the same sizes.
//
// # Concurrency
//
// A Layouter is not safe for concurrent use. Callers that share one must
// serialize calls to PutNextRectangle.
//
// # Serialization
//
// [Layout] is the exported form of a finished cloud, with words and font
// sizes attached to each rectangle. It is what the renderers, the cache and
// the layout store consume.
package cloud
