package physics

import "github.com/jakecoffman/cp"

// SquareBounds returns the axis-aligned square enclosing a circle.
func SquareBounds(center cp.Vector, radius float64) cp.BB {
	return cp.NewBBForCircle(center, radius)
}

// Overlaps reports whether two bounds intersect with open intervals on both
// axes. Boxes that only share an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
