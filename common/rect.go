package common

import "github.com/jakecoffman/cp"

// NewRect builds a screen-space box from its top-left corner. B holds the top
// edge and T the bottom edge, matching how the physics code lays out cp.BB.
func NewRect(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlaps is a strict AABB test: boxes that only share an edge do not touch.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

func Width(bb cp.BB) float64 {
	return bb.R - bb.L
}

func Height(bb cp.BB) float64 {
	return bb.T - bb.B
}
