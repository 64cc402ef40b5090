package geom

import "math"

// DefaultGrid is the snap granularity used when none is configured.
const DefaultGrid = 20

// Snap rounds v to the nearest multiple of grid. Halves round up (toward
// +Inf), so Snap(50, 20) == 60 and Snap(-50, 20) == -40. A non-positive grid
// disables snapping.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Floor(v/grid+0.5) * grid
}

// SnapPoint snaps both coordinates of p.
func SnapPoint(p Point, grid float64) Point {
	return Point{X: Snap(p.X, grid), Y: Snap(p.Y, grid)}
}

// PlaceCentered returns the bounds of a new shape of size s dropped at the
// click point p: the click snaps to the grid, the shape is centered on the
// snapped point, and the resulting origin snaps again so shapes always sit on
// grid intersections.
func PlaceCentered(p Point, s Size, grid float64) Rect {
	c := SnapPoint(p, grid)
	return Rect{
		X:      Snap(c.X-s.Width/2, grid),
		Y:      Snap(c.Y-s.Height/2, grid),
		Width:  s.Width,
		Height: s.Height,
	}
}
