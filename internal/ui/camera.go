package ui

import (
	"image"
	"math"

	"github.com/wesen/diagrail/pkg/geom"
)

// Camera maps canvas cells to world coordinates. X and Y are the world
// position of the canvas's top-left corner.
type Camera struct {
	X, Y float64
	// UnitsPerCol and UnitsPerRow size one terminal cell in world units.
	UnitsPerCol, UnitsPerRow float64
}

// ToWorld returns the world point at the center of canvas cell p.
func (c *Camera) ToWorld(p image.Point) geom.Point {
	return geom.Pt(
		c.X+(float64(p.X)+0.5)*c.UnitsPerCol,
		c.Y+(float64(p.Y)+0.5)*c.UnitsPerRow,
	)
}

// ToCell returns the canvas cell containing world point p.
func (c *Camera) ToCell(p geom.Point) image.Point {
	return image.Pt(
		int(math.Floor((p.X-c.X)/c.UnitsPerCol)),
		int(math.Floor((p.Y-c.Y)/c.UnitsPerRow)),
	)
}

// ToCells returns the cell rectangle covering world rectangle r. Sizes
// round to the nearest cell and never drop below one.
func (c *Camera) ToCells(r geom.Rect) image.Rectangle {
	min := c.ToCell(r.Origin())
	w := max(1, int(math.Round(r.Width/c.UnitsPerCol)))
	h := max(1, int(math.Round(r.Height/c.UnitsPerRow)))
	return image.Rect(min.X, min.Y, min.X+w, min.Y+h)
}

// PanBy moves the view so the world point under the pointer follows it:
// dragging right by dx reveals the area to the left.
func (c *Camera) PanBy(dx, dy float64) {
	c.X -= dx
	c.Y -= dy
}

// Step scrolls the view by whole cells.
func (c *Camera) Step(cols, rows int) {
	c.X += float64(cols) * c.UnitsPerCol
	c.Y += float64(rows) * c.UnitsPerRow
}
