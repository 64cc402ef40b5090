package geom

import "fmt"

// Handle identifies one of the eight resize handles around a shape.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

// Handles lists every real handle in clockwise order starting at north.
var Handles = []Handle{HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW, HandleNW}

var handleNames = map[Handle]string{
	HandleNone: "",
	HandleN:    "n",
	HandleNE:   "ne",
	HandleE:    "e",
	HandleSE:   "se",
	HandleS:    "s",
	HandleSW:   "sw",
	HandleW:    "w",
	HandleNW:   "nw",
}

// String returns the compass name ("n", "se", ...).
func (h Handle) String() string { return handleNames[h] }

// ParseHandle converts a compass name back to a Handle.
func ParseHandle(s string) (Handle, error) {
	for h, name := range handleNames {
		if name == s && h != HandleNone {
			return h, nil
		}
	}
	return HandleNone, fmt.Errorf("unknown resize handle %q", s)
}

// movesNorth etc. report which edges of the rectangle a handle drags.
func (h Handle) movesNorth() bool { return h == HandleN || h == HandleNE || h == HandleNW }
func (h Handle) movesSouth() bool { return h == HandleS || h == HandleSE || h == HandleSW }
func (h Handle) movesWest() bool  { return h == HandleW || h == HandleNW || h == HandleSW }
func (h Handle) movesEast() bool  { return h == HandleE || h == HandleNE || h == HandleSE }

// Anchor returns the point of r where handle h is drawn.
func (h Handle) Anchor(r Rect) Point {
	c := r.Center()
	x, y := c.X, c.Y
	switch {
	case h.movesWest():
		x = r.X
	case h.movesEast():
		x = r.X + r.Width
	}
	switch {
	case h.movesNorth():
		y = r.Y
	case h.movesSouth():
		y = r.Y + r.Height
	}
	return Point{X: x, Y: y}
}

// ResizeBounds computes the bounds that result from dragging handle h of
// orig by the cumulative delta d. Corner handles change two dimensions, edge
// handles one; north and west handles also move the origin. Width and height
// never drop below min. When a dimension is clamped while its north or west
// edge was being dragged, the origin is pinned so the opposite edge stays
// where it was.
func ResizeBounds(orig Rect, h Handle, d Point, min Size) Rect {
	r := orig
	if h.movesEast() {
		r.Width = orig.Width + d.X
		if r.Width < min.Width {
			r.Width = min.Width
		}
	}
	if h.movesWest() {
		r.Width = orig.Width - d.X
		r.X = orig.X + d.X
		if r.Width < min.Width {
			r.Width = min.Width
			r.X = orig.X + orig.Width - min.Width
		}
	}
	if h.movesSouth() {
		r.Height = orig.Height + d.Y
		if r.Height < min.Height {
			r.Height = min.Height
		}
	}
	if h.movesNorth() {
		r.Height = orig.Height - d.Y
		r.Y = orig.Y + d.Y
		if r.Height < min.Height {
			r.Height = min.Height
			r.Y = orig.Y + orig.Height - min.Height
		}
	}
	return r
}
