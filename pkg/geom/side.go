package geom

import "fmt"

// Side names an edge of a rectangle. SideAuto means "whichever side faces
// the other end".
type Side int

const (
	SideAuto Side = iota
	SideN
	SideE
	SideS
	SideW
)

var sideNames = [...]string{"auto", "n", "e", "s", "w"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	for i, n := range sideNames {
		if n == string(b) {
			*s = Side(i)
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", string(b))
}

// Midpoint returns the middle of side s of r. SideAuto yields the center.
func (s Side) Midpoint(r Rect) Point {
	c := r.Center()
	switch s {
	case SideN:
		return Point{X: c.X, Y: r.Y}
	case SideS:
		return Point{X: c.X, Y: r.Y + r.Height}
	case SideW:
		return Point{X: r.X, Y: c.Y}
	case SideE:
		return Point{X: r.X + r.Width, Y: c.Y}
	}
	return c
}

// FacingSide returns the side of r that faces target. The choice compares
// dx and dy normalized by the rectangle's half dimensions. A target at the
// center yields SideAuto.
func FacingSide(r Rect, target Point) Side {
	c := r.Center()
	dx, dy := target.X-c.X, target.Y-c.Y
	if dx == 0 && dy == 0 {
		return SideAuto
	}
	var ndx, ndy float64
	if r.Width > 0 {
		ndx = dx / (r.Width / 2)
	}
	if r.Height > 0 {
		ndy = dy / (r.Height / 2)
	}
	if abs(ndx) > abs(ndy) {
		if dx > 0 {
			return SideE
		}
		return SideW
	}
	if dy > 0 {
		return SideS
	}
	return SideN
}

// ExitPoint returns the point on the border of r that faces target: the
// midpoint of FacingSide(r, target). A degenerate rect or a target at
// the center returns the center.
func ExitPoint(r Rect, target Point) Point {
	if r.Width == 0 && r.Height == 0 {
		return r.Center()
	}
	return FacingSide(r, target).Midpoint(r)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
