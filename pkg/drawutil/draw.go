package drawutil

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/wesen/diagrail/pkg/cellbuf"
)

// Head is the marker drawn on the last cell of a line.
type Head int

const (
	HeadNone Head = iota
	HeadOpen
	HeadFilled
)

// PreviewDash is the pattern of rubber-band lines: two cells on, one off.
var PreviewDash = []int{2, 1}

// pointChar returns the line character for a point based on its local
// direction (looking at the next or previous point).
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// Stroke describes how a connector line is drawn.
type Stroke struct {
	Line   cellbuf.StyleKey
	Marker cellbuf.StyleKey
	Head   Head
	// Dash alternates on and off run lengths in cells. Nil draws solid.
	Dash []int
}

// Draw renders the stroke from (x0,y0) to (x1,y1). Coordinates are
// buffer-local. The head, if any, is drawn even when the dash pattern
// would leave the last cell blank.
func (s Stroke) Draw(buf *cellbuf.Buffer, x0, y0, x1, y1 int) {
	pts := Bresenham(x0, y0, x1, y1)
	body := pts
	if s.Head != HeadNone && len(pts) > 0 {
		body = pts[:len(pts)-1]
	}
	for i, p := range body {
		if dashOn(s.Dash, i) {
			buf.Set(p.X, p.Y, pointChar(pts, i), s.Line)
		}
	}
	if len(body) == len(pts) {
		return
	}
	last := pts[len(pts)-1]
	var dx, dy int
	if len(pts) >= 2 {
		dx = last.X - pts[len(pts)-2].X
		dy = last.Y - pts[len(pts)-2].Y
	}
	ch := ArrowChar(dx, dy)
	if s.Head == HeadOpen {
		ch = OpenArrowChar(dx, dy)
	}
	buf.Set(last.X, last.Y, ch, s.Marker)
}

// dashOn reports whether point i of a line falls in an "on" run. An odd
// pattern is repeated once so on and off alternate.
func dashOn(pattern []int, i int) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]int(nil), pattern...), pattern...)
	}
	total := 0
	for _, n := range pattern {
		total += n
	}
	if total <= 0 {
		return true
	}
	pos := i % total
	for k, n := range pattern {
		if pos < n {
			return k%2 == 0
		}
		pos -= n
	}
	return true
}

// ParseDash reads an SVG-style dash list ("4 2" or "4,2"). The empty
// string yields nil.
func ParseDash(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("dash %q: invalid run %q", s, f)
		}
		out[i] = n
	}
	return out, nil
}

// DrawLine draws a solid Bresenham line into buf with per-point line
// characters.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	Stroke{Line: style}.Draw(buf, x0, y0, x1, y1)
}

// DrawArrowLine draws a line with a filled arrowhead at the endpoint.
func DrawArrowLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, lineStyle, arrowStyle cellbuf.StyleKey) {
	Stroke{Line: lineStyle, Marker: arrowStyle, Head: HeadFilled}.Draw(buf, x0, y0, x1, y1)
}

// DrawDashedLine draws a line in the preview dash pattern.
func DrawDashedLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	Stroke{Line: style, Dash: PreviewDash}.Draw(buf, x0, y0, x1, y1)
}
