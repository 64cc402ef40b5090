package drawutil

import (
	"math"

	"github.com/wesen/diagrail/pkg/cellbuf"
)

// Lattice relates buffer cells to world coordinates. Cell (c, r) covers
// the world span [OriginX+c*CellW, OriginX+(c+1)*CellW) horizontally and
// likewise vertically.
type Lattice struct {
	OriginX, OriginY float64
	CellW, CellH     float64
	// Spacing is the grid pitch in world units.
	Spacing float64
}

// DrawGrid puts a dot ('·') in every cell whose world span contains a grid
// intersection.
func DrawGrid(buf *cellbuf.Buffer, l Lattice, style cellbuf.StyleKey) {
	if l.Spacing <= 0 || l.CellW <= 0 || l.CellH <= 0 {
		return
	}
	cols := make([]bool, buf.W)
	for c := range cols {
		cols[c] = crosses(l.OriginX+float64(c)*l.CellW, l.CellW, l.Spacing)
	}
	for r := 0; r < buf.H; r++ {
		if !crosses(l.OriginY+float64(r)*l.CellH, l.CellH, l.Spacing) {
			continue
		}
		for c, on := range cols {
			if on {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// crosses reports whether [start, start+span) contains a multiple of pitch.
func crosses(start, span, pitch float64) bool {
	return math.Ceil(start/pitch)*pitch < start+span
}
