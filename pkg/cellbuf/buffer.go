// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient Lipgloss-based rendering. The diagram canvas is drawn into
// one Buffer per frame: grid, connectors, shape boxes and handles.
//
// Each cell holds a rune and a StyleKey. Keys are resolved at render time
// through a Styler, usually a Palette filled while the frame is drawn.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: defaultStyle}
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// Get returns the cell at (x, y).
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.Cells[y][x], true
}

// SetString writes s from (x, y), one column per rune. Runes that fall
// outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	for _, ch := range s {
		b.Set(x, y, ch, style)
		x++
	}
}

// SetCentered writes s centered in the w columns starting at x. Text wider
// than w is cut.
func (b *Buffer) SetCentered(x, y, w int, s string, style StyleKey) {
	rs := []rune(s)
	if w <= 0 {
		return
	}
	if len(rs) > w {
		rs = rs[:w]
	}
	b.SetString(x+(w-len(rs))/2, y, string(rs), style)
}

// FillRect paints the w×h rectangle at (x, y) with ch.
func (b *Buffer) FillRect(x, y, w, h int, ch rune, style StyleKey) {
	for r := y; r < y+h; r++ {
		for c := x; c < x+w; c++ {
			b.Set(c, r, ch, style)
		}
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}
