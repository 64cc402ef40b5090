package cellbuf

import (
	"charm.land/lipgloss/v2"
)

// Box draws the outline of the w×h rectangle at (x, y) with the runes of a
// lipgloss border. Boxes narrower or shorter than two cells collapse to a
// line of the border's edge rune.
func (b *Buffer) Box(x, y, w, h int, border lipgloss.Border, style StyleKey) {
	if w <= 0 || h <= 0 {
		return
	}
	top, bottom := first(border.Top, '─'), first(border.Bottom, '─')
	left, right := first(border.Left, '│'), first(border.Right, '│')
	if h == 1 {
		for c := x; c < x+w; c++ {
			b.Set(c, y, top, style)
		}
		return
	}
	if w == 1 {
		for r := y; r < y+h; r++ {
			b.Set(x, r, left, style)
		}
		return
	}
	x1, y1 := x+w-1, y+h-1
	for c := x + 1; c < x1; c++ {
		b.Set(c, y, top, style)
		b.Set(c, y1, bottom, style)
	}
	for r := y + 1; r < y1; r++ {
		b.Set(x, r, left, style)
		b.Set(x1, r, right, style)
	}
	b.Set(x, y, first(border.TopLeft, '┌'), style)
	b.Set(x1, y, first(border.TopRight, '┐'), style)
	b.Set(x, y1, first(border.BottomLeft, '└'), style)
	b.Set(x1, y1, first(border.BottomRight, '┘'), style)
}

func first(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
