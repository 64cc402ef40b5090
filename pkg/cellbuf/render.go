package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Styler resolves a StyleKey at render time. Keys it does not know render
// as plain text.
type Styler interface {
	Style(k StyleKey) (lipgloss.Style, bool)
}

// StyleMap is a fixed Styler.
type StyleMap map[StyleKey]lipgloss.Style

func (m StyleMap) Style(k StyleKey) (lipgloss.Style, bool) {
	s, ok := m[k]
	return s, ok
}

// Ink is a foreground/background pair with weight. Empty colours fall back
// to the palette defaults.
type Ink struct {
	FG, BG string
	Bold   bool
}

// Palette interns inks as style keys while a frame is drawn, so callers
// with open-ended colour sets (plugin styles) need no fixed key table.
// Key 0 is always the default ink.
type Palette struct {
	fg, bg string
	keys   map[Ink]StyleKey
	styles []lipgloss.Style
}

// NewPalette creates a palette whose key 0 is fg on bg.
func NewPalette(fg, bg string) *Palette {
	p := &Palette{fg: fg, bg: bg, keys: make(map[Ink]StyleKey)}
	p.Key(Ink{})
	return p
}

// Key returns the style key of ink, assigning the next free key on first
// use.
func (p *Palette) Key(ink Ink) StyleKey {
	if ink.FG == "" {
		ink.FG = p.fg
	}
	if ink.BG == "" {
		ink.BG = p.bg
	}
	if k, ok := p.keys[ink]; ok {
		return k
	}
	k := StyleKey(len(p.styles))
	p.keys[ink] = k
	p.styles = append(p.styles, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ink.FG)).
		Background(lipgloss.Color(ink.BG)).
		Bold(ink.Bold))
	return k
}

// Len is the number of interned inks.
func (p *Palette) Len() int { return len(p.styles) }

func (p *Palette) Style(k StyleKey) (lipgloss.Style, bool) {
	if k < 0 || int(k) >= len(p.styles) {
		return lipgloss.Style{}, false
	}
	return p.styles[k], true
}

// Run is a horizontal stretch of cells sharing one style.
type Run struct {
	X     int
	Text  string
	Style StyleKey
}

// Runs splits row y into maximal same-style runs.
func (b *Buffer) Runs(y int) []Run {
	if y < 0 || y >= b.H || b.W == 0 {
		return nil
	}
	row := b.Cells[y]
	var out []Run
	var text []rune
	start := 0
	for x, c := range row {
		if x > 0 && c.Style != row[start].Style {
			out = append(out, Run{X: start, Text: string(text), Style: row[start].Style})
			text, start = text[:0], x
		}
		text = append(text, c.Ch)
	}
	return append(out, Run{X: start, Text: string(text), Style: row[start].Style})
}

// Render draws the buffer as newline-joined rows, one Style.Render call per
// run. An empty buffer renders as "".
func (b *Buffer) Render(st Styler) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	var sb strings.Builder
	for y := range b.H {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range b.Runs(y) {
			if s, ok := st.Style(r.Style); ok {
				sb.WriteString(s.Render(r.Text))
			} else {
				sb.WriteString(r.Text)
			}
		}
	}
	return sb.String()
}
