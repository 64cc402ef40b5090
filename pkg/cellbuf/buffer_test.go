package cellbuf

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	testBG   StyleKey = 0
	testRed  StyleKey = 1
	testBlue StyleKey = 2
)

func testStyles() StyleMap {
	return StyleMap{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

func TestNewSizes(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
		wantRender string
	}{
		{"canvas", 3, 2, 3, 2, "   \n   "},
		{"zero width", 0, 4, 0, 4, ""},
		{"zero height", 4, 0, 4, 0, ""},
		{"negative", -2, -1, 0, 0, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.w, tc.h, testBG)
			if b.W != tc.wantW || b.H != tc.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", b.W, b.H, tc.wantW, tc.wantH)
			}
			if got := b.Render(StyleMap{}); got != tc.wantRender {
				t.Errorf("render = %q, want %q", got, tc.wantRender)
			}
		})
	}
}

func TestSetGetClipsToBounds(t *testing.T) {
	b := New(4, 3, testBG)
	// a handle marker half off the canvas
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {3, 2}} {
		b.Set(p[0], p[1], '■', testRed)
	}
	if c, ok := b.Get(3, 2); !ok || c.Ch != '■' || c.Style != testRed {
		t.Errorf("Get(3,2) = %v, %v", c, ok)
	}
	if _, ok := b.Get(4, 0); ok {
		t.Error("Get past the right edge should report false")
	}
	marked := 0
	for y := range b.H {
		for x := range b.W {
			if b.Cells[y][x].Ch == '■' {
				marked++
			}
		}
	}
	if marked != 1 {
		t.Errorf("%d cells marked, want 1", marked)
	}
}

func TestSetStringClipsLabel(t *testing.T) {
	b := New(8, 1, testBG)
	b.SetString(5, 0, "[IO]", testRed)
	if got := rowString(b, 0); got != "     [IO" {
		t.Errorf("got %q", got)
	}
	b.SetString(-2, 0, "xxab", testBlue)
	if got := rowString(b, 0); got != "ab   [IO" {
		t.Errorf("negative x: got %q", got)
	}
}

func TestSetCentered(t *testing.T) {
	tests := []struct {
		name string
		x, w int
		text string
		want string
	}{
		{"even", 0, 10, "ab", "    ab    "},
		{"odd slack", 0, 9, "ab", "   ab     "},
		{"cut", 2, 3, "abcdef", "  abc     "},
		{"exact", 0, 10, "START-NODE", "START-NODE"},
		{"no room", 0, 0, "x", "          "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(10, 1, testBG)
			b.SetCentered(tc.x, 0, tc.w, tc.text, testRed)
			if got := rowString(b, 0); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFillRectShapeInterior(t *testing.T) {
	b := New(5, 4, testBG)
	b.FillRect(1, 1, 3, 2, ' ', testBlue)
	b.FillRect(4, 3, 5, 5, '#', testRed)
	want := []string{"     ", "     ", "     ", "    #"}
	for y, w := range want {
		if got := rowString(b, y); got != w {
			t.Errorf("row %d: got %q, want %q", y, got, w)
		}
	}
	if c, _ := b.Get(2, 2); c.Style != testBlue {
		t.Errorf("interior style = %d", c.Style)
	}
	if c, _ := b.Get(0, 0); c.Style != testBG {
		t.Errorf("outside style = %d", c.Style)
	}
}

func TestFillResetsFrame(t *testing.T) {
	b := New(3, 2, testBG)
	b.SetString(0, 0, "abc", testRed)
	b.Fill(testBlue)
	for y := range b.H {
		for x := range b.W {
			if c := b.Cells[y][x]; c.Ch != ' ' || c.Style != testBlue {
				t.Fatalf("cell (%d,%d) = %v", x, y, c)
			}
		}
	}
}

func TestRuns(t *testing.T) {
	b := New(7, 1, testBG)
	b.SetString(1, 0, "──", testRed)
	b.Set(3, 0, '►', testRed)
	b.Set(5, 0, '·', testBlue)
	want := []Run{
		{X: 0, Text: " ", Style: testBG},
		{X: 1, Text: "──►", Style: testRed},
		{X: 4, Text: " ", Style: testBG},
		{X: 5, Text: "·", Style: testBlue},
		{X: 6, Text: " ", Style: testBG},
	}
	got := b.Runs(0)
	if len(got) != len(want) {
		t.Fatalf("runs = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if b.Runs(1) != nil || b.Runs(-1) != nil {
		t.Error("rows outside the buffer should have no runs")
	}
}

func TestPaletteInternsInks(t *testing.T) {
	p := NewPalette("#00d4a0", "#0a0a0a")
	if p.Len() != 1 {
		t.Fatalf("new palette has %d inks", p.Len())
	}
	if k := p.Key(Ink{FG: "#00d4a0", BG: "#0a0a0a"}); k != 0 {
		t.Errorf("explicit default ink = %d, want 0", k)
	}
	sel := p.Key(Ink{FG: "#ffcc00", Bold: true})
	if sel != 1 {
		t.Errorf("first new ink = %d, want 1", sel)
	}
	if k := p.Key(Ink{FG: "#ffcc00", Bold: true}); k != sel {
		t.Errorf("same ink got a new key %d", k)
	}
	if k := p.Key(Ink{FG: "#ffcc00"}); k == sel {
		t.Error("weight should be part of the ink")
	}
	if _, ok := p.Style(StyleKey(p.Len())); ok {
		t.Error("unassigned key should not resolve")
	}
	if _, ok := p.Style(-1); ok {
		t.Error("negative key should not resolve")
	}
}

func TestRenderWithPalette(t *testing.T) {
	p := NewPalette("#00d4a0", "#0a0a0a")
	b := New(6, 2, 0)
	b.SetString(1, 1, "END", p.Key(Ink{FG: "#88ffbb", Bold: true}))
	lines := strings.Split(b.Render(p), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "END") {
		t.Errorf("label missing from %q", lines[1])
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, testBG).Render(styles)

	b := New(50, 1, testBG)
	for x := range 50 {
		k := testRed
		if x%2 == 1 {
			k = testBlue
		}
		b.Set(x, 0, '.', k)
	}
	alternating := b.Render(styles)
	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderUnknownKeyIsPlain(t *testing.T) {
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	if got := b.Render(testStyles()); got != "plain" {
		t.Errorf("got %q, want plain text", got)
	}
}

// BenchmarkRenderCanvas draws a frame like the editor does: grid dots, two
// boxes and one connector.
func BenchmarkRenderCanvas(b *testing.B) {
	p := NewPalette("#00d4a0", "#0a0a0a")
	grid := p.Key(Ink{FG: "#1a3a1a"})
	box := p.Key(Ink{FG: "#44ff88"})
	label := p.Key(Ink{FG: "#88ffbb", Bold: true})
	buf := New(150, 40, 0)
	for y := 0; y < 40; y += 2 {
		for x := 0; x < 150; x += 4 {
			buf.Set(x, y, '·', grid)
		}
	}
	buf.Box(10, 5, 22, 3, lipgloss.RoundedBorder(), box)
	buf.SetCentered(11, 6, 20, "START", label)
	buf.Box(60, 20, 22, 3, lipgloss.NormalBorder(), box)
	buf.SetCentered(61, 21, 20, "x = x + 1", label)
	for x := 32; x < 60; x++ {
		buf.Set(x, 6, '─', box)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(p)
	}
}
