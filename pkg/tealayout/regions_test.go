package tealayout

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLayoutBasic(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("toolbar", 3).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	if l.Size != image.Pt(80, 24) {
		t.Fatalf("term size: expected 80x24, got %v", l.Size)
	}

	tb := l.Get("toolbar")
	if tb.Rect != image.Rect(0, 0, 80, 3) {
		t.Errorf("toolbar: expected (0,0)-(80,3), got %v", tb.Rect)
	}

	ft := l.Get("footer")
	if ft.Rect != image.Rect(0, 23, 80, 24) {
		t.Errorf("footer: expected (0,23)-(80,24), got %v", ft.Rect)
	}

	pn := l.Get("panel")
	if pn.Rect != image.Rect(46, 3, 80, 23) {
		t.Errorf("panel: expected (46,3)-(80,23), got %v", pn.Rect)
	}

	cv := l.Get("canvas")
	if cv.Rect != image.Rect(0, 3, 46, 23) {
		t.Errorf("canvas: expected (0,3)-(46,23), got %v", cv.Rect)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		Remaining("full").
		Build()

	r := l.Get("full")
	if r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutZeroSize(t *testing.T) {
	l := NewLayoutBuilder(0, 0).
		TopFixed("toolbar", 3).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// With 0-height terminal and 3 rows consumed from top, remaining is negative → clamped to zero
	if cv.Rect.Dx() != 0 || cv.Rect.Dy() != 0 {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("toolbar", 3).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	regions := []Region{
		l.Get("toolbar"),
		l.Get("footer"),
		l.Get("panel"),
		l.Get("canvas"),
	}

	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			ri, rj := regions[i], regions[j]
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestLayoutCanvasDimensions(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("toolbar", 3).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// 80 - 34 = 46 wide, 24 - 3 - 1 = 20 tall
	if cv.Rect.Dx() != 46 || cv.Rect.Dy() != 20 {
		t.Errorf("canvas dims: expected 46x20, got %dx%d", cv.Rect.Dx(), cv.Rect.Dy())
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Build()
	r := l.Get("missing")
	if r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("test content", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	// Should be roughly centered
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "test", Rect: image.Rect(10, 5, 30, 15)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#080e0b"))
	layer := FillLayer(r, style, "bg", 0)

	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestFillLayerEmpty(t *testing.T) {
	r := Region{Name: "empty", Rect: image.Rectangle{}}
	style := lipgloss.NewStyle()
	layer := FillLayer(r, style, "bg", 0)
	// Should not panic, returns empty layer
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}

func TestRegionContainsAndLocal(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(0, 1, 46, 23)}
	if !r.Contains(image.Pt(10, 1)) {
		t.Error("top row should be inside")
	}
	if r.Contains(image.Pt(46, 5)) {
		t.Error("max column is exclusive")
	}
	if got := r.Local(image.Pt(10, 5)); got != image.Pt(10, 4) {
		t.Errorf("local: expected (10,4), got %v", got)
	}
}

func editorLayout(w, h int) Layout {
	return NewLayoutBuilder(w, h).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		RightFixed("separator", 1).
		Remaining("canvas").
		Build()
}

func TestLayoutLocate(t *testing.T) {
	l := editorLayout(120, 40)
	tests := []struct {
		name       string
		region     string
		p          image.Point
		wantLocal  image.Point
		wantInside bool
	}{
		{"canvas origin", "canvas", image.Pt(0, 1), image.Pt(0, 0), true},
		{"canvas interior", "canvas", image.Pt(30, 11), image.Pt(30, 10), true},
		{"toolbar row is not canvas", "canvas", image.Pt(30, 0), image.Pt(30, -1), false},
		{"separator column is not canvas", "canvas", image.Pt(85, 5), image.Pt(85, 4), false},
		{"panel", "panel", image.Pt(90, 3), image.Pt(4, 2), true},
		{"missing region", "nope", image.Pt(3, 3), image.Pt(3, 3), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			local, inside := l.Locate(tc.region, tc.p)
			if local != tc.wantLocal || inside != tc.wantInside {
				t.Errorf("Locate(%q, %v) = %v, %v; want %v, %v",
					tc.region, tc.p, local, inside, tc.wantLocal, tc.wantInside)
			}
		})
	}
}

func TestLayoutClampsOversizedRegions(t *testing.T) {
	l := editorLayout(20, 2)
	if got := l.Get("panel").Rect; got != (image.Rectangle{}) {
		t.Errorf("panel with no rows left: expected empty, got %v", got)
	}
	if got := l.Get("footer").Rect; got != image.Rect(0, 1, 20, 2) {
		t.Errorf("footer: got %v", got)
	}
	if got := l.Get("canvas").Rect; got != (image.Rectangle{}) {
		t.Errorf("canvas: expected empty, got %v", got)
	}

	l = editorLayout(30, 10)
	if got := l.Get("panel").Rect; got != image.Rect(0, 1, 30, 9) {
		t.Errorf("narrow terminal panel: got %v", got)
	}
	if got := l.Get("separator").Rect; got != (image.Rectangle{}) {
		t.Errorf("separator with no columns left: got %v", got)
	}
}

func TestSectionLayers(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(50, 1, 80, 21)}
	st := PanelStyles{Title: lipgloss.NewStyle(), Rule: lipgloss.NewStyle(), Fill: lipgloss.NewStyle()}
	layers := SectionLayers(r, []Section{
		{ID: "tools", Title: "TOOLS", Lines: []string{"a", "b"}, Height: 6},
		{ID: "history", Title: "HISTORY", Lines: []string{"1", "2", "3", "4", "5"}, Height: 5},
		{ID: "props", Title: "PROPS"},
	}, st, 1)
	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}
	if layers[1].GetY() != 7 || layers[2].GetY() != 12 {
		t.Errorf("stacking: got y=%d and y=%d", layers[1].GetY(), layers[2].GetY())
	}
	hist := strings.Split(layers[1].GetContent(), "\n")
	if len(hist) != 5 {
		t.Fatalf("history height: expected 5 lines, got %d", len(hist))
	}
	if strings.TrimSpace(hist[2]) != "3" || strings.TrimSpace(hist[4]) != "5" {
		t.Errorf("history should keep the newest lines, got %q", hist)
	}
	props := strings.Split(layers[2].GetContent(), "\n")
	if len(props) != 9 {
		t.Errorf("last section should fill the rest: got %d lines", len(props))
	}
	for _, l := range props {
		if lipgloss.Width(l) != 30 {
			t.Errorf("line not padded to panel width: %q", l)
		}
	}
}

func TestSectionLayersOverflow(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(0, 0, 10, 4)}
	layers := SectionLayers(r, []Section{
		{ID: "a", Title: "A", Height: 3},
		{ID: "b", Title: "B", Height: 3},
		{ID: "c", Title: "C", Height: 3},
	}, PanelStyles{Title: lipgloss.NewStyle(), Rule: lipgloss.NewStyle(), Fill: lipgloss.NewStyle()}, 1)
	if len(layers) != 2 {
		t.Fatalf("expected the third section to be dropped, got %d layers", len(layers))
	}
	if n := len(strings.Split(layers[1].GetContent(), "\n")); n != 1 {
		t.Errorf("second section should be clipped to 1 row, got %d", n)
	}
}
