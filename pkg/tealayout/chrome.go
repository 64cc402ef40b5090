package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer creates a Layer for a toolbar at the top of the screen.
func ToolbarLayer(content string, width int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(0).Z(0).ID("toolbar")
}

// FooterLayer creates a Layer for a footer at a given y position.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(0).ID("footer")
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(0).ID("separator")
}

// ModalLayer creates a centered high-Z overlay Layer.
// The content is rendered inside boxStyle, then centered on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	w := lipgloss.Width(rendered)
	h := lipgloss.Height(rendered)
	cx := (termW - w) / 2
	cy := (termH - h) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer filled with the given style at a region's position.
// Useful for creating background layers that fill a layout region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// PadLine right-pads an already styled line with fill up to width.
func PadLine(s string, width int, fill lipgloss.Style) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += fill.Render(strings.Repeat(" ", pad))
	}
	return s
}

// Section is a titled block of a side panel. A zero Height takes whatever
// rows the sections before it left over.
type Section struct {
	ID     string
	Title  string
	Lines  []string
	Height int
}

// PanelStyles colour the parts of a Section.
type PanelStyles struct {
	Title lipgloss.Style
	Rule  lipgloss.Style
	Fill  lipgloss.Style
}

// SectionLayers stacks sections top to bottom inside r, one layer per
// section. Lines past a section's height are dropped from the top so the
// newest entries of a log stay visible.
func SectionLayers(r Region, sections []Section, st PanelStyles, z int) []*lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	y := r.Rect.Min.Y
	var layers []*lipgloss.Layer
	for _, sec := range sections {
		left := r.Rect.Max.Y - y
		if left <= 0 {
			break
		}
		height := sec.Height
		if height <= 0 || height > left {
			height = left
		}
		lines := []string{st.Title.Render(sec.Title), st.Rule.Render(strings.Repeat("─", max(w-1, 0)))}
		body := sec.Lines
		if room := height - len(lines); len(body) > room {
			body = body[len(body)-max(room, 0):]
		}
		lines = append(lines, body...)
		for len(lines) < height {
			lines = append(lines, "")
		}
		lines = lines[:height]
		for i, l := range lines {
			lines[i] = PadLine(l, w, st.Fill)
		}
		layers = append(layers, lipgloss.NewLayer(strings.Join(lines, "\n")).
			X(r.Rect.Min.X).Y(y).Z(z).ID(sec.ID))
		y += height
	}
	return layers
}
