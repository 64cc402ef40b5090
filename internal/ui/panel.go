package ui

import (
	"fmt"
	"maps"
	"slices"

	"github.com/wesen/diagrail/pkg/tealayout"
)

const (
	toolsHeight   = 10
	historyHeight = 10
)

// panelSections builds the side panel: tool bindings, the command history
// and the properties of the selection.
func (m Model) panelSections(height int) []tealayout.Section {
	return []tealayout.Section{
		{ID: "panel-tools", Title: "TOOLS", Lines: m.toolLines(), Height: min(toolsHeight, height/3)},
		{ID: "panel-history", Title: "HISTORY", Lines: m.historyLines(), Height: min(historyHeight, height/3)},
		{ID: "panel-selection", Title: "SELECTION", Lines: m.selectionLines()},
	}
}

func (m Model) toolLines() []string {
	km := m.ctrl.Keymap()
	current := m.ctrl.Tool()
	var lines []string
	for _, k := range km.Keys() {
		t := km[k]
		marker := "  "
		if t == current {
			marker = "▸ "
		}
		lines = append(lines, panelKeyStyle.Render(fmt.Sprintf("%s[%s]", marker, k))+
			panelTextStyle.Render(" "+t.String()))
	}
	return lines
}

func (m Model) historyLines() []string {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return []string{panelDimStyle.Render("  (empty)")}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Done {
			lines = append(lines, panelTextStyle.Render("  "+e.Description))
		} else {
			lines = append(lines, panelDimStyle.Render("  "+e.Description))
		}
	}
	return lines
}

func (m Model) selectionLines() []string {
	if id, ok := m.sel.PrimaryShape(); ok {
		sh, ok := m.diagram.Shape(id)
		if !ok {
			return nil
		}
		r := sh.Frame
		lines := []string{
			propLine("id", sh.ID),
			propLine("type", sh.Type),
			propLine("bounds", fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)),
		}
		for _, k := range slices.Sorted(maps.Keys(sh.Props)) {
			lines = append(lines, propLine(k, sh.Props[k]))
		}
		if n := len(m.sel.Shapes()); n > 1 {
			lines = append(lines, panelDimStyle.Render(fmt.Sprintf("  +%d more", n-1)))
		}
		return lines
	}
	if id, ok := m.sel.PrimaryConnection(); ok {
		conn, ok := m.diagram.Connection(id)
		if !ok {
			return nil
		}
		return []string{
			propLine("id", conn.ID),
			propLine("type", conn.Type),
			propLine("from", fmt.Sprintf("%s (%s)", conn.Source, conn.SourceSide)),
			propLine("to", fmt.Sprintf("%s (%s)", conn.Target, conn.TargetSide)),
		}
	}
	return []string{panelDimStyle.Render("  (none)")}
}

func propLine(k, v string) string {
	return panelKeyStyle.Render("  "+k) + panelDimStyle.Render(" = ") + panelTextStyle.Render(v)
}
