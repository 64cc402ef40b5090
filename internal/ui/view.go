package ui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/diagrail/internal/interaction"
	"github.com/wesen/diagrail/pkg/tealayout"
)

const (
	regionToolbar   = "toolbar"
	regionFooter    = "footer"
	regionPanel     = "panel"
	regionSeparator = "separator"
	regionCanvas    = "canvas"
)

// layout splits the terminal: toolbar(1) + footer(1) + panel + separator
// + canvas(remaining).
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed(regionToolbar, 1).
		BottomFixed(regionFooter, 1).
		RightFixed(regionPanel, panelWidth).
		RightFixed(regionSeparator, 1).
		Remaining(regionCanvas).
		Build()
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get(regionCanvas)
	panelRegion := layout.Get(regionPanel)
	sepRegion := layout.Get(regionSeparator)

	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		tealayout.FillLayer(layout.Get(regionToolbar), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(panelRegion, panelFill, "panel-bg", 0),
		tealayout.FillLayer(layout.Get(regionFooter), ftStyle, "footer-bg", 0),
	)

	layers = append(layers,
		tealayout.ToolbarLayer(m.toolbarText(), m.Width, tbStyle),
		tealayout.FooterLayer(m.footerText(), m.Width, m.Height-1, m.footerStyle()),
		buildCanvasLayer(m, canvasRegion.Rect),
	)

	if sepRegion.Rect.Dy() > 0 {
		layers = append(layers, tealayout.VerticalSeparator(sepRegion.Rect.Min.X, sepRegion.Rect.Min.Y,
			sepRegion.Rect.Dy(), panelSepStyle))
	}
	layers = append(layers, tealayout.SectionLayers(panelRegion, m.panelSections(panelRegion.Rect.Dy()),
		tealayout.PanelStyles{Title: panelTitleStyle, Rule: panelDimStyle, Fill: panelFill}, 1)...)

	if m.editor.open {
		layers = append(layers, m.editor.layer(m.Width, m.Height))
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) toolbarText() string {
	return fmt.Sprintf(" diagrail  │  %s  │  tool: %s  │  %s  │  ←↑↓→ pan  [enter] edit  [q]uit",
		m.plugin.Name(), m.ctrl.Tool(), m.ctrl.Mode())
}

func (m Model) footerText() string {
	local, _ := m.layout().Locate(regionCanvas, image.Pt(m.MouseX, m.MouseY))
	world := m.cam.ToWorld(local)
	text := fmt.Sprintf(" (%g,%g)  shapes: %d  connections: %d  history: %d/%d",
		world.X, world.Y, len(m.diagram.Shapes()), len(m.diagram.Connections()),
		m.history.Cursor(), m.history.Len())
	if d, ok := m.status.last(); ok {
		text += fmt.Sprintf("  │  %s: %s", d.Level, d.Message)
	}
	return text
}

func (m Model) footerStyle() lipgloss.Style {
	d, ok := m.status.last()
	if !ok {
		return ftStyle
	}
	switch d.Level {
	case interaction.LevelWarn:
		return ftStyle.Foreground(c(hexWarn))
	case interaction.LevelError:
		return ftStyle.Foreground(c(hexError))
	}
	return ftStyle
}
