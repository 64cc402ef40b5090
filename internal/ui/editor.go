package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/tealayout"
)

const labelLimit = 40

// labelEditor is the inline text editor: a modal textinput over the
// canvas. Enter hands the value to commit; escape drops it.
type labelEditor struct {
	open    bool
	shapeID string
	field   string
	title   string
	input   textinput.Model
	pending tea.Cmd
	commit  func(shapeID, field, value string)
}

// StartEditing implements interaction.TextEditor.
func (e *labelEditor) StartEditing(sh *diagram.Shape, field string) {
	e.open = true
	e.shapeID = sh.ID
	e.field = field
	e.title = fmt.Sprintf("%s %s", sh.Type, sh.ID)
	e.input = textinput.New()
	e.input.Prompt = ""
	e.input.CharLimit = labelLimit
	e.input.SetValue(sh.Prop(field))
	e.pending = e.input.Focus()
}

// takeCmd returns the focus command of a freshly opened editor once.
func (e *labelEditor) takeCmd() tea.Cmd {
	cmd := e.pending
	e.pending = nil
	return cmd
}

func (e *labelEditor) close() {
	e.open = false
	e.input.Blur()
}

// handleKey processes a key while the editor is open.
func (e *labelEditor) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "escape":
		e.close()
		return nil
	case "enter":
		value := strings.TrimSpace(e.input.Value())
		e.close()
		if e.commit != nil {
			e.commit(e.shapeID, e.field, value)
		}
		return nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// layer renders the editor as a centered modal.
func (e *labelEditor) layer(screenW, screenH int) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(c(hexText)).
		Background(c(hexToolbarBG)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(c(hexWarn)).
		Background(c(hexToolbarBG))

	hintStyle := lipgloss.NewStyle().
		Foreground(c(hexPanelDim)).
		Background(c(hexToolbarBG)).
		Italic(true)

	lines := []string{
		titleStyle.Render("  EDIT  " + strings.ToUpper(e.title)),
		"",
		labelStyle.Render("▸ " + e.field + ":"),
		"  " + e.input.View(),
		"",
		hintStyle.Render("  [enter] save  [esc] cancel"),
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c(hexStroke)).
		Background(c(hexToolbarBG)).
		Width(52).
		Padding(1, 2)

	return tealayout.ModalLayer(strings.Join(lines, "\n"), screenW, screenH, boxStyle)
}
