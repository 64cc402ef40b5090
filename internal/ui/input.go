package ui

import (
	"image"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/diagrail/internal/interaction"
	"github.com/wesen/diagrail/pkg/diagram"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyPressMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKeys processes keyboard input. The editor, when open, takes every
// key; otherwise quitting, panning and label editing are handled here and
// the rest goes to the controller.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.editor.open {
		return m, m.editor.handleKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning
	case "up":
		m.cam.Step(0, -panStep)
		return m, nil
	case "down":
		m.cam.Step(0, panStep)
		return m, nil
	case "left":
		m.cam.Step(-panStep, 0)
		return m, nil
	case "right":
		m.cam.Step(panStep, 0)
		return m, nil

	case "enter":
		m.editPrimary()
		return m, m.editor.takeCmd()
	}

	m.ctrl.Key(keyEvent(msg.Key()))
	return m, nil
}

// editPrimary opens the label editor on the primary selected shape.
func (m Model) editPrimary() {
	if m.ctrl.Mode() != interaction.ModeIdle {
		return
	}
	id, ok := m.sel.PrimaryShape()
	if !ok {
		return
	}
	if sh, ok := m.diagram.Shape(id); ok {
		m.editor.StartEditing(sh, diagram.LabelProp)
	}
}

// handleMouse translates mouse messages into world-space pointer events.
// Presses only count inside the canvas; motion and release always reach
// the controller so a gesture can end outside it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y
	if m.editor.open {
		return m, nil
	}

	screen := image.Pt(mouse.X, mouse.Y)
	local, inCanvas := m.layout().Locate(regionCanvas, screen)
	ev := interaction.PointerEvent{
		Pos:    m.cam.ToWorld(local),
		Button: button(mouse.Button),
		Mods:   modifiers(mouse.Mod),
	}

	switch msg.(type) {
	case tea.MouseClickMsg:
		if !inCanvas {
			return m, nil
		}
		if ev.Button == interaction.ButtonLeft && m.clicks.double(screen) {
			m.ctrl.DoubleClick(ev)
			return m, m.editor.takeCmd()
		}
		m.ctrl.PointerDown(ev)

	case tea.MouseMotionMsg:
		m.ctrl.PointerMove(ev)

	case tea.MouseReleaseMsg:
		m.ctrl.PointerUp(ev)
	}

	return m, nil
}

func button(b tea.MouseButton) interaction.Button {
	switch b {
	case tea.MouseMiddle:
		return interaction.ButtonMiddle
	case tea.MouseRight:
		return interaction.ButtonRight
	}
	// Some terminals report releases without a button.
	return interaction.ButtonLeft
}

func modifiers(k tea.KeyMod) interaction.Modifiers {
	var out interaction.Modifiers
	if k&tea.ModShift != 0 {
		out |= interaction.ModShift
	}
	if k&tea.ModCtrl != 0 {
		out |= interaction.ModCtrl
	}
	if k&tea.ModAlt != 0 {
		out |= interaction.ModAlt
	}
	if k&tea.ModMeta != 0 || k&tea.ModSuper != 0 {
		out |= interaction.ModMeta
	}
	return out
}

// keyEvent names a key the way the controller expects: lower case, no
// modifiers in the name.
func keyEvent(k tea.Key) interaction.KeyEvent {
	ev := interaction.KeyEvent{Mods: modifiers(k.Mod)}
	switch k.Code {
	case tea.KeyEscape:
		ev.Key = "escape"
	case tea.KeyDelete:
		ev.Key = "delete"
	case tea.KeyBackspace:
		ev.Key = "backspace"
	case tea.KeyEnter:
		ev.Key = "enter"
	case tea.KeyTab:
		ev.Key = "tab"
	default:
		ev.Key = strings.ToLower(string(k.Code))
	}
	return ev
}

// clickTracker detects double clicks on the same cell.
type clickTracker struct {
	now    func() time.Time
	window time.Duration
	at     time.Time
	pos    image.Point
	armed  bool
}

// double records a press at p and reports whether it completes a double
// click.
func (t *clickTracker) double(p image.Point) bool {
	now := t.now()
	if t.armed && p == t.pos && now.Sub(t.at) <= t.window {
		t.armed = false
		return true
	}
	t.at, t.pos, t.armed = now, p, true
	return false
}
