package interaction

import (
	"strings"

	"github.com/wesen/diagrail/pkg/geom"
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in x is held.
func (m Modifiers) Has(x Modifiers) bool { return m&x == x }

// toggles reports whether the modifiers turn a click into a selection toggle.
func (m Modifiers) toggles() bool { return m&(ModShift|ModCtrl|ModMeta) != 0 }

// command reports whether ctrl or cmd is held.
func (m Modifiers) command() bool { return m&(ModCtrl|ModMeta) != 0 }

func (m Modifiers) String() string {
	var parts []string
	for _, p := range []struct {
		mod  Modifiers
		name string
	}{{ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModMeta, "meta"}, {ModShift, "shift"}} {
		if m.Has(p.mod) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "+")
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// PointerEvent is a press, move or release in world coordinates.
type PointerEvent struct {
	Pos    geom.Point
	Button Button
	Mods   Modifiers
}

// KeyEvent is a key press. Key is a lower-case key name such as "z",
// "delete", "backspace" or "escape".
type KeyEvent struct {
	Key  string
	Mods Modifiers
}

// Pointer is shorthand for a left-button event at (x, y).
func Pointer(x, y float64, mods ...Modifiers) PointerEvent {
	ev := PointerEvent{Pos: geom.Pt(x, y)}
	for _, m := range mods {
		ev.Mods |= m
	}
	return ev
}
