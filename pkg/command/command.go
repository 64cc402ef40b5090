// Package command defines undoable diagram mutations and the history that
// executes, records, rewinds and replays them.
//
// Every command stores absolute before/after values rather than deltas, so
// Revert restores exactly what Apply replaced.
package command

import (
	"errors"

	"github.com/wesen/diagrail/pkg/diagram"
)

// ErrNotApplied is returned when Revert runs on a command whose Apply never
// captured anything to revert.
var ErrNotApplied = errors.New("command was not applied")

// Kind tags the concrete command type.
type Kind string

const (
	KindAddShape          Kind = "add-shape"
	KindRemoveShape       Kind = "remove-shape"
	KindMoveShapes        Kind = "move-shapes"
	KindAddConnection     Kind = "add-connection"
	KindResizeShape       Kind = "resize-shape"
	KindRemoveConnection  Kind = "remove-connection"
	KindReconnectEndpoint Kind = "reconnect-endpoint"
	KindSetProperty       Kind = "set-property"
)

// Command is one undoable mutation of a diagram.Model.
type Command interface {
	Kind() Kind
	// Apply performs the forward mutation.
	Apply(m *diagram.Model) error
	// Revert undoes a previous Apply.
	Revert(m *diagram.Model) error
	// Description is a short human-readable summary for history panels.
	Description() string
}
