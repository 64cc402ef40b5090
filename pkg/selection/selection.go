// Package selection tracks which shapes and connections are selected.
package selection

import (
	"slices"

	"github.com/wesen/diagrail/pkg/diagram"
)

// Ref names one selected entity.
type Ref struct {
	Kind diagram.Kind
	ID   string
}

// Set is an ordered selection of shapes and connections with a primary
// entry. The primary is the last entity explicitly clicked; it is the one
// that shows resize or endpoint handles.
type Set struct {
	shapes      []string
	connections []string
	primary     *Ref
	onChange    []func()
}

// New creates an empty selection.
func New() *Set {
	return &Set{}
}

// Attach keeps the selection in step with model removals: a removed entity
// leaves the selection inside the same RemoveShape/RemoveConnection call.
func (s *Set) Attach(m *diagram.Model) {
	m.OnRemove(func(kind diagram.Kind, id string) {
		s.drop(kind, id)
	})
}

// OnChange registers a callback fired after every change.
func (s *Set) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Set) changed() {
	for _, fn := range s.onChange {
		fn()
	}
}

// SelectShape replaces the selection with a single shape.
func (s *Set) SelectShape(id string) {
	s.shapes = []string{id}
	s.connections = nil
	s.primary = &Ref{Kind: diagram.KindShape, ID: id}
	s.changed()
}

// SelectConnection replaces the selection with a single connection.
func (s *Set) SelectConnection(id string) {
	s.shapes = nil
	s.connections = []string{id}
	s.primary = &Ref{Kind: diagram.KindConnection, ID: id}
	s.changed()
}

// AddShape adds a shape to the selection and makes it primary.
func (s *Set) AddShape(id string) {
	if !slices.Contains(s.shapes, id) {
		s.shapes = append(s.shapes, id)
	}
	s.primary = &Ref{Kind: diagram.KindShape, ID: id}
	s.changed()
}

// ToggleShape adds the shape if absent and removes it if present. It
// reports whether the shape is selected afterwards.
func (s *Set) ToggleShape(id string) bool {
	if slices.Contains(s.shapes, id) {
		s.drop(diagram.KindShape, id)
		return false
	}
	s.AddShape(id)
	return true
}

// Clear empties the selection.
func (s *Set) Clear() {
	if s.Empty() {
		return
	}
	s.shapes, s.connections, s.primary = nil, nil, nil
	s.changed()
}

// Empty reports whether nothing is selected.
func (s *Set) Empty() bool {
	return len(s.shapes) == 0 && len(s.connections) == 0
}

// Shapes returns the selected shape ids in selection order.
func (s *Set) Shapes() []string { return slices.Clone(s.shapes) }

// Connections returns the selected connection ids in selection order.
func (s *Set) Connections() []string { return slices.Clone(s.connections) }

// HasShape reports whether a shape is selected.
func (s *Set) HasShape(id string) bool { return slices.Contains(s.shapes, id) }

// HasConnection reports whether a connection is selected.
func (s *Set) HasConnection(id string) bool { return slices.Contains(s.connections, id) }

// Primary returns the primary entry.
func (s *Set) Primary() (Ref, bool) {
	if s.primary == nil {
		return Ref{}, false
	}
	return *s.primary, true
}

// PrimaryShape returns the primary entry's id when it is a shape.
func (s *Set) PrimaryShape() (string, bool) {
	if s.primary == nil || s.primary.Kind != diagram.KindShape {
		return "", false
	}
	return s.primary.ID, true
}

// PrimaryConnection returns the primary entry's id when it is a connection.
func (s *Set) PrimaryConnection() (string, bool) {
	if s.primary == nil || s.primary.Kind != diagram.KindConnection {
		return "", false
	}
	return s.primary.ID, true
}

// Prune drops every entry that no longer exists in m.
func (s *Set) Prune(m *diagram.Model) {
	for _, id := range s.Shapes() {
		if _, ok := m.Shape(id); !ok {
			s.drop(diagram.KindShape, id)
		}
	}
	for _, id := range s.Connections() {
		if _, ok := m.Connection(id); !ok {
			s.drop(diagram.KindConnection, id)
		}
	}
}

func (s *Set) drop(kind diagram.Kind, id string) {
	var list *[]string
	if kind == diagram.KindShape {
		list = &s.shapes
	} else {
		list = &s.connections
	}
	i := slices.Index(*list, id)
	if i < 0 {
		return
	}
	*list = slices.Delete(*list, i, i+1)
	if s.primary != nil && s.primary.Kind == kind && s.primary.ID == id {
		s.primary = s.fallbackPrimary()
	}
	s.changed()
}

// fallbackPrimary picks the most recently added survivor.
func (s *Set) fallbackPrimary() *Ref {
	if n := len(s.shapes); n > 0 {
		return &Ref{Kind: diagram.KindShape, ID: s.shapes[n-1]}
	}
	if n := len(s.connections); n > 0 {
		return &Ref{Kind: diagram.KindConnection, ID: s.connections[n-1]}
	}
	return nil
}
