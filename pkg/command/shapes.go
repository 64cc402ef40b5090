package command

import (
	"fmt"

	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
)

// AddShape inserts a new shape on top of the z-order.
type AddShape struct {
	shape *diagram.Shape
}

// NewAddShape captures a snapshot of s.
func NewAddShape(s *diagram.Shape) *AddShape {
	return &AddShape{shape: s.Clone()}
}

func (c *AddShape) Kind() Kind { return KindAddShape }

// ShapeID returns the identity of the shape this command adds.
func (c *AddShape) ShapeID() string { return c.shape.ID }

func (c *AddShape) Apply(m *diagram.Model) error {
	return m.AddShape(c.shape.Clone())
}

func (c *AddShape) Revert(m *diagram.Model) error {
	if _, err := m.RemoveShape(c.shape.ID); err != nil {
		return fmt.Errorf("revert add %s: %w", c.shape.ID, err)
	}
	return nil
}

func (c *AddShape) Description() string {
	return fmt.Sprintf("add %s %q", c.shape.Type, c.shape.Label())
}

// RemoveShape deletes a shape together with its connections.
type RemoveShape struct {
	id      string
	removed *diagram.Removal
}

// NewRemoveShape builds a removal of the shape with the given id.
func NewRemoveShape(id string) *RemoveShape {
	return &RemoveShape{id: id}
}

func (c *RemoveShape) Kind() Kind { return KindRemoveShape }

// ShapeID returns the identity of the removed shape.
func (c *RemoveShape) ShapeID() string { return c.id }

func (c *RemoveShape) Apply(m *diagram.Model) error {
	rm, err := m.RemoveShape(c.id)
	if err != nil {
		return err
	}
	c.removed = &rm
	return nil
}

func (c *RemoveShape) Revert(m *diagram.Model) error {
	if c.removed == nil {
		return fmt.Errorf("revert remove %s: %w", c.id, ErrNotApplied)
	}
	rm := diagram.Removal{Shape: c.removed.Shape.Clone(), Index: c.removed.Index}
	for _, ic := range c.removed.Connections {
		rm.Connections = append(rm.Connections, diagram.IndexedConnection{Conn: ic.Conn.Clone(), Index: ic.Index})
	}
	if err := m.Restore(rm); err != nil {
		return err
	}
	c.removed = nil
	return nil
}

func (c *RemoveShape) Description() string {
	if c.removed != nil && len(c.removed.Connections) > 0 {
		return fmt.Sprintf("remove %s (+%d connections)", c.id, len(c.removed.Connections))
	}
	return "remove " + c.id
}

// Move is one shape's position before and after a drag.
type Move struct {
	ID       string
	From, To geom.Point
}

// MoveShapes repositions a group of shapes.
type MoveShapes struct {
	moves []Move
}

// NewMoveShapes builds a move from explicit positions.
func NewMoveShapes(moves []Move) *MoveShapes {
	return &MoveShapes{moves: append([]Move(nil), moves...)}
}

func (c *MoveShapes) Kind() Kind { return KindMoveShapes }

// Moves returns the per-shape moves.
func (c *MoveShapes) Moves() []Move { return append([]Move(nil), c.moves...) }

// Delta returns the displacement of the first moved shape.
func (c *MoveShapes) Delta() geom.Point {
	if len(c.moves) == 0 {
		return geom.Point{}
	}
	return c.moves[0].To.Sub(c.moves[0].From)
}

func (c *MoveShapes) Apply(m *diagram.Model) error {
	return c.place(m, func(mv Move) geom.Point { return mv.To })
}

func (c *MoveShapes) Revert(m *diagram.Model) error {
	return c.place(m, func(mv Move) geom.Point { return mv.From })
}

func (c *MoveShapes) place(m *diagram.Model, pick func(Move) geom.Point) error {
	shapes := make([]*diagram.Shape, len(c.moves))
	for i, mv := range c.moves {
		s, ok := m.Shape(mv.ID)
		if !ok {
			return fmt.Errorf("move %s: %w", mv.ID, diagram.ErrNotFound)
		}
		shapes[i] = s
	}
	for i, mv := range c.moves {
		shapes[i].SetPosition(pick(mv))
	}
	return nil
}

func (c *MoveShapes) Description() string {
	d := c.Delta()
	return fmt.Sprintf("move %d shape(s) by (%g,%g)", len(c.moves), d.X, d.Y)
}

// ResizeShape changes a shape's bounds.
type ResizeShape struct {
	id            string
	before, after geom.Rect
}

// NewResizeShape builds a resize between two bounds.
func NewResizeShape(id string, before, after geom.Rect) *ResizeShape {
	return &ResizeShape{id: id, before: before, after: after}
}

func (c *ResizeShape) Kind() Kind { return KindResizeShape }

// Bounds returns the before and after bounds.
func (c *ResizeShape) Bounds() (before, after geom.Rect) { return c.before, c.after }

func (c *ResizeShape) Apply(m *diagram.Model) error { return c.set(m, c.after) }

func (c *ResizeShape) Revert(m *diagram.Model) error { return c.set(m, c.before) }

func (c *ResizeShape) set(m *diagram.Model, r geom.Rect) error {
	s, ok := m.Shape(c.id)
	if !ok {
		return fmt.Errorf("resize %s: %w", c.id, diagram.ErrNotFound)
	}
	s.Frame = r
	return nil
}

func (c *ResizeShape) Description() string {
	return fmt.Sprintf("resize %s to %gx%g", c.id, c.after.Width, c.after.Height)
}

// SetProperty changes one entry of a shape's property map.
type SetProperty struct {
	id, name      string
	before, after string
	hadBefore     bool
}

// NewSetProperty captures the current value of the property on s.
func NewSetProperty(s *diagram.Shape, name, value string) *SetProperty {
	old, had := s.Props[name]
	return &SetProperty{id: s.ID, name: name, before: old, after: value, hadBefore: had}
}

func (c *SetProperty) Kind() Kind { return KindSetProperty }

func (c *SetProperty) Apply(m *diagram.Model) error {
	s, ok := m.Shape(c.id)
	if !ok {
		return fmt.Errorf("set %s.%s: %w", c.id, c.name, diagram.ErrNotFound)
	}
	s.SetProp(c.name, c.after)
	return nil
}

func (c *SetProperty) Revert(m *diagram.Model) error {
	s, ok := m.Shape(c.id)
	if !ok {
		return fmt.Errorf("unset %s.%s: %w", c.id, c.name, diagram.ErrNotFound)
	}
	if c.hadBefore {
		s.SetProp(c.name, c.before)
	} else {
		delete(s.Props, c.name)
	}
	return nil
}

func (c *SetProperty) Description() string {
	return fmt.Sprintf("set %s %s=%q", c.id, c.name, c.after)
}
