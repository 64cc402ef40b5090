// Package diagram holds the authoritative set of shapes and connections.
// All structural change goes through Model; callers never hold on to the
// slices it returns across input events.
package diagram

import (
	"errors"
	"fmt"

	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/graphmodel"
)

var (
	ErrDuplicateID      = errors.New("duplicate id")
	ErrNotFound         = errors.New("not found")
	ErrDanglingEndpoint = errors.New("connection endpoint does not exist")
	ErrSelfReference    = errors.New("connection type does not allow self-reference")
)

// Kind distinguishes shapes from connections in notifications.
type Kind int

const (
	KindShape Kind = iota
	KindConnection
)

func (k Kind) String() string {
	if k == KindConnection {
		return "connection"
	}
	return "shape"
}

// RemoveListener is called synchronously after an entity leaves the model.
type RemoveListener func(kind Kind, id string)

// IndexedConnection is a connection together with the position it held.
type IndexedConnection struct {
	Conn  *Connection
	Index int
}

// Removal records everything RemoveShape took out of the model, enough to
// put it back exactly where it was.
type Removal struct {
	Shape       *Shape
	Index       int
	Connections []IndexedConnection
}

// Model owns the shapes and connections of one diagram.
type Model struct {
	g         *graphmodel.Graph[*Shape, *Connection]
	listeners []RemoveListener
	allowSelf func(connType string) bool
}

// NewModel creates an empty diagram.
func NewModel() *Model {
	return &Model{g: graphmodel.New[*Shape, *Connection]()}
}

// OnRemove registers a listener for removals.
func (m *Model) OnRemove(l RemoveListener) {
	m.listeners = append(m.listeners, l)
}

// SetSelfReferencePolicy decides which connection types may have the same
// shape at both ends. With no policy, none may.
func (m *Model) SetSelfReferencePolicy(allow func(connType string) bool) {
	m.allowSelf = allow
}

func (m *Model) notify(kind Kind, id string) {
	for _, l := range m.listeners {
		l(kind, id)
	}
}

// ── Shapes ──

// AddShape puts s on top of the z-order.
func (m *Model) AddShape(s *Shape) error {
	return m.InsertShape(m.g.NodeCount(), s)
}

// InsertShape puts s at z-order position index.
func (m *Model) InsertShape(index int, s *Shape) error {
	if s.ID == "" {
		return fmt.Errorf("add shape: empty id")
	}
	if err := m.g.InsertNode(index, s.ID, s); err != nil {
		return fmt.Errorf("add shape: %w", mapErr(err))
	}
	return nil
}

// Shape returns the live shape with the given id.
func (m *Model) Shape(id string) (*Shape, bool) {
	return m.g.Node(id)
}

// Shapes returns all shapes, bottom first.
func (m *Model) Shapes() []*Shape {
	return m.g.Nodes()
}

// ShapeIndex returns the z-order position of a shape, or -1.
func (m *Model) ShapeIndex(id string) int {
	return m.g.NodeIndex(id)
}

// ShapeAt returns the topmost shape containing p, skipping excluded ids.
func (m *Model) ShapeAt(p geom.Point, exclude ...string) (*Shape, bool) {
	id, ok := m.g.HitTest(p, exclude...)
	if !ok {
		return nil, false
	}
	return m.g.Node(id)
}

// RemoveShape deletes a shape and every connection touching it.
func (m *Model) RemoveShape(id string) (Removal, error) {
	if _, ok := m.g.Node(id); !ok {
		return Removal{}, fmt.Errorf("remove shape %s: %w", id, ErrNotFound)
	}
	var rm Removal
	linkIDs := m.g.LinksOf(id)
	for _, cid := range linkIDs {
		c, _ := m.g.Link(cid)
		rm.Connections = append(rm.Connections, IndexedConnection{Conn: c, Index: m.g.LinkIndex(cid)})
	}
	for _, cid := range linkIDs {
		if _, _, err := m.g.RemoveLink(cid); err != nil {
			return Removal{}, fmt.Errorf("remove shape %s: %w", id, mapErr(err))
		}
	}
	s, idx, err := m.g.RemoveNode(id)
	if err != nil {
		return Removal{}, fmt.Errorf("remove shape %s: %w", id, mapErr(err))
	}
	rm.Shape, rm.Index = s, idx

	for _, cid := range linkIDs {
		m.notify(KindConnection, cid)
	}
	m.notify(KindShape, id)
	return rm, nil
}

// Restore reverses a RemoveShape: the shape goes back to its z-order slot
// and its connections to theirs.
func (m *Model) Restore(rm Removal) error {
	if err := m.InsertShape(rm.Index, rm.Shape); err != nil {
		return err
	}
	for _, ic := range rm.Connections {
		if err := m.InsertConnection(ic.Index, ic.Conn); err != nil {
			return err
		}
	}
	return nil
}

// ── Connections ──

// AddConnection appends a connection.
func (m *Model) AddConnection(c *Connection) error {
	return m.InsertConnection(m.g.LinkCount(), c)
}

// InsertConnection places a connection at position index.
func (m *Model) InsertConnection(index int, c *Connection) error {
	if c.ID == "" {
		return fmt.Errorf("add connection: empty id")
	}
	if err := m.checkSelf(c.Type, c.Source, c.Target); err != nil {
		return fmt.Errorf("add connection %s: %w", c.ID, err)
	}
	if err := m.g.InsertLink(index, c.ID, c); err != nil {
		return fmt.Errorf("add connection %s: %w", c.ID, mapLinkErr(err))
	}
	return nil
}

// Connection returns the live connection with the given id.
func (m *Model) Connection(id string) (*Connection, bool) {
	return m.g.Link(id)
}

// Connections returns all connections in insertion order.
func (m *Model) Connections() []*Connection {
	return m.g.Links()
}

// ConnectionsOf returns the connections touching a shape.
func (m *Model) ConnectionsOf(shapeID string) []*Connection {
	var out []*Connection
	for _, id := range m.g.LinksOf(shapeID) {
		c, _ := m.g.Link(id)
		out = append(out, c)
	}
	return out
}

// RemoveConnection deletes a connection.
func (m *Model) RemoveConnection(id string) (IndexedConnection, error) {
	c, idx, err := m.g.RemoveLink(id)
	if err != nil {
		return IndexedConnection{}, fmt.Errorf("remove connection %s: %w", id, mapErr(err))
	}
	m.notify(KindConnection, id)
	return IndexedConnection{Conn: c, Index: idx}, nil
}

// Reattach moves one end of a connection to a new attachment.
func (m *Model) Reattach(connID string, end End, a Attachment) error {
	c, ok := m.g.Link(connID)
	if !ok {
		return fmt.Errorf("reattach %s: %w", connID, ErrNotFound)
	}
	if _, ok := m.g.Node(a.Shape); !ok {
		return fmt.Errorf("reattach %s to %s: %w", connID, a.Shape, ErrDanglingEndpoint)
	}
	other := c.ShapeAt(end.Opposite())
	if err := m.checkSelf(c.Type, a.Shape, other); err != nil {
		return fmt.Errorf("reattach %s: %w", connID, err)
	}
	c.SetAttachment(end, a)
	return nil
}

func (m *Model) checkSelf(connType, source, target string) error {
	if source != target {
		return nil
	}
	if m.allowSelf != nil && m.allowSelf(connType) {
		return nil
	}
	return ErrSelfReference
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, graphmodel.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrDuplicateID, err)
	case errors.Is(err, graphmodel.ErrMissing):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

func mapLinkErr(err error) error {
	if errors.Is(err, graphmodel.ErrMissing) {
		return fmt.Errorf("%w: %v", ErrDanglingEndpoint, err)
	}
	return mapErr(err)
}
