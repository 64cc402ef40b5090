package command

import (
	"fmt"

	"github.com/wesen/diagrail/pkg/diagram"
)

// AddConnection inserts a new connection.
type AddConnection struct {
	conn *diagram.Connection
}

// NewAddConnection captures a snapshot of c.
func NewAddConnection(c *diagram.Connection) *AddConnection {
	return &AddConnection{conn: c.Clone()}
}

func (c *AddConnection) Kind() Kind { return KindAddConnection }

// ConnectionID returns the identity of the added connection.
func (c *AddConnection) ConnectionID() string { return c.conn.ID }

func (c *AddConnection) Apply(m *diagram.Model) error {
	return m.AddConnection(c.conn.Clone())
}

func (c *AddConnection) Revert(m *diagram.Model) error {
	ic, err := m.RemoveConnection(c.conn.ID)
	if err != nil {
		return err
	}
	c.conn = ic.Conn.Clone()
	return nil
}

func (c *AddConnection) Description() string {
	return fmt.Sprintf("connect %s → %s (%s)", c.conn.Source, c.conn.Target, c.conn.Type)
}

// RemoveConnection deletes a single connection.
type RemoveConnection struct {
	id      string
	removed *diagram.IndexedConnection
}

// NewRemoveConnection builds a removal of the connection with the given id.
func NewRemoveConnection(id string) *RemoveConnection {
	return &RemoveConnection{id: id}
}

func (c *RemoveConnection) Kind() Kind { return KindRemoveConnection }

func (c *RemoveConnection) Apply(m *diagram.Model) error {
	ic, err := m.RemoveConnection(c.id)
	if err != nil {
		return err
	}
	c.removed = &ic
	return nil
}

func (c *RemoveConnection) Revert(m *diagram.Model) error {
	if c.removed == nil {
		return fmt.Errorf("revert remove %s: %w", c.id, ErrNotApplied)
	}
	if err := m.InsertConnection(c.removed.Index, c.removed.Conn.Clone()); err != nil {
		return err
	}
	c.removed = nil
	return nil
}

func (c *RemoveConnection) Description() string { return "disconnect " + c.id }

// ReconnectEndpoint moves one end of a connection to another shape.
type ReconnectEndpoint struct {
	id            string
	end           diagram.End
	before, after diagram.Attachment
}

// NewReconnectEndpoint builds a reconnection of end of conn to after.
func NewReconnectEndpoint(conn *diagram.Connection, end diagram.End, after diagram.Attachment) *ReconnectEndpoint {
	return &ReconnectEndpoint{
		id:     conn.ID,
		end:    end,
		before: conn.Attachment(end),
		after:  after,
	}
}

func (c *ReconnectEndpoint) Kind() Kind { return KindReconnectEndpoint }

func (c *ReconnectEndpoint) Apply(m *diagram.Model) error {
	return m.Reattach(c.id, c.end, c.after)
}

func (c *ReconnectEndpoint) Revert(m *diagram.Model) error {
	return m.Reattach(c.id, c.end, c.before)
}

func (c *ReconnectEndpoint) Description() string {
	return fmt.Sprintf("reconnect %s %s %s → %s", c.id, c.end, c.before.Shape, c.after.Shape)
}
