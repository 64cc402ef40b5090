package interaction

import (
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
)

func (c *Controller) startConnection(connector string, p geom.Point) {
	if _, ok := c.plugin.Catalog().Connector(connector); !ok {
		c.log.Debug("unknown connector type", "type", connector)
		return
	}
	id, ok := c.hitShapeID(c.surface.HitTest(p))
	if !ok {
		return
	}
	c.setState(&Connecting{SourceID: id, Connector: connector, Pointer: p})
}

// completeConnection handles the second click of a connector gesture. The
// connector tool stays active whatever the outcome.
func (c *Controller) completeConnection(s *Connecting, ev PointerEvent) {
	defer c.idle()
	src, ok := c.model.Shape(s.SourceID)
	if !ok {
		c.log.Debug("connection source vanished", "shape", s.SourceID)
		return
	}
	targetID, ok := c.hitShapeID(c.surface.HitTest(ev.Pos))
	if !ok {
		c.log.Debug("connection cancelled", "source", s.SourceID)
		return
	}
	dst, ok := c.model.Shape(targetID)
	if !ok {
		return
	}
	if dst.ID == src.ID && !c.plugin.AllowsSelfReference(s.Connector) {
		c.log.Debug("self connection not allowed", "connector", s.Connector, "shape", src.ID)
		return
	}
	if v := c.plugin.ValidateConnection(src, dst, s.Connector); !v.Valid {
		c.reject(v, s.Connector, src.ID, dst.ID)
		return
	}

	conn := &diagram.Connection{
		ID:     c.ids.NewID("conn"),
		Type:   s.Connector,
		Source: src.ID,
		Target: dst.ID,
		Style:  c.plugin.ConnectorStyle(s.Connector),
	}
	if c.plugin.SupportsPositionedAttachment() {
		conn.SourceOffset = diagram.Offset(ev.Pos.Y - src.Frame.Y)
		conn.TargetOffset = diagram.Offset(ev.Pos.Y - dst.Frame.Y)
	}
	if err := c.history.Execute(command.NewAddConnection(conn)); err != nil {
		c.log.Error("add connection", "source", src.ID, "target", dst.ID, "err", err)
		return
	}
	c.log.Info("connected", "conn", conn.ID, "type", conn.Type, "source", src.ID, "target", dst.ID)
	c.surface.Refresh(src.ID, dst.ID)
}
