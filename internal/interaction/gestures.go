package interaction

import (
	"github.com/wesen/diagrail/internal/scene"
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
)

func (c *Controller) selectDown(ev PointerEvent) {
	hit := c.surface.HitTest(ev.Pos)
	c.log.Debug("select click", "hit", hit.String(), "mods", ev.Mods.String())

	switch hit.Role {
	case scene.RoleResizeHandle:
		sh, ok := c.model.Shape(hit.ID)
		if !ok || hit.Handle == geom.HandleNone {
			c.idle()
			return
		}
		c.setState(&Resizing{ShapeID: sh.ID, Handle: hit.Handle, Origin: ev.Pos, Before: sh.Frame})

	case scene.RoleEndpoint:
		conn, ok := c.model.Connection(hit.ID)
		if !ok {
			c.idle()
			return
		}
		c.setState(&DraggingEndpoint{
			ConnID:  conn.ID,
			End:     hit.End,
			Before:  conn.Attachment(hit.End),
			Fixed:   conn.ShapeAt(hit.End.Opposite()),
			Pointer: ev.Pos,
		})

	case scene.RoleShape:
		if _, ok := c.model.Shape(hit.ID); !ok {
			c.idle()
			return
		}
		switch {
		case ev.Mods.toggles():
			if !c.sel.ToggleShape(hit.ID) {
				return
			}
		case c.sel.HasShape(hit.ID):
			c.sel.AddShape(hit.ID)
		default:
			c.sel.SelectShape(hit.ID)
		}
		c.startDrag(ev.Pos)

	case scene.RoleConnector:
		c.sel.SelectConnection(hit.ID)

	default:
		if !ev.Mods.toggles() {
			c.sel.Clear()
		}
	}
}

func (c *Controller) startDrag(origin geom.Point) {
	s := &Dragging{Origin: origin}
	for _, id := range c.sel.Shapes() {
		sh, ok := c.model.Shape(id)
		if !ok {
			continue
		}
		p := sh.Position()
		s.Starts = append(s.Starts, command.Move{ID: id, From: p, To: p})
	}
	if len(s.Starts) == 0 {
		c.idle()
		return
	}
	c.setState(s)
}

func (c *Controller) drag(s *Dragging, p geom.Point) {
	d := p.Sub(s.Origin)
	ids := make([]string, 0, len(s.Starts))
	for i, mv := range s.Starts {
		sh, ok := c.model.Shape(mv.ID)
		if !ok {
			c.log.Debug("dragged shape vanished", "shape", mv.ID)
			c.abortGesture()
			return
		}
		s.Starts[i].To = mv.From.Add(d)
		sh.SetPosition(s.Starts[i].To)
		ids = append(ids, mv.ID)
	}
	c.surface.Refresh(ids...)
}

func (c *Controller) finishDrag(s *Dragging) {
	defer c.idle()
	if _, ok := c.state.(*Dragging); !ok {
		return
	}
	if len(s.Starts) == 0 || s.Starts[0].To == s.Starts[0].From {
		return
	}
	cmd := command.NewMoveShapes(s.Starts)
	c.history.Record(cmd)
	c.log.Debug("recorded", "cmd", cmd.Description())
}

func (c *Controller) minSize(sh *diagram.Shape) geom.Size {
	m := sh.MinSize
	if m.Width <= 0 {
		m.Width = c.opts.MinSize.Width
	}
	if m.Height <= 0 {
		m.Height = c.opts.MinSize.Height
	}
	return m
}

func (c *Controller) resize(s *Resizing, p geom.Point) {
	sh, ok := c.model.Shape(s.ShapeID)
	if !ok {
		c.log.Debug("resized shape vanished", "shape", s.ShapeID)
		c.idle()
		return
	}
	sh.Frame = geom.ResizeBounds(s.Before, s.Handle, p.Sub(s.Origin), c.minSize(sh))
	c.surface.Refresh(s.ShapeID)
}

func (c *Controller) finishResize(s *Resizing) {
	defer c.idle()
	sh, ok := c.model.Shape(s.ShapeID)
	if !ok || sh.Frame == s.Before {
		return
	}
	cmd := command.NewResizeShape(s.ShapeID, s.Before, sh.Frame)
	c.history.Record(cmd)
	c.log.Debug("recorded", "cmd", cmd.Description())
}

// endpointAttachment is where the dragged end would land on candidate.
func (c *Controller) endpointAttachment(s *DraggingEndpoint, conn *diagram.Connection, cand *diagram.Shape) diagram.Attachment {
	fixed, ok := c.model.Shape(s.Fixed)
	if !ok {
		return diagram.Attachment{Shape: cand.ID}
	}
	if c.plugin.SupportsPositionedAttachment() && s.Before.Offset != nil {
		// Keep the connector level with its fixed end.
		y := fixed.Frame.Y + fixed.Frame.Height/2
		if off := conn.Attachment(s.End.Opposite()).Offset; off != nil {
			y = fixed.Frame.Y + *off
		}
		return diagram.Attachment{Shape: cand.ID, Offset: diagram.Offset(y - cand.Frame.Y)}
	}
	return diagram.FacingAttachment(cand, fixed.Frame.Center())
}

func (c *Controller) validateEndpoint(s *DraggingEndpoint, conn *diagram.Connection, candID string) plugin.Verdict {
	cand, ok1 := c.model.Shape(candID)
	fixed, ok2 := c.model.Shape(s.Fixed)
	if !ok1 || !ok2 {
		return plugin.Reject("shape no longer exists")
	}
	if s.End == diagram.EndSource {
		return c.plugin.ValidateConnection(cand, fixed, conn.Type)
	}
	return c.plugin.ValidateConnection(fixed, cand, conn.Type)
}

func (c *Controller) finishEndpoint(s *DraggingEndpoint) {
	defer c.idle()
	conn, ok := c.model.Connection(s.ConnID)
	if !ok || s.Candidate == "" {
		return
	}
	cand, ok := c.model.Shape(s.Candidate)
	if !ok {
		return
	}
	after := c.endpointAttachment(s, conn, cand)
	if sameAttachment(after, s.Before) {
		return
	}
	if v := c.validateEndpoint(s, conn, cand.ID); !v.Valid {
		c.reject(v, conn.Type, s.Fixed, cand.ID)
		return
	}
	if err := c.history.Execute(command.NewReconnectEndpoint(conn, s.End, after)); err != nil {
		c.log.Debug("reconnect failed", "conn", conn.ID, "err", err)
		return
	}
	c.surface.Refresh(s.Fixed, cand.ID, s.Before.Shape)
}

func sameAttachment(a, b diagram.Attachment) bool {
	if a.Shape != b.Shape || a.Side != b.Side {
		return false
	}
	if a.Offset == nil || b.Offset == nil {
		return a.Offset == nil && b.Offset == nil
	}
	return *a.Offset == *b.Offset
}

func (c *Controller) reject(v plugin.Verdict, connector, src, dst string) {
	msg := v.Message
	if msg == "" {
		msg = "connection not allowed"
	}
	c.log.Warn("connection rejected", "connector", connector, "source", src, "target", dst, "message", msg)
	c.notify.Notify(Diagnostic{Level: LevelWarn, Message: msg})
}

func (c *Controller) placeShape(shapeType string, click geom.Point) {
	spec, ok := c.plugin.Catalog().Shape(shapeType)
	if !ok {
		c.log.Debug("unknown shape type", "type", shapeType)
		return
	}
	size := spec.DefaultSize()
	if size.Width <= 0 || size.Height <= 0 {
		size = c.opts.FallbackSize
	}
	label := spec.Text
	if label == "" {
		label = spec.Label
	}
	sh := &diagram.Shape{
		ID:      c.ids.NewID("shape"),
		Type:    shapeType,
		Frame:   geom.PlaceCentered(click, size, c.opts.Grid),
		MinSize: geom.Size{
			Width:  min(c.opts.MinSize.Width, size.Width),
			Height: min(c.opts.MinSize.Height, size.Height),
		},
		Props:   map[string]string{diagram.LabelProp: label},
		Style:   c.plugin.ShapeStyle(shapeType),
	}
	if err := c.history.Execute(command.NewAddShape(sh)); err != nil {
		c.log.Error("add shape", "type", shapeType, "err", err)
		return
	}
	c.surface.Refresh(sh.ID)
	c.sel.SelectShape(sh.ID)
	c.tools.Set(SelectTool)
}

func (c *Controller) deleteAt(p geom.Point) {
	hit := c.surface.HitTest(p)
	var cmd command.Command
	switch hit.Role {
	case scene.RoleShape, scene.RoleResizeHandle:
		cmd = command.NewRemoveShape(hit.ID)
	case scene.RoleConnector, scene.RoleEndpoint:
		cmd = command.NewRemoveConnection(hit.ID)
	default:
		return
	}
	if err := c.history.Execute(cmd); err != nil {
		c.log.Debug("delete failed", "hit", hit.String(), "err", err)
		return
	}
	c.refreshAll()
}
