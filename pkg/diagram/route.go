package diagram

import "github.com/wesen/diagrail/pkg/geom"

// AttachPoint returns where attachment a meets its shape, given the point
// the connection heads toward.
func AttachPoint(s *Shape, a Attachment, toward geom.Point) geom.Point {
	r := s.Frame
	if a.Offset != nil {
		return geom.Pt(r.Center().X, r.Y+*a.Offset)
	}
	if a.Side != geom.SideAuto {
		return a.Side.Midpoint(r)
	}
	return geom.ExitPoint(r, toward)
}

// Route computes the two end points of c from the current shape geometry.
// It reports false when either end no longer resolves.
func (m *Model) Route(c *Connection) (from, to geom.Point, ok bool) {
	src, ok1 := m.Shape(c.Source)
	dst, ok2 := m.Shape(c.Target)
	if !ok1 || !ok2 {
		return geom.Point{}, geom.Point{}, false
	}
	sa, ta := c.Attachment(EndSource), c.Attachment(EndTarget)
	if src == dst && sa.Offset == nil && ta.Offset == nil && sa.Side == geom.SideAuto && ta.Side == geom.SideAuto {
		return geom.SideE.Midpoint(src.Frame), geom.SideN.Midpoint(src.Frame), true
	}
	from = AttachPoint(src, sa, dst.Frame.Center())
	to = AttachPoint(dst, ta, src.Frame.Center())
	return from, to, true
}

// FacingAttachment builds an attachment on s whose side faces toward.
func FacingAttachment(s *Shape, toward geom.Point) Attachment {
	return Attachment{Shape: s.ID, Side: geom.FacingSide(s.Frame, toward)}
}
