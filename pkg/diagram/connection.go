package diagram

import "github.com/wesen/diagrail/pkg/geom"

// End names one end of a connection.
type End int

const (
	EndSource End = iota
	EndTarget
)

func (e End) String() string {
	if e == EndTarget {
		return "target"
	}
	return "source"
}

// Opposite returns the other end.
func (e End) Opposite() End {
	if e == EndTarget {
		return EndSource
	}
	return EndTarget
}

// Attachment describes where one end of a connection meets its shape.
// Offset, when set, is a vertical offset from the top of the shape and
// places the end on the shape's vertical center line.
type Attachment struct {
	Shape  string
	Side   geom.Side
	Offset *float64
}

// Connection is a directed, typed edge between two shapes. Endpoints are
// identities resolved through the Model.
type Connection struct {
	ID           string
	Type         string
	Source       string
	Target       string
	SourceSide   geom.Side
	TargetSide   geom.Side
	SourceOffset *float64
	TargetOffset *float64
	Style        Style
}

// Ends implements graphmodel.Linked.
func (c *Connection) Ends() (string, string) { return c.Source, c.Target }

// ShapeAt returns the shape identity at end e.
func (c *Connection) ShapeAt(e End) string {
	if e == EndTarget {
		return c.Target
	}
	return c.Source
}

// Attachment returns the attachment at end e.
func (c *Connection) Attachment(e End) Attachment {
	if e == EndTarget {
		return Attachment{Shape: c.Target, Side: c.TargetSide, Offset: copyOffset(c.TargetOffset)}
	}
	return Attachment{Shape: c.Source, Side: c.SourceSide, Offset: copyOffset(c.SourceOffset)}
}

// SetAttachment replaces the attachment at end e.
func (c *Connection) SetAttachment(e End, a Attachment) {
	if e == EndTarget {
		c.Target, c.TargetSide, c.TargetOffset = a.Shape, a.Side, copyOffset(a.Offset)
		return
	}
	c.Source, c.SourceSide, c.SourceOffset = a.Shape, a.Side, copyOffset(a.Offset)
}

// SelfReferencing reports whether both ends name the same shape.
func (c *Connection) SelfReferencing() bool { return c.Source == c.Target }

// Clone returns a deep copy.
func (c *Connection) Clone() *Connection {
	out := *c
	out.SourceOffset = copyOffset(c.SourceOffset)
	out.TargetOffset = copyOffset(c.TargetOffset)
	out.Style = c.Style.Clone()
	return &out
}

// Offset returns a pointer to v, for filling SourceOffset/TargetOffset.
func Offset(v float64) *float64 { return &v }

func copyOffset(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
