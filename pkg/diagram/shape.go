package diagram

import (
	"maps"

	"github.com/wesen/diagrail/pkg/geom"
)

// LabelProp is the property holding a shape's primary label.
const LabelProp = "label"

// Shape is a placeable diagram node.
type Shape struct {
	ID      string
	Type    string
	Frame   geom.Rect
	MinSize geom.Size
	Props   map[string]string
	Style   Style
}

// Bounds implements graphmodel.Spatial.
func (s *Shape) Bounds() geom.Rect { return s.Frame }

// Position returns the top-left corner.
func (s *Shape) Position() geom.Point { return s.Frame.Origin() }

// SetPosition moves the shape without changing its size.
func (s *Shape) SetPosition(p geom.Point) { s.Frame = s.Frame.MoveTo(p) }

// Label returns the primary label text.
func (s *Shape) Label() string { return s.Props[LabelProp] }

// Prop returns a property value.
func (s *Shape) Prop(name string) string { return s.Props[name] }

// SetProp sets a property, allocating the map on first use.
func (s *Shape) SetProp(name, value string) {
	if s.Props == nil {
		s.Props = make(map[string]string)
	}
	s.Props[name] = value
}

// Clone returns a deep copy.
func (s *Shape) Clone() *Shape {
	c := *s
	c.Props = maps.Clone(s.Props)
	c.Style = s.Style.Clone()
	return &c
}
