// Package plugin defines what a diagram type supplies to the editor: the
// tool catalog, connection rules, default styles and capabilities.
package plugin

import (
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
)

// Plugin is one diagram type.
type Plugin interface {
	Name() string
	Catalog() Catalog
	// ValidateConnection decides whether a connector of the given type may
	// join src to dst.
	ValidateConnection(src, dst *diagram.Shape, connector string) Verdict
	ConnectorStyle(connector string) diagram.Style
	ShapeStyle(shapeType string) diagram.Style
	AllowsSelfReference(connector string) bool
	// SupportsPositionedAttachment reports whether connector ends attach at
	// the vertical position of the click instead of a side of the shape.
	SupportsPositionedAttachment() bool
}

// ToolSpec describes one shape or connector tool. Text is the default label
// of new shapes. Guide gives a shape a vertical connection-point line below
// it, as sequence lifelines have. Self lets a connector loop back to its
// source.
type ToolSpec struct {
	Type     string        `yaml:"type"`
	Label    string        `yaml:"label"`
	Tag      string        `yaml:"tag,omitempty"`
	Size     geom.Size     `yaml:"-"`
	Width    float64       `yaml:"width,omitempty"`
	Height   float64       `yaml:"height,omitempty"`
	Text     string        `yaml:"text,omitempty"`
	Shortcut string        `yaml:"shortcut,omitempty"`
	Guide    bool          `yaml:"guide,omitempty"`
	Self     bool          `yaml:"self,omitempty"`
	Style    diagram.Style `yaml:"style,omitempty"`
}

// DefaultSize returns Size, falling back to Width/Height as loaded from YAML.
func (t ToolSpec) DefaultSize() geom.Size {
	if t.Size.Width > 0 && t.Size.Height > 0 {
		return t.Size
	}
	return geom.Size{Width: t.Width, Height: t.Height}
}

// Catalog lists the tools a plugin offers.
type Catalog struct {
	Shapes     []ToolSpec
	Connectors []ToolSpec
}

// Shape returns the tool entry of a shape type.
func (c Catalog) Shape(t string) (ToolSpec, bool) { return find(c.Shapes, t) }

// Connector returns the tool entry of a connector type.
func (c Catalog) Connector(t string) (ToolSpec, bool) { return find(c.Connectors, t) }

func find(specs []ToolSpec, t string) (ToolSpec, bool) {
	for _, s := range specs {
		if s.Type == t {
			return s, true
		}
	}
	return ToolSpec{}, false
}

// GuideTypes lists the shape types that carry a connection-point guide.
func (c Catalog) GuideTypes() []string {
	var out []string
	for _, s := range c.Shapes {
		if s.Guide {
			out = append(out, s.Type)
		}
	}
	return out
}

// Shortcuts maps each tool shortcut to whether it names a shape and its type.
func (c Catalog) Shortcuts() map[string]Shortcut {
	out := make(map[string]Shortcut)
	for _, s := range c.Shapes {
		if s.Shortcut != "" {
			out[s.Shortcut] = Shortcut{Shape: true, Type: s.Type}
		}
	}
	for _, s := range c.Connectors {
		if s.Shortcut != "" {
			out[s.Shortcut] = Shortcut{Type: s.Type}
		}
	}
	return out
}

// Shortcut is the tool a catalog key selects.
type Shortcut struct {
	Shape bool
	Type  string
}
