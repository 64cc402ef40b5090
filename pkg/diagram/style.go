package diagram

import "maps"

// ArrowKind selects the marker drawn at a connector's target end.
type ArrowKind string

const (
	ArrowNone   ArrowKind = "none"
	ArrowOpen   ArrowKind = "open"
	ArrowFilled ArrowKind = "filled"
)

// Style carries fill, stroke and line attributes for shapes and connectors.
type Style struct {
	Fill        string            `yaml:"fill,omitempty"`
	Stroke      string            `yaml:"stroke,omitempty"`
	StrokeWidth float64           `yaml:"stroke_width,omitempty"`
	Dash        string            `yaml:"dash,omitempty"`
	Arrow       ArrowKind         `yaml:"arrow,omitempty"`
	Extra       map[string]string `yaml:"extra,omitempty"`
}

// Dashed reports whether the line should be drawn with gaps.
func (s Style) Dashed() bool { return s.Dash != "" }

// Clone returns a deep copy.
func (s Style) Clone() Style {
	s.Extra = maps.Clone(s.Extra)
	return s
}

// Merge returns s with every non-zero field of o applied on top.
func (s Style) Merge(o Style) Style {
	out := s.Clone()
	if o.Fill != "" {
		out.Fill = o.Fill
	}
	if o.Stroke != "" {
		out.Stroke = o.Stroke
	}
	if o.StrokeWidth != 0 {
		out.StrokeWidth = o.StrokeWidth
	}
	if o.Dash != "" {
		out.Dash = o.Dash
	}
	if o.Arrow != "" {
		out.Arrow = o.Arrow
	}
	for k, v := range o.Extra {
		if out.Extra == nil {
			out.Extra = make(map[string]string)
		}
		out.Extra[k] = v
	}
	return out
}
