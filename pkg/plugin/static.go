package plugin

import "github.com/wesen/diagrail/pkg/diagram"

// Validator is a connection rule. It may return any value VerdictOf
// understands.
type Validator func(src, dst *diagram.Shape, connector string) any

// Static is a Plugin assembled from a catalog and an optional rule.
type Static struct {
	PluginName string
	Tools      Catalog
	Rule       Validator
	Positioned bool
}

var _ Plugin = (*Static)(nil)

func (p *Static) Name() string { return p.PluginName }

func (p *Static) Catalog() Catalog { return p.Tools }

func (p *Static) ValidateConnection(src, dst *diagram.Shape, connector string) Verdict {
	if _, ok := p.Tools.Connector(connector); !ok {
		return Reject("unknown connector type %q", connector)
	}
	if p.Rule == nil {
		return Accept()
	}
	return VerdictOf(p.Rule(src, dst, connector))
}

func (p *Static) ConnectorStyle(connector string) diagram.Style {
	spec, _ := p.Tools.Connector(connector)
	return spec.Style.Clone()
}

func (p *Static) ShapeStyle(shapeType string) diagram.Style {
	spec, _ := p.Tools.Shape(shapeType)
	return spec.Style.Clone()
}

func (p *Static) AllowsSelfReference(connector string) bool {
	spec, ok := p.Tools.Connector(connector)
	return ok && spec.Self
}

func (p *Static) SupportsPositionedAttachment() bool { return p.Positioned }
