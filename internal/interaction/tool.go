package interaction

import (
	"fmt"
	"strings"
)

// ToolKind enumerates the fixed tool families.
type ToolKind int

const (
	ToolSelect ToolKind = iota
	ToolPan
	ToolDelete
	ToolShape
	ToolConnector
)

var toolKindNames = map[ToolKind]string{
	ToolSelect:    "select",
	ToolPan:       "pan",
	ToolDelete:    "delete",
	ToolShape:     "shape",
	ToolConnector: "connector",
}

func (k ToolKind) String() string { return toolKindNames[k] }

// Tool is the active tool. Type names the plugin shape or connector type
// for ToolShape and ToolConnector.
type Tool struct {
	Kind ToolKind
	Type string
}

var (
	SelectTool = Tool{Kind: ToolSelect}
	PanTool    = Tool{Kind: ToolPan}
	DeleteTool = Tool{Kind: ToolDelete}
)

// ShapeTool places shapes of type t.
func ShapeTool(t string) Tool { return Tool{Kind: ToolShape, Type: t} }

// ConnectorTool draws connectors of type t.
func ConnectorTool(t string) Tool { return Tool{Kind: ToolConnector, Type: t} }

func (t Tool) String() string {
	if t.Type == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + ":" + t.Type
}

// ParseTool reads the String form back: "select", "pan", "delete",
// "shape:<type>" or "connector:<type>".
func ParseTool(s string) (Tool, error) {
	kind, typ, _ := strings.Cut(strings.TrimSpace(s), ":")
	for k, name := range toolKindNames {
		if name != kind {
			continue
		}
		needsType := k == ToolShape || k == ToolConnector
		if needsType != (typ != "") {
			return Tool{}, fmt.Errorf("tool %q: type required for shape and connector tools only", s)
		}
		return Tool{Kind: k, Type: typ}, nil
	}
	return Tool{}, fmt.Errorf("unknown tool %q", s)
}

// ToolBox holds the current tool and tells listeners when it changes.
type ToolBox struct {
	current   Tool
	listeners []func(Tool)
}

// NewToolBox starts with the select tool.
func NewToolBox() *ToolBox {
	return &ToolBox{current: SelectTool}
}

// Current returns the active tool.
func (b *ToolBox) Current() Tool { return b.current }

// OnChange registers fn to run after every tool change.
func (b *ToolBox) OnChange(fn func(Tool)) {
	b.listeners = append(b.listeners, fn)
}

// Set switches tools. Setting the current tool again still notifies, so
// pressing a tool key always resets the gesture.
func (b *ToolBox) Set(t Tool) {
	b.current = t
	for _, fn := range b.listeners {
		fn(t)
	}
}
