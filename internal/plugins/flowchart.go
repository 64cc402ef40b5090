package plugins

import (
	"strings"

	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/plugin"
)

// Flowchart node geometry is a whole number of terminal cells at 5×10
// world units per cell.
var flowchartShapes = []plugin.ToolSpec{
	{Type: "process", Label: "Process", Tag: "P", Width: 110, Height: 30, Text: "NEW", Shortcut: "1",
		Style: diagram.Style{Stroke: "#00d4a0", Extra: map[string]string{"text": "#00ffc8", "border": "normal"}}},
	{Type: "decision", Label: "Decision", Tag: "?", Width: 110, Height: 30, Text: "NEW?", Shortcut: "2",
		Style: diagram.Style{Stroke: "#00ccee", Extra: map[string]string{"text": "#66ffee", "border": "double"}}},
	{Type: "terminal", Label: "Terminal", Tag: "T", Width: 110, Height: 30, Text: "END", Shortcut: "3",
		Style: diagram.Style{Stroke: "#44ff88", Extra: map[string]string{"text": "#88ffbb", "border": "rounded"}}},
	{Type: "io", Label: "I/O", Tag: "IO", Width: 110, Height: 30, Text: "PRINT", Shortcut: "4",
		Style: diagram.Style{Stroke: "#ddaa44", Extra: map[string]string{"text": "#ffcc66", "border": "normal"}}},
	{Type: "connector", Label: "Connector", Width: 40, Height: 30, Shortcut: "5",
		Style: diagram.Style{Stroke: "#1a6a4a", Extra: map[string]string{"text": "#00d4a0", "border": "rounded"}}},
}

var flowchartConnectors = []plugin.ToolSpec{
	{Type: "flow", Label: "Flow", Shortcut: "c",
		Style: diagram.Style{Stroke: "#00d4a0", Arrow: diagram.ArrowFilled}},
}

// Flowchart is the classic flowchart diagram type. Terminals labelled START
// take no incoming flow and terminals labelled END have no outgoing flow.
func Flowchart() *plugin.Static {
	return &plugin.Static{
		PluginName: "flowchart",
		Tools:      plugin.Catalog{Shapes: flowchartShapes, Connectors: flowchartConnectors},
		Rule:       flowchartRule,
	}
}

func flowchartRule(src, dst *diagram.Shape, _ string) any {
	switch {
	case isTerminal(dst, "START"):
		return plugin.Reject("%s is a start terminal and cannot be a flow target", dst.Label())
	case isTerminal(src, "END"):
		return plugin.Reject("%s is an end terminal and cannot start a flow", src.Label())
	}
	return true
}

func isTerminal(s *diagram.Shape, word string) bool {
	return s.Type == "terminal" && strings.Contains(strings.ToUpper(s.Label()), word)
}
