package plugins

import (
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/plugin"
)

var sequenceShapes = []plugin.ToolSpec{
	{Type: "lifeline", Label: "Lifeline", Width: 100, Height: 30, Text: "object", Shortcut: "l", Guide: true,
		Style: diagram.Style{Stroke: "#66ffee", Extra: map[string]string{"text": "#00ffc8", "border": "normal"}}},
	{Type: "actor", Label: "Actor", Width: 60, Height: 30, Text: "user", Shortcut: "a", Guide: true,
		Style: diagram.Style{Stroke: "#ddaa44", Extra: map[string]string{"text": "#ffcc66", "border": "rounded"}}},
	{Type: "note", Label: "Note", Width: 100, Height: 40, Text: "note", Shortcut: "n",
		Style: diagram.Style{Stroke: "#336655", Extra: map[string]string{"text": "#88ffbb", "border": "normal"}}},
}

var sequenceConnectors = []plugin.ToolSpec{
	{Type: "message", Label: "Message", Shortcut: "m", Self: true,
		Style: diagram.Style{Stroke: "#00d4a0", Arrow: diagram.ArrowFilled}},
	{Type: "reply", Label: "Reply", Shortcut: "r",
		Style: diagram.Style{Stroke: "#338866", Arrow: diagram.ArrowOpen, Dash: "4 2"}},
}

// Sequence is the sequence diagram type. Messages attach at the height
// where they are drawn, so they stay horizontal; a message may loop back to
// its own lifeline.
func Sequence() *plugin.Static {
	return &plugin.Static{
		PluginName: "sequence",
		Tools:      plugin.Catalog{Shapes: sequenceShapes, Connectors: sequenceConnectors},
		Rule:       sequenceRule,
		Positioned: true,
	}
}

func sequenceRule(src, dst *diagram.Shape, connector string) any {
	for _, s := range []*diagram.Shape{src, dst} {
		if s.Type == "note" {
			return plugin.Reject("notes cannot take part in a %s", connector)
		}
	}
	if connector == "reply" && src.Type == "actor" {
		return plugin.Reject("an actor sends messages, it does not reply")
	}
	return plugin.Accept()
}
