package interaction

import "github.com/wesen/diagrail/pkg/command"

// Key handles a key press.
func (c *Controller) Key(ev KeyEvent) {
	if ev.Key == "escape" || ev.Key == "esc" {
		c.Abort()
		return
	}
	if _, ok := c.state.(Idle); !ok {
		return
	}

	switch {
	case ev.Key == "delete" || ev.Key == "backspace":
		c.deleteSelection()
	case ev.Mods.command() && ev.Key == "z" && ev.Mods.Has(ModShift):
		c.Redo()
	case ev.Mods.command() && ev.Key == "z":
		c.Undo()
	case ev.Mods.command() && ev.Key == "y":
		c.Redo()
	case ev.Mods == 0:
		if t, ok := c.keymap[ev.Key]; ok {
			c.SetTool(t)
		}
	}
}

func (c *Controller) deleteSelection() {
	shapes, conns := c.sel.Shapes(), c.sel.Connections()
	for _, id := range shapes {
		if err := c.history.Execute(command.NewRemoveShape(id)); err != nil {
			c.log.Debug("delete shape", "shape", id, "err", err)
		}
	}
	for _, id := range conns {
		// Cascades above may already have taken it.
		if _, ok := c.model.Connection(id); !ok {
			continue
		}
		if err := c.history.Execute(command.NewRemoveConnection(id)); err != nil {
			c.log.Debug("delete connection", "conn", id, "err", err)
		}
	}
	c.sel.Clear()
	c.refreshAll()
}
