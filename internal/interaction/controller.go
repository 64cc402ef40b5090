// Package interaction turns pointer and keyboard input into diagram edits.
//
// A Controller holds exactly one State. Gestures mutate model geometry live
// for feedback and, when they complete, record a single command in the
// history. Input handlers never return errors: a gesture that cannot
// resolve its target falls back to Idle.
package interaction

import (
	"log/slog"

	"github.com/wesen/diagrail/internal/scene"
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
	"github.com/wesen/diagrail/pkg/selection"
)

// Controller is the interaction state machine.
type Controller struct {
	model   *diagram.Model
	history *command.History
	sel     *selection.Set
	tools   *ToolBox
	plugin  plugin.Plugin
	surface Surface
	editor  TextEditor
	notify  Notifier
	ids     IDGenerator
	panner  Panner
	log     *slog.Logger

	opts   Options
	keymap Keymap
	state  State
}

// New wires a controller. It fails only when a required dependency is
// missing.
func New(d Deps, opts Options) (*Controller, error) {
	if err := d.fill(); err != nil {
		return nil, err
	}
	if opts.Grid <= 0 {
		opts.Grid = geom.DefaultGrid
	}
	if opts.Keymap == nil {
		opts.Keymap = DefaultKeymap()
	}
	c := &Controller{
		model:   d.Model,
		history: d.History,
		sel:     d.Selection,
		tools:   d.Tools,
		plugin:  d.Plugin,
		surface: d.Surface,
		editor:  d.Editor,
		notify:  d.Notifier,
		ids:     d.IDs,
		panner:  d.Panner,
		log:     d.Logger,
		opts:    opts,
		keymap:  opts.Keymap.WithCatalog(d.Plugin.Catalog()),
		state:   Idle{},
	}
	c.model.SetSelfReferencePolicy(c.plugin.AllowsSelfReference)
	c.sel.Attach(c.model)
	c.tools.OnChange(func(Tool) { c.abortGesture() })
	return c, nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Mode returns the current mode name.
func (c *Controller) Mode() Mode { return c.state.Mode() }

// Tool returns the active tool.
func (c *Controller) Tool() Tool { return c.tools.Current() }

// Keymap returns the effective tool shortcuts.
func (c *Controller) Keymap() Keymap { return c.keymap }

// SetTool switches tools, aborting any gesture in progress.
func (c *Controller) SetTool(t Tool) {
	c.log.Debug("tool changed", "from", c.tools.Current().String(), "to", t.String())
	c.tools.Set(t)
}

// Abort cancels the gesture in progress, reverting live changes, and
// clears the selection.
func (c *Controller) Abort() {
	c.abortGesture()
	c.sel.Clear()
}

func (c *Controller) setState(s State) {
	if s.Mode() != c.state.Mode() {
		c.log.Debug("mode", "from", string(c.state.Mode()), "to", string(s.Mode()))
	}
	c.state = s
}

func (c *Controller) idle() { c.setState(Idle{}) }

// abortGesture puts every live mutation back to its recorded start and
// returns to Idle without touching the history.
func (c *Controller) abortGesture() {
	switch s := c.state.(type) {
	case *Dragging:
		var ids []string
		for _, mv := range s.Starts {
			if sh, ok := c.model.Shape(mv.ID); ok {
				sh.SetPosition(mv.From)
				ids = append(ids, mv.ID)
			}
		}
		c.surface.Refresh(ids...)
	case *Resizing:
		if sh, ok := c.model.Shape(s.ShapeID); ok {
			sh.Frame = s.Before
			c.surface.Refresh(s.ShapeID)
		}
	}
	c.idle()
}

// PointerDown starts a gesture, or completes a click-click connection.
func (c *Controller) PointerDown(ev PointerEvent) {
	if ev.Button != ButtonLeft {
		return
	}
	if s, ok := c.state.(*Connecting); ok {
		c.completeConnection(s, ev)
		return
	}
	if _, ok := c.state.(Idle); !ok {
		c.log.Debug("pointer down ignored", "mode", string(c.state.Mode()))
		return
	}
	switch t := c.tools.Current(); t.Kind {
	case ToolSelect:
		c.selectDown(ev)
	case ToolShape:
		c.placeShape(t.Type, ev.Pos)
	case ToolConnector:
		c.startConnection(t.Type, ev.Pos)
	case ToolPan:
		c.setState(&Panning{Origin: ev.Pos})
	case ToolDelete:
		c.deleteAt(ev.Pos)
	}
}

// PointerMove updates the gesture in progress.
func (c *Controller) PointerMove(ev PointerEvent) {
	switch s := c.state.(type) {
	case *Dragging:
		c.drag(s, ev.Pos)
	case *Resizing:
		c.resize(s, ev.Pos)
	case *Connecting:
		s.Pointer = ev.Pos
	case *DraggingEndpoint:
		s.Pointer = ev.Pos
		s.Candidate, _ = c.surface.ShapeAt(ev.Pos, s.Fixed)
	case *Panning:
		if c.panner != nil {
			d := ev.Pos.Sub(s.Origin)
			if !d.IsZero() {
				c.panner.PanBy(d.X, d.Y)
			}
		}
	}
}

// PointerUp completes the gesture in progress.
func (c *Controller) PointerUp(ev PointerEvent) {
	if ev.Button != ButtonLeft {
		return
	}
	switch s := c.state.(type) {
	case *Dragging:
		c.drag(s, ev.Pos)
		c.finishDrag(s)
	case *Resizing:
		c.resize(s, ev.Pos)
		c.finishResize(s)
	case *DraggingEndpoint:
		s.Pointer = ev.Pos
		s.Candidate, _ = c.surface.ShapeAt(ev.Pos, s.Fixed)
		c.finishEndpoint(s)
	case *Panning:
		c.idle()
	}
}

// DoubleClick starts inline editing of the label of the shape under the
// pointer.
func (c *Controller) DoubleClick(ev PointerEvent) {
	if _, ok := c.state.(Idle); !ok {
		c.abortGesture()
	}
	id, ok := c.surface.ShapeAt(ev.Pos)
	if !ok || c.editor == nil {
		return
	}
	sh, ok := c.model.Shape(id)
	if !ok {
		return
	}
	c.log.Debug("edit label", "shape", id)
	c.editor.StartEditing(sh, diagram.LabelProp)
}

// CommitEdit stores the result of an inline edit as an undoable property
// change. Unchanged values record nothing.
func (c *Controller) CommitEdit(shapeID, field, value string) {
	sh, ok := c.model.Shape(shapeID)
	if !ok {
		c.log.Debug("edit target gone", "shape", shapeID)
		return
	}
	if old, had := sh.Props[field]; had && old == value {
		return
	}
	if err := c.history.Execute(command.NewSetProperty(sh, field, value)); err != nil {
		c.log.Error("set property", "shape", shapeID, "field", field, "err", err)
		return
	}
	c.surface.Refresh(shapeID)
}

// Undo reverts the last command. It does nothing mid-gesture.
func (c *Controller) Undo() bool {
	return c.step("undo", c.history.Undo)
}

// Redo re-applies the last undone command. It does nothing mid-gesture.
func (c *Controller) Redo() bool {
	return c.step("redo", c.history.Redo)
}

func (c *Controller) step(name string, fn func() (bool, error)) bool {
	if _, ok := c.state.(Idle); !ok {
		return false
	}
	ok, err := fn()
	if err != nil {
		c.log.Error(name, "err", err)
		c.notify.Notify(Diagnostic{Level: LevelError, Message: err.Error()})
	}
	c.sel.Prune(c.model)
	c.refreshAll()
	return ok
}

func (c *Controller) refreshAll() {
	shapes := c.model.Shapes()
	ids := make([]string, len(shapes))
	for i, s := range shapes {
		ids[i] = s.ID
	}
	c.surface.Refresh(ids...)
}

// Preview describes the rubber-band feedback of the current gesture.
func (c *Controller) Preview() Preview {
	switch s := c.state.(type) {
	case *Connecting:
		src, ok := c.model.Shape(s.SourceID)
		if !ok {
			return Preview{}
		}
		return Preview{Active: true, From: src.Frame.Center(), To: s.Pointer}
	case *DraggingEndpoint:
		conn, ok := c.model.Connection(s.ConnID)
		if !ok {
			return Preview{}
		}
		from, to, ok := c.model.Route(conn)
		if !ok {
			return Preview{}
		}
		fixed := from
		if s.End == diagram.EndSource {
			fixed = to
		}
		p := Preview{Active: true, From: fixed, To: s.Pointer, Candidate: s.Candidate}
		if s.Candidate != "" {
			v := c.validateEndpoint(s, conn, s.Candidate)
			p.Verdict = &v
		}
		return p
	}
	return Preview{}
}

func (c *Controller) hitShapeID(h scene.Hit) (string, bool) {
	switch h.Role {
	case scene.RoleShape, scene.RoleConnectionPoint, scene.RoleResizeHandle:
		return h.ID, true
	}
	return "", false
}
