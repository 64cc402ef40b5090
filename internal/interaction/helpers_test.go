package interaction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wesen/diagrail/internal/scene"
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
	"github.com/wesen/diagrail/pkg/selection"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

type recordingEditor struct {
	shape string
	field string
}

func (e *recordingEditor) StartEditing(s *diagram.Shape, field string) {
	e.shape, e.field = s.ID, field
}

type recordingPanner struct{ calls []geom.Point }

func (p *recordingPanner) PanBy(dx, dy float64) { p.calls = append(p.calls, geom.Pt(dx, dy)) }

// stubSurface answers HitTest with a fixed hit when set.
type stubSurface struct {
	Surface
	hit *scene.Hit
}

func (s *stubSurface) HitTest(p geom.Point) scene.Hit {
	if s.hit != nil {
		return *s.hit
	}
	return s.Surface.HitTest(p)
}

type harness struct {
	t       *testing.T
	c       *Controller
	model   *diagram.Model
	history *command.History
	sel     *selection.Set
	scene   *scene.Scene
	surface *stubSurface
	editor  *recordingEditor
	panner  *recordingPanner
	notes   []Diagnostic
}

func testPlugin(rule plugin.Validator) *plugin.Static {
	return &plugin.Static{
		PluginName: "test",
		Tools: plugin.Catalog{
			Shapes: []plugin.ToolSpec{
				{Type: "box", Label: "Box", Size: geom.Size{Width: 100, Height: 60}, Shortcut: "b"},
				{Type: "lifeline", Label: "Lifeline", Size: geom.Size{Width: 80, Height: 40}},
			},
			Connectors: []plugin.ToolSpec{
				{Type: "flow", Label: "Flow", Shortcut: "f", Style: diagram.Style{Stroke: "#0f0", Arrow: diagram.ArrowFilled}},
				{Type: "loop", Label: "Loop", Self: true},
			},
		},
		Rule: rule,
	}
}

func newHarness(t *testing.T, p plugin.Plugin, sceneOpts ...scene.Options) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		model:  diagram.NewModel(),
		sel:    selection.New(),
		editor: &recordingEditor{},
		panner: &recordingPanner{},
	}
	h.history = command.NewHistory(h.model, 0)
	opts := scene.DefaultOptions()
	if len(sceneOpts) > 0 {
		opts = sceneOpts[0]
	}
	h.scene = scene.New(h.model, h.sel, opts)
	h.surface = &stubSurface{Surface: h.scene}

	c, err := New(Deps{
		Model:     h.model,
		History:   h.history,
		Selection: h.sel,
		Plugin:    p,
		Surface:   h.surface,
		Editor:    h.editor,
		Notifier:  NotifierFunc(func(d Diagnostic) { h.notes = append(h.notes, d) }),
		IDs:       &seqIDs{},
		Panner:    h.panner,
	}, DefaultOptions())
	require.NoError(t, err)
	h.c = c
	return h
}

func (h *harness) addShape(id string, r geom.Rect) *diagram.Shape {
	h.t.Helper()
	s := &diagram.Shape{ID: id, Type: "box", Frame: r, Props: map[string]string{diagram.LabelProp: id}}
	require.NoError(h.t, h.model.AddShape(s))
	return s
}

func (h *harness) addConn(id, src, dst string) *diagram.Connection {
	h.t.Helper()
	c := &diagram.Connection{ID: id, Type: "flow", Source: src, Target: dst}
	require.NoError(h.t, h.model.AddConnection(c))
	return c
}

func (h *harness) click(x, y float64, mods ...Modifiers) {
	ev := Pointer(x, y, mods...)
	h.c.PointerDown(ev)
	h.c.PointerUp(ev)
}

func (h *harness) drag(from, to geom.Point) {
	h.c.PointerDown(Pointer(from.X, from.Y))
	h.c.PointerMove(Pointer((from.X+to.X)/2, (from.Y+to.Y)/2))
	h.c.PointerUp(Pointer(to.X, to.Y))
}
