package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/diagrail/internal/scene"
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
)

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Deps{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestShapeToolPlacesSnappedAndCentered(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.c.SetTool(ShapeTool("box"))
	h.click(103, 57)

	s, ok := h.model.Shape("shape-1")
	require.True(t, ok)
	assert.Equal(t, geom.R(60, 40, 100, 60), s.Frame)
	assert.Equal(t, "Box", s.Label())
	assert.Equal(t, []string{"shape-1"}, h.sel.Shapes())
	assert.Equal(t, SelectTool, h.c.Tool())
	assert.Equal(t, ModeIdle, h.c.Mode())
	assert.Equal(t, 1, h.history.Len())

	assert.True(t, h.c.Undo())
	_, ok = h.model.Shape("shape-1")
	assert.False(t, ok)
	assert.Empty(t, h.sel.Shapes())

	assert.True(t, h.c.Redo())
	s, ok = h.model.Shape("shape-1")
	require.True(t, ok)
	assert.Equal(t, geom.R(60, 40, 100, 60), s.Frame)
}

func TestDragUndoRedoIsExact(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(10.25, 10.5, 100, 50))
	start := a.Position()

	h.c.PointerDown(Pointer(50, 30))
	assert.Equal(t, ModeDragging, h.c.Mode())
	h.c.PointerMove(Pointer(57.3, 41.7))
	h.c.PointerUp(Pointer(63.1, 44.9))

	want := start.Add(geom.Pt(63.1, 44.9).Sub(geom.Pt(50, 30)))
	assert.Equal(t, want, a.Position())
	require.Equal(t, 1, h.history.Len())
	assert.Equal(t, command.KindMoveShapes, h.history.Entries()[0].Kind)

	for i := 0; i < 3; i++ {
		require.True(t, h.c.Undo())
		assert.Equal(t, start, a.Position())
		require.True(t, h.c.Redo())
		assert.Equal(t, want, a.Position())
	}
}

func TestZeroDragRecordsNothing(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))

	h.c.PointerDown(Pointer(50, 30))
	h.c.PointerMove(Pointer(70, 40))
	h.c.PointerUp(Pointer(50, 30))

	assert.Equal(t, 0, h.history.Len())
	assert.Equal(t, []string{"a"}, h.sel.Shapes())
	assert.Equal(t, ModeIdle, h.c.Mode())
}

func TestGroupDragMovesEverySelectedShape(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 60))
	b := h.addShape("b", geom.R(200, 0, 100, 60))

	h.click(50, 30)
	h.click(250, 30, ModShift)
	assert.Equal(t, []string{"a", "b"}, h.sel.Shapes())

	// Pressing on an already-selected shape keeps the group together.
	h.drag(geom.Pt(50, 30), geom.Pt(70, 50))
	assert.Equal(t, []string{"a", "b"}, h.sel.Shapes())
	assert.Equal(t, geom.Pt(20, 20), a.Position())
	assert.Equal(t, geom.Pt(220, 20), b.Position())
	require.Equal(t, 1, h.history.Len())

	h.c.Undo()
	assert.Equal(t, geom.Pt(0, 0), a.Position())
	assert.Equal(t, geom.Pt(200, 0), b.Position())
}

func TestModifierClickTogglesOff(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.click(50, 30)

	h.c.PointerDown(Pointer(50, 30, ModCtrl))
	assert.Equal(t, ModeIdle, h.c.Mode())
	assert.False(t, h.sel.HasShape("a"))
	h.c.PointerUp(Pointer(50, 30))
}

func TestEmptyClickClearsUnlessModified(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.click(50, 30)

	h.click(500, 500, ModShift)
	assert.Equal(t, []string{"a"}, h.sel.Shapes())
	h.click(500, 500)
	assert.True(t, h.sel.Empty())
}

func TestConnectorBodyClickSelectsConnection(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.addShape("b", geom.R(200, 0, 100, 60))
	h.addConn("ab", "a", "b")

	h.click(150, 30)
	assert.Equal(t, []string{"ab"}, h.sel.Connections())
	assert.Empty(t, h.sel.Shapes())
	assert.Equal(t, ModeIdle, h.c.Mode())
}

func TestResizeSouthEast(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(10, 10, 100, 50))
	h.click(50, 30)

	h.c.PointerDown(Pointer(110, 60))
	require.Equal(t, ModeResizing, h.c.Mode())
	h.c.PointerMove(Pointer(125, 65))
	h.c.PointerUp(Pointer(140, 70))
	assert.Equal(t, geom.R(10, 10, 130, 60), a.Frame)
	require.Equal(t, 1, h.history.Len())
	assert.Equal(t, command.KindResizeShape, h.history.Entries()[0].Kind)

	h.c.Undo()
	assert.Equal(t, geom.R(10, 10, 100, 50), a.Frame)
	h.c.Redo()
	assert.Equal(t, geom.R(10, 10, 130, 60), a.Frame)
}

func TestResizeSouthEastClamps(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(10, 10, 100, 50))
	h.click(50, 30)

	h.c.PointerDown(Pointer(110, 60))
	h.c.PointerMove(Pointer(20, 60))
	assert.Equal(t, geom.R(10, 10, 40, 50), a.Frame)
	h.c.PointerUp(Pointer(20, 60))
	assert.Equal(t, geom.R(10, 10, 40, 50), a.Frame)
}

func TestResizeNorthWestKeepsOppositeEdge(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(10, 10, 100, 50))
	h.click(50, 30)

	h.c.PointerDown(Pointer(10, 10))
	require.Equal(t, ModeResizing, h.c.Mode())
	for _, p := range []geom.Point{{X: 30, Y: 20}, {X: 90, Y: 45}, {X: 200, Y: 200}} {
		h.c.PointerMove(Pointer(p.X, p.Y))
		assert.GreaterOrEqual(t, a.Frame.Width, 40.0)
		assert.GreaterOrEqual(t, a.Frame.Height, 30.0)
		assert.Equal(t, 110.0, a.Frame.X+a.Frame.Width)
		assert.Equal(t, 60.0, a.Frame.Y+a.Frame.Height)
	}
	h.c.PointerUp(Pointer(200, 200))
	assert.Equal(t, geom.R(70, 30, 40, 30), a.Frame)
}

func TestResizeWithoutChangeRecordsNothing(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(10, 10, 100, 50))
	h.click(50, 30)
	h.click(110, 60)
	assert.Equal(t, 0, h.history.Len())
}

func TestShapeMinSizeOverridesDefault(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 100))
	a.MinSize = geom.Size{Width: 80, Height: 90}
	h.click(50, 50)
	h.drag(geom.Pt(100, 100), geom.Pt(0, 0))
	assert.Equal(t, geom.R(0, 0, 80, 90), a.Frame)
}

func TestSmallCatalogShapeKeepsItsSize(t *testing.T) {
	p := testPlugin(nil)
	p.Tools.Shapes = append(p.Tools.Shapes, plugin.ToolSpec{Type: "dot", Label: "Dot", Size: geom.Size{Width: 20, Height: 20}})
	h := newHarness(t, p)
	h.c.SetTool(ShapeTool("dot"))
	h.click(110, 110)

	s, ok := h.model.Shape("shape-1")
	require.True(t, ok)
	require.Equal(t, geom.R(120, 120, 20, 20), s.Frame)
	assert.Equal(t, geom.Size{Width: 20, Height: 20}, s.MinSize)

	h.drag(geom.Pt(120, 120), geom.Pt(121, 121))
	assert.Equal(t, geom.R(120, 120, 20, 20), s.Frame)
	assert.Equal(t, 1, h.history.Len())

	h.drag(geom.Pt(120, 120), geom.Pt(110, 110))
	assert.Equal(t, geom.R(110, 110, 30, 30), s.Frame)
}

func TestHandleWithoutShapeResetsToIdle(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.surface.hit = &scene.Hit{Role: scene.RoleResizeHandle, ID: "ghost", Handle: geom.HandleSE}
	h.click(10, 10)
	assert.Equal(t, ModeIdle, h.c.Mode())
	assert.Equal(t, 0, h.history.Len())

	h.surface.hit = &scene.Hit{Role: scene.RoleEndpoint, ID: "ghost", End: diagram.EndTarget}
	h.click(10, 10)
	assert.Equal(t, ModeIdle, h.c.Mode())
}

func TestEscapeAbortsDrag(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 60))

	h.c.PointerDown(Pointer(50, 30))
	h.c.PointerMove(Pointer(90, 70))
	assert.Equal(t, geom.Pt(40, 40), a.Position())

	h.c.Key(KeyEvent{Key: "escape"})
	assert.Equal(t, ModeIdle, h.c.Mode())
	assert.Equal(t, geom.Pt(0, 0), a.Position())
	assert.True(t, h.sel.Empty())

	h.c.PointerUp(Pointer(90, 70))
	assert.Equal(t, geom.Pt(0, 0), a.Position())
	assert.Equal(t, 0, h.history.Len())
}

func TestEscapeAbortsResize(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(10, 10, 100, 50))
	h.click(50, 30)
	h.c.PointerDown(Pointer(110, 60))
	h.c.PointerMove(Pointer(150, 90))
	h.c.Key(KeyEvent{Key: "escape"})
	assert.Equal(t, geom.R(10, 10, 100, 50), a.Frame)
	assert.Equal(t, 0, h.history.Len())
}

func TestUndoIgnoredMidGesture(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 60))
	h.drag(geom.Pt(50, 30), geom.Pt(70, 30))

	h.c.PointerDown(Pointer(90, 30))
	h.c.PointerMove(Pointer(110, 30))
	h.c.Key(KeyEvent{Key: "z", Mods: ModCtrl})
	assert.Equal(t, geom.Pt(40, 0), a.Position())
	h.c.PointerUp(Pointer(110, 30))
	assert.Equal(t, 2, h.history.Len())
}

func TestUndoRedoKeys(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 60))
	h.drag(geom.Pt(50, 30), geom.Pt(70, 30))

	h.c.Key(KeyEvent{Key: "z", Mods: ModMeta})
	assert.Equal(t, geom.Pt(0, 0), a.Position())
	h.c.Key(KeyEvent{Key: "z", Mods: ModCtrl | ModShift})
	assert.Equal(t, geom.Pt(20, 0), a.Position())
	h.c.Key(KeyEvent{Key: "z", Mods: ModCtrl})
	h.c.Key(KeyEvent{Key: "y", Mods: ModCtrl})
	assert.Equal(t, geom.Pt(20, 0), a.Position())
}

func TestNewCommandAfterUndoTruncatesRedo(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 60))
	h.drag(geom.Pt(50, 30), geom.Pt(70, 30))
	h.drag(geom.Pt(70, 30), geom.Pt(90, 30))
	h.drag(geom.Pt(90, 30), geom.Pt(110, 30))
	h.c.Undo()
	h.c.Undo()
	assert.Equal(t, geom.Pt(20, 0), a.Position())

	h.drag(geom.Pt(70, 30), geom.Pt(70, 90))
	assert.Equal(t, 2, h.history.Len())
	assert.False(t, h.c.Redo())
	assert.Equal(t, geom.Pt(20, 60), a.Position())
}

func TestDeleteKeyRemovesSelection(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.addShape("b", geom.R(200, 0, 100, 60))
	h.addShape("c", geom.R(400, 0, 100, 60))
	h.addConn("ab", "a", "b")
	h.addConn("bc", "b", "c")

	h.click(50, 30)
	h.click(450, 30, ModShift)
	h.c.Key(KeyEvent{Key: "delete"})

	assert.Len(t, h.model.Shapes(), 1)
	assert.Empty(t, h.model.Connections())
	assert.True(t, h.sel.Empty())
	assert.Equal(t, 2, h.history.Len())

	h.c.Undo()
	h.c.Undo()
	assert.Len(t, h.model.Shapes(), 3)
	assert.Len(t, h.model.Connections(), 2)
}

func TestBackspaceRemovesSelectedConnection(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.addShape("b", geom.R(200, 0, 100, 60))
	h.addConn("ab", "a", "b")

	h.click(150, 30)
	h.c.Key(KeyEvent{Key: "backspace"})
	assert.Empty(t, h.model.Connections())
	assert.Len(t, h.model.Shapes(), 2)
	assert.Equal(t, command.KindRemoveConnection, h.history.Entries()[0].Kind)
}

func TestToolShortcuts(t *testing.T) {
	h := newHarness(t, testPlugin(nil))

	h.c.Key(KeyEvent{Key: "b"})
	assert.Equal(t, ShapeTool("box"), h.c.Tool())
	h.c.Key(KeyEvent{Key: "f"})
	assert.Equal(t, ConnectorTool("flow"), h.c.Tool())
	h.c.Key(KeyEvent{Key: "p", Mods: ModCtrl})
	assert.Equal(t, ConnectorTool("flow"), h.c.Tool())
	h.c.Key(KeyEvent{Key: "p"})
	assert.Equal(t, PanTool, h.c.Tool())
	h.c.Key(KeyEvent{Key: "s"})
	assert.Equal(t, SelectTool, h.c.Tool())
}

func TestPanToolMovesViewportOnly(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.c.SetTool(PanTool)

	h.c.PointerDown(Pointer(50, 30))
	assert.Equal(t, ModePanning, h.c.Mode())
	h.c.PointerMove(Pointer(60, 35))
	h.c.PointerUp(Pointer(60, 35))

	assert.Equal(t, []geom.Point{{X: 10, Y: 5}}, h.panner.calls)
	assert.Equal(t, ModeIdle, h.c.Mode())
	assert.Equal(t, 0, h.history.Len())
	a, _ := h.model.Shape("a")
	assert.Equal(t, geom.Pt(0, 0), a.Position())
}

func TestDeleteTool(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	h.addShape("b", geom.R(200, 0, 100, 60))
	h.addShape("c", geom.R(400, 0, 100, 60))
	h.addConn("ab", "a", "b")
	h.addConn("bc", "b", "c")
	h.c.SetTool(DeleteTool)

	h.click(350, 30)
	assert.Equal(t, 1, len(h.model.Connections()))
	h.click(50, 30)
	assert.Len(t, h.model.Shapes(), 2)
	assert.Empty(t, h.model.Connections())
	h.click(900, 900)
	assert.Equal(t, 2, h.history.Len())
	assert.Equal(t, DeleteTool, h.c.Tool())
}

func TestDoubleClickEditsLabel(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	a := h.addShape("a", geom.R(0, 0, 100, 60))

	h.c.DoubleClick(Pointer(50, 30))
	assert.Equal(t, "a", h.editor.shape)
	assert.Equal(t, diagram.LabelProp, h.editor.field)

	h.c.CommitEdit("a", diagram.LabelProp, "a")
	assert.Equal(t, 0, h.history.Len())

	h.c.CommitEdit("a", diagram.LabelProp, "Hello")
	assert.Equal(t, "Hello", a.Label())
	assert.Equal(t, 1, h.history.Len())
	h.c.Undo()
	assert.Equal(t, "a", a.Label())

	h.c.CommitEdit("ghost", diagram.LabelProp, "x")
	assert.Equal(t, 1, h.history.Len())
}

func TestDoubleClickOnEmptyDoesNothing(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.c.DoubleClick(Pointer(50, 30))
	assert.Empty(t, h.editor.shape)
}

func TestRightButtonIgnored(t *testing.T) {
	h := newHarness(t, testPlugin(nil))
	h.addShape("a", geom.R(0, 0, 100, 60))
	ev := Pointer(50, 30)
	ev.Button = ButtonRight
	h.c.PointerDown(ev)
	assert.Equal(t, ModeIdle, h.c.Mode())
	assert.True(t, h.sel.Empty())
}
