package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/selection"
)

func fixture(t *testing.T) (*Scene, *selection.Set) {
	t.Helper()
	m := diagram.NewModel()
	require.NoError(t, m.AddShape(&diagram.Shape{ID: "a", Type: "box", Frame: geom.R(0, 0, 100, 60)}))
	require.NoError(t, m.AddShape(&diagram.Shape{ID: "b", Type: "box", Frame: geom.R(200, 0, 100, 60)}))
	require.NoError(t, m.AddShape(&diagram.Shape{ID: "l", Type: "lifeline", Frame: geom.R(400, 0, 80, 40)}))
	require.NoError(t, m.AddConnection(&diagram.Connection{ID: "ab", Type: "flow", Source: "a", Target: "b"}))

	sel := selection.New()
	sel.Attach(m)
	opts := DefaultOptions()
	opts.GuideLength = 200
	opts.GuideTypes = []string{"lifeline"}
	return New(m, sel, opts), sel
}

func TestHitTestBodies(t *testing.T) {
	s, _ := fixture(t)

	assert.Equal(t, Hit{Role: RoleShape, ID: "a"}, s.HitTest(geom.Pt(50, 30)))
	assert.Equal(t, Hit{Role: RoleConnector, ID: "ab"}, s.HitTest(geom.Pt(150, 30)))
	assert.Equal(t, Hit{Role: RoleConnector, ID: "ab"}, s.HitTest(geom.Pt(150, 34)))
	assert.True(t, s.HitTest(geom.Pt(150, 40)).None())
	assert.Equal(t, Hit{Role: RoleConnectionPoint, ID: "l"}, s.HitTest(geom.Pt(442, 150)))
	assert.True(t, s.HitTest(geom.Pt(442, 300)).None())
}

func TestHitTestHandlesOnlyForPrimaryShape(t *testing.T) {
	s, sel := fixture(t)

	assert.Equal(t, Hit{Role: RoleShape, ID: "a"}, s.HitTest(geom.Pt(100, 60)))

	sel.SelectShape("a")
	assert.Equal(t, Hit{Role: RoleResizeHandle, ID: "a", Handle: geom.HandleSE}, s.HitTest(geom.Pt(100, 60)))
	assert.Equal(t, Hit{Role: RoleResizeHandle, ID: "a", Handle: geom.HandleSE}, s.HitTest(geom.Pt(104, 64)))
	assert.Equal(t, Hit{Role: RoleResizeHandle, ID: "a", Handle: geom.HandleN}, s.HitTest(geom.Pt(50, -3)))
	assert.Equal(t, Hit{Role: RoleShape, ID: "a"}, s.HitTest(geom.Pt(50, 30)))
	assert.Equal(t, Hit{Role: RoleShape, ID: "b"}, s.HitTest(geom.Pt(300, 60)))
}

func TestHitTestEndpointsOfSelectedConnection(t *testing.T) {
	s, sel := fixture(t)

	assert.Equal(t, Hit{Role: RoleConnector, ID: "ab"}, s.HitTest(geom.Pt(197, 30)))

	sel.SelectConnection("ab")
	assert.Equal(t, Hit{Role: RoleEndpoint, ID: "ab", End: diagram.EndTarget}, s.HitTest(geom.Pt(197, 30)))
	assert.Equal(t, Hit{Role: RoleEndpoint, ID: "ab", End: diagram.EndSource}, s.HitTest(geom.Pt(103, 30)))
	assert.Equal(t, Hit{Role: RoleConnector, ID: "ab"}, s.HitTest(geom.Pt(150, 30)))
}

func TestShapeAtExcludes(t *testing.T) {
	s, _ := fixture(t)
	id, ok := s.ShapeAt(geom.Pt(50, 30))
	assert.True(t, ok)
	assert.Equal(t, "a", id)
	_, ok = s.ShapeAt(geom.Pt(50, 30), "a")
	assert.False(t, ok)
}

func TestRefreshMarksConnections(t *testing.T) {
	s, _ := fixture(t)
	s.Refresh("a")
	assert.ElementsMatch(t, []string{"a", "ab"}, s.TakeDirty())
	assert.Empty(t, s.TakeDirty())
}

func TestHitString(t *testing.T) {
	assert.Equal(t, "none", Hit{}.String())
	assert.Equal(t, "shape:a", Hit{Role: RoleShape, ID: "a"}.String())
	assert.Equal(t, "resize-handle:a:se", Hit{Role: RoleResizeHandle, ID: "a", Handle: geom.HandleSE}.String())
	assert.Equal(t, "connector__endpoint:ab:target", Hit{Role: RoleEndpoint, ID: "ab", End: diagram.EndTarget}.String())
}
