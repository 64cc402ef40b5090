package scene

import (
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/selection"
)

// Options sizes the hit regions, in world units.
type Options struct {
	// HandleRadius is half the side of the square around each handle anchor.
	HandleRadius float64
	// StrokeTolerance is how far from a connector line a click still hits it.
	StrokeTolerance float64
	// GuideLength extends shapes of the GuideTypes downward by this much as
	// a connection-point guide line.
	GuideLength float64
	GuideTypes  []string
}

// DefaultOptions suits a terminal cell of 5×10 world units.
func DefaultOptions() Options {
	return Options{HandleRadius: 6, StrokeTolerance: 5}
}

// Scene hit-tests a model given the current selection.
type Scene struct {
	model *diagram.Model
	sel   *selection.Set
	opts  Options
	dirty map[string]struct{}
}

// New creates a scene over m. sel may be nil, in which case no handles are
// ever hit.
func New(m *diagram.Model, sel *selection.Set, opts Options) *Scene {
	return &Scene{model: m, sel: sel, opts: opts, dirty: make(map[string]struct{})}
}

// HitTest resolves p in priority order: resize handles of the primary
// selected shape, endpoints of selected connections, shape bodies topmost
// first, connector bodies, then connection-point guides.
func (s *Scene) HitTest(p geom.Point) Hit {
	if h, ok := s.hitHandle(p); ok {
		return h
	}
	if h, ok := s.hitEndpoint(p); ok {
		return h
	}
	if id, ok := s.ShapeAt(p); ok {
		return Hit{Role: RoleShape, ID: id}
	}
	if h, ok := s.hitConnector(p); ok {
		return h
	}
	if h, ok := s.hitGuide(p); ok {
		return h
	}
	return Hit{}
}

// ShapeAt returns the topmost shape under p, skipping excluded ids.
func (s *Scene) ShapeAt(p geom.Point, exclude ...string) (string, bool) {
	sh, ok := s.model.ShapeAt(p, exclude...)
	if !ok {
		return "", false
	}
	return sh.ID, true
}

// Refresh marks shapes, and every connection touching them, as needing a
// redraw.
func (s *Scene) Refresh(shapeIDs ...string) {
	for _, id := range shapeIDs {
		s.dirty[id] = struct{}{}
		for _, c := range s.model.ConnectionsOf(id) {
			s.dirty[c.ID] = struct{}{}
		}
	}
}

// TakeDirty returns and forgets the ids marked since the last call.
func (s *Scene) TakeDirty() []string {
	out := make([]string, 0, len(s.dirty))
	for id := range s.dirty {
		out = append(out, id)
	}
	clear(s.dirty)
	return out
}

// HandleRect is the hit square of handle h on r.
func (s *Scene) HandleRect(r geom.Rect, h geom.Handle) geom.Rect {
	rad := s.opts.HandleRadius
	return geom.CenteredAt(h.Anchor(r), geom.Size{Width: 2 * rad, Height: 2 * rad})
}

// Guide returns the connection-point guide segment of a shape, if its type
// has one.
func (s *Scene) Guide(sh *diagram.Shape) (top, bottom geom.Point, ok bool) {
	if s.opts.GuideLength <= 0 || !s.guided(sh.Type) {
		return geom.Point{}, geom.Point{}, false
	}
	r := sh.Frame
	top = geom.Pt(r.Center().X, r.Y+r.Height)
	return top, top.Add(geom.Pt(0, s.opts.GuideLength)), true
}

func (s *Scene) guided(t string) bool {
	for _, g := range s.opts.GuideTypes {
		if g == t {
			return true
		}
	}
	return false
}

func (s *Scene) hitHandle(p geom.Point) (Hit, bool) {
	if s.sel == nil {
		return Hit{}, false
	}
	id, ok := s.sel.PrimaryShape()
	if !ok {
		return Hit{}, false
	}
	sh, ok := s.model.Shape(id)
	if !ok {
		return Hit{}, false
	}
	for _, h := range geom.Handles {
		if s.HandleRect(sh.Frame, h).Contains(p) {
			return Hit{Role: RoleResizeHandle, ID: id, Handle: h}, true
		}
	}
	return Hit{}, false
}

func (s *Scene) hitEndpoint(p geom.Point) (Hit, bool) {
	if s.sel == nil {
		return Hit{}, false
	}
	for _, cid := range s.sel.Connections() {
		c, ok := s.model.Connection(cid)
		if !ok {
			continue
		}
		from, to, ok := s.model.Route(c)
		if !ok {
			continue
		}
		ds, dt := from.Dist(p), to.Dist(p)
		switch {
		case dt <= s.opts.HandleRadius && dt <= ds:
			return Hit{Role: RoleEndpoint, ID: cid, End: diagram.EndTarget}, true
		case ds <= s.opts.HandleRadius:
			return Hit{Role: RoleEndpoint, ID: cid, End: diagram.EndSource}, true
		}
	}
	return Hit{}, false
}

func (s *Scene) hitConnector(p geom.Point) (Hit, bool) {
	conns := s.model.Connections()
	best, bestDist := "", s.opts.StrokeTolerance
	for i := len(conns) - 1; i >= 0; i-- {
		c := conns[i]
		from, to, ok := s.model.Route(c)
		if !ok {
			continue
		}
		if d := geom.DistToSegment(p, from, to); d <= bestDist {
			best, bestDist = c.ID, d
		}
	}
	if best == "" {
		return Hit{}, false
	}
	return Hit{Role: RoleConnector, ID: best}, true
}

func (s *Scene) hitGuide(p geom.Point) (Hit, bool) {
	shapes := s.model.Shapes()
	for i := len(shapes) - 1; i >= 0; i-- {
		top, bottom, ok := s.Guide(shapes[i])
		if !ok {
			continue
		}
		if geom.DistToSegment(p, top, bottom) <= s.opts.StrokeTolerance {
			return Hit{Role: RoleConnectionPoint, ID: shapes[i].ID}, true
		}
	}
	return Hit{}, false
}
