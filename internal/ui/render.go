package ui

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/diagrail/internal/interaction"
	"github.com/wesen/diagrail/pkg/cellbuf"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/drawutil"
	"github.com/wesen/diagrail/pkg/geom"
)

// canvasPainter draws one frame of the diagram into a cell buffer.
type canvasPainter struct {
	m   Model
	buf *cellbuf.Buffer
	pal *cellbuf.Palette
}

// buildCanvasLayer renders grid, shapes, connectors, selection handles and
// gesture feedback into a single layer at Z=0.
func buildCanvasLayer(m Model, viewport image.Rectangle) *lipgloss.Layer {
	w, h := viewport.Dx(), viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(0)
	}
	p := paintCanvas(m, w, h)
	return lipgloss.NewLayer(p.buf.Render(p.pal)).
		X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("canvas")
}

func paintCanvas(m Model, w, h int) *canvasPainter {
	p := &canvasPainter{m: m, pal: newPalette()}
	p.buf = cellbuf.New(w, h, p.pal.Key(cellbuf.Ink{FG: hexBG}))
	p.paint()
	return p
}

func (p *canvasPainter) paint() {
	m := p.m
	// The whole frame is redrawn; the scene's dirty set only needs draining.
	m.scene.TakeDirty()

	drawutil.DrawGrid(p.buf, drawutil.Lattice{
		OriginX: m.cam.X,
		OriginY: m.cam.Y,
		CellW:   m.cam.UnitsPerCol,
		CellH:   m.cam.UnitsPerRow,
		Spacing: m.gridSize,
	}, p.pal.Key(cellbuf.Ink{FG: hexGrid}))

	shapes := m.diagram.Shapes()
	for _, sh := range shapes {
		p.guide(sh)
	}
	for _, sh := range shapes {
		p.box(sh)
	}
	for _, conn := range m.diagram.Connections() {
		p.connector(conn)
	}
	for _, sh := range shapes {
		p.label(sh)
	}
	p.selection()
	p.preview(m.ctrl.Preview())
}

func (p *canvasPainter) cell(pt geom.Point) image.Point { return p.m.cam.ToCell(pt) }

func (p *canvasPainter) guide(sh *diagram.Shape) {
	top, bottom, ok := p.m.scene.Guide(sh)
	if !ok {
		return
	}
	a, b := p.cell(top), p.cell(bottom)
	drawutil.Stroke{Line: p.pal.Key(cellbuf.Ink{FG: hexGuide}), Dash: []int{1, 1}}.Draw(p.buf, a.X, a.Y, b.X, b.Y)
}

func (p *canvasPainter) box(sh *diagram.Shape) {
	r := p.m.cam.ToCells(sh.Frame)
	stroke := sh.Style.Stroke
	bold := false
	if p.m.sel.HasShape(sh.ID) {
		stroke, bold = hexSelected, true
	}
	if sh.Style.Fill != "" {
		p.buf.FillRect(r.Min.X+1, r.Min.Y+1, r.Dx()-2, r.Dy()-2, ' ', p.pal.Key(cellbuf.Ink{BG: sh.Style.Fill}))
	}
	p.buf.Box(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), borderFor(sh.Style), p.pal.Key(cellbuf.Ink{FG: stroke, Bold: bold}))
}

func (p *canvasPainter) label(sh *diagram.Shape) {
	r := p.m.cam.ToCells(sh.Frame)
	text := sh.Style.Extra["text"]
	if text == "" {
		text = hexText
	}
	if spec, ok := p.m.plugin.Catalog().Shape(sh.Type); ok && spec.Tag != "" && r.Dx() > 6 {
		p.buf.SetString(r.Min.X+2, r.Min.Y, fmt.Sprintf("[%s]", spec.Tag), p.pal.Key(cellbuf.Ink{FG: sh.Style.Stroke}))
	}
	if r.Dy() < 3 {
		return
	}
	p.buf.SetCentered(r.Min.X+1, r.Min.Y+r.Dy()/2, r.Dx()-2, sh.Label(), p.pal.Key(cellbuf.Ink{FG: text, BG: sh.Style.Fill, Bold: true}))
}

func (p *canvasPainter) connector(conn *diagram.Connection) {
	from, to, ok := p.m.diagram.Route(conn)
	if !ok {
		return
	}
	a, b := p.cell(from), p.cell(to)
	dash, err := drawutil.ParseDash(conn.Style.Dash)
	if err != nil {
		dash = drawutil.PreviewDash
	}
	color := conn.Style.Stroke
	if p.m.sel.HasConnection(conn.ID) {
		color = hexSelected
	}
	head := drawutil.HeadNone
	switch conn.Style.Arrow {
	case diagram.ArrowFilled:
		head = drawutil.HeadFilled
	case diagram.ArrowOpen:
		head = drawutil.HeadOpen
	}
	key := p.pal.Key(cellbuf.Ink{FG: color, Bold: conn.Style.StrokeWidth >= 2})
	drawutil.Stroke{Line: key, Marker: key, Head: head, Dash: dash}.Draw(p.buf, a.X, a.Y, b.X, b.Y)
}

// selection marks the handles of the primary shape and the endpoints of
// selected connections.
func (p *canvasPainter) selection() {
	m := p.m
	handle := p.pal.Key(cellbuf.Ink{FG: hexHandle, Bold: true})
	if id, ok := m.sel.PrimaryShape(); ok {
		if sh, ok := m.diagram.Shape(id); ok {
			for _, h := range geom.Handles {
				c := p.cell(h.Anchor(sh.Frame))
				p.buf.Set(c.X, c.Y, '■', handle)
			}
		}
	}
	for _, id := range m.sel.Connections() {
		conn, ok := m.diagram.Connection(id)
		if !ok {
			continue
		}
		from, to, ok := m.diagram.Route(conn)
		if !ok {
			continue
		}
		for _, pt := range []geom.Point{from, to} {
			c := p.cell(pt)
			p.buf.Set(c.X, c.Y, '●', handle)
		}
	}
}

// preview draws the rubber band of a connect or reconnect gesture, and
// frames the candidate shape green or red by the plugin's verdict.
func (p *canvasPainter) preview(pv interaction.Preview) {
	if !pv.Active {
		return
	}
	color := hexPreview
	if pv.Verdict != nil {
		color = hexAccept
		if !pv.Verdict.Valid {
			color = hexReject
		}
	}
	key := p.pal.Key(cellbuf.Ink{FG: color, Bold: true})
	if pv.Candidate != "" {
		if sh, ok := p.m.diagram.Shape(pv.Candidate); ok {
			r := p.m.cam.ToCells(sh.Frame)
			p.buf.Box(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), lipgloss.ThickBorder(), key)
		}
	}
	a, b := p.cell(pv.From), p.cell(pv.To)
	drawutil.Stroke{Line: key, Dash: drawutil.PreviewDash}.Draw(p.buf, a.X, a.Y, b.X, b.Y)
}
