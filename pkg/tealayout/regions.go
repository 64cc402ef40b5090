// Package tealayout carves a terminal into named regions and builds the
// chrome layers (toolbar, footer, panels, modals) of a Bubbletea v2 +
// Lipgloss v2 screen. A Layout also maps mouse positions back into the
// region they hit.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Contains reports whether the screen point p lies in the region.
func (r Region) Contains(p image.Point) bool { return p.In(r.Rect) }

// Local converts a screen point to region-relative coordinates.
func (r Region) Local(p image.Point) image.Point { return p.Sub(r.Rect.Min) }

// Layout is the set of regions computed for one terminal size.
type Layout struct {
	Size    image.Point
	regions []Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	for _, r := range l.regions {
		if r.Name == name {
			return r
		}
	}
	return Region{}
}

// Locate converts screen point p into coordinates local to the named
// region. inside is false when p lies outside it; the local point is still
// returned so drags can continue past the region edge.
func (l Layout) Locate(name string, p image.Point) (local image.Point, inside bool) {
	r := l.Get(name)
	return r.Local(p), r.Contains(p)
}

// LayoutBuilder carves regions off the edges of the free area, in call
// order, and gives what is left to Remaining.
type LayoutBuilder struct {
	size    image.Point
	free    image.Rectangle
	regions []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{
		size: image.Pt(termW, termH),
		free: image.Rect(0, 0, max(termW, 0), max(termH, 0)),
	}
}

// TopFixed reserves rows at the top of the free area.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	n := clampSpan(height, b.free.Dy())
	r := b.free
	r.Max.Y = r.Min.Y + n
	b.free.Min.Y += n
	return b.add(name, r)
}

// BottomFixed reserves rows at the bottom of the free area.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	n := clampSpan(height, b.free.Dy())
	r := b.free
	r.Min.Y = r.Max.Y - n
	b.free.Max.Y -= n
	return b.add(name, r)
}

// RightFixed reserves columns at the right of the free area, spanning the
// rows not yet taken by top and bottom regions.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	n := clampSpan(width, b.free.Dx())
	r := b.free
	r.Min.X = r.Max.X - n
	b.free.Max.X -= n
	return b.add(name, r)
}

// Remaining assigns whatever is left after the fixed regions.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	return b.add(name, b.free)
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) *LayoutBuilder {
	if r.Empty() {
		r = image.Rectangle{}
	}
	b.regions = append(b.regions, Region{Name: name, Rect: r})
	return b
}

func clampSpan(want, avail int) int {
	return max(min(want, avail), 0)
}

// Build returns the computed Layout.
func (b *LayoutBuilder) Build() Layout {
	return Layout{Size: b.size, regions: append([]Region(nil), b.regions...)}
}
