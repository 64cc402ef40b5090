package graphmodel

import (
	"errors"
	"fmt"

	"github.com/wesen/diagrail/pkg/geom"
)

var (
	// ErrDuplicate is returned when an identity is already in use.
	ErrDuplicate = errors.New("duplicate id")
	// ErrMissing is returned when an identity is unknown.
	ErrMissing = errors.New("no such id")
)

// Graph is a generic spatial graph. Nodes and links are both keyed by
// string identity and iterate in insertion order; for nodes that order
// doubles as z-order (last is topmost).
type Graph[N Spatial, E Linked] struct {
	nodes     map[string]N
	nodeOrder []string
	links     map[string]E
	linkOrder []string
}

// New creates an empty graph.
func New[N Spatial, E Linked]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes: make(map[string]N),
		links: make(map[string]E),
	}
}

// ── Node operations ──

// AddNode appends a node on top of the z-order.
func (g *Graph[N, E]) AddNode(id string, n N) error {
	return g.InsertNode(len(g.nodeOrder), id, n)
}

// InsertNode places a node at position index in the z-order. An index past
// the end appends.
func (g *Graph[N, E]) InsertNode(index int, id string, n N) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("node %s: %w", id, ErrDuplicate)
	}
	g.nodes[id] = n
	g.nodeOrder = insertAt(g.nodeOrder, index, id)
	return nil
}

// Node returns the node with the given id.
func (g *Graph[N, E]) Node(id string) (N, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIndex returns the z-order position of id, or -1.
func (g *Graph[N, E]) NodeIndex(id string) int {
	return indexOf(g.nodeOrder, id)
}

// Nodes returns all nodes in z-order.
func (g *Graph[N, E]) Nodes() []N {
	result := make([]N, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		result = append(result, g.nodes[id])
	}
	return result
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodeOrder) }

// LinkCount returns the number of links.
func (g *Graph[N, E]) LinkCount() int { return len(g.linkOrder) }

// NodeIDs returns all node ids in z-order.
func (g *Graph[N, E]) NodeIDs() []string {
	return append([]string(nil), g.nodeOrder...)
}

// RemoveNode deletes a node and returns it with its former z-order index.
// Links are left alone; callers that need a cascade use LinksOf first.
func (g *Graph[N, E]) RemoveNode(id string) (N, int, error) {
	n, ok := g.nodes[id]
	if !ok {
		var zero N
		return zero, -1, fmt.Errorf("node %s: %w", id, ErrMissing)
	}
	idx := indexOf(g.nodeOrder, id)
	delete(g.nodes, id)
	g.nodeOrder = removeAt(g.nodeOrder, idx)
	return n, idx, nil
}

// ── Link operations ──

// AddLink appends a link.
func (g *Graph[N, E]) AddLink(id string, e E) error {
	return g.InsertLink(len(g.linkOrder), id, e)
}

// InsertLink places a link at position index in iteration order. Both ends
// must name existing nodes.
func (g *Graph[N, E]) InsertLink(index int, id string, e E) error {
	if _, ok := g.links[id]; ok {
		return fmt.Errorf("link %s: %w", id, ErrDuplicate)
	}
	from, to := e.Ends()
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("link %s source %s: %w", id, from, ErrMissing)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("link %s target %s: %w", id, to, ErrMissing)
	}
	g.links[id] = e
	g.linkOrder = insertAt(g.linkOrder, index, id)
	return nil
}

// Link returns the link with the given id.
func (g *Graph[N, E]) Link(id string) (E, bool) {
	e, ok := g.links[id]
	return e, ok
}

// LinkIndex returns the iteration position of a link, or -1.
func (g *Graph[N, E]) LinkIndex(id string) int {
	return indexOf(g.linkOrder, id)
}

// Links returns all links in insertion order.
func (g *Graph[N, E]) Links() []E {
	result := make([]E, 0, len(g.linkOrder))
	for _, id := range g.linkOrder {
		result = append(result, g.links[id])
	}
	return result
}

// RemoveLink deletes a link and returns it with its former index.
func (g *Graph[N, E]) RemoveLink(id string) (E, int, error) {
	e, ok := g.links[id]
	if !ok {
		var zero E
		return zero, -1, fmt.Errorf("link %s: %w", id, ErrMissing)
	}
	idx := indexOf(g.linkOrder, id)
	delete(g.links, id)
	g.linkOrder = removeAt(g.linkOrder, idx)
	return e, idx, nil
}

// LinksOf returns the ids of links touching the node, in insertion order.
func (g *Graph[N, E]) LinksOf(nodeID string) []string {
	var result []string
	for _, id := range g.linkOrder {
		from, to := g.links[id].Ends()
		if from == nodeID || to == nodeID {
			result = append(result, id)
		}
	}
	return result
}

// OutLinks returns links originating from the given node.
func (g *Graph[N, E]) OutLinks(nodeID string) []E {
	var result []E
	for _, id := range g.linkOrder {
		if from, _ := g.links[id].Ends(); from == nodeID {
			result = append(result, g.links[id])
		}
	}
	return result
}

// InLinks returns links terminating at the given node.
func (g *Graph[N, E]) InLinks(nodeID string) []E {
	var result []E
	for _, id := range g.linkOrder {
		if _, to := g.links[id].Ends(); to == nodeID {
			result = append(result, g.links[id])
		}
	}
	return result
}

// ── Spatial queries ──

// HitTest returns the id of the topmost node containing the point, skipping
// any id listed in exclude.
func (g *Graph[N, E]) HitTest(pt geom.Point, exclude ...string) (string, bool) {
	for i := len(g.nodeOrder) - 1; i >= 0; i-- {
		id := g.nodeOrder[i]
		if contains(exclude, id) {
			continue
		}
		if g.nodes[id].Bounds().Contains(pt) {
			return id, true
		}
	}
	return "", false
}

// NodesInRect returns the ids of all nodes whose bounds intersect r, in
// z-order.
func (g *Graph[N, E]) NodesInRect(r geom.Rect) []string {
	var result []string
	for _, id := range g.nodeOrder {
		if g.nodes[id].Bounds().Overlaps(r) {
			result = append(result, id)
		}
	}
	return result
}

func insertAt(s []string, index int, id string) []string {
	if index < 0 {
		index = 0
	}
	if index >= len(s) {
		return append(s, id)
	}
	s = append(s, "")
	copy(s[index+1:], s[index:])
	s[index] = id
	return s
}

func removeAt(s []string, index int) []string {
	return append(s[:index], s[index+1:]...)
}

func indexOf(s []string, id string) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}
	return -1
}

func contains(s []string, id string) bool {
	return indexOf(s, id) >= 0
}
