// Package graphmodel provides a generic spatial graph with positioned nodes,
// identified links, stable z-order iteration, and hit testing.
package graphmodel

import "github.com/wesen/diagrail/pkg/geom"

// Spatial is the minimal interface for a positioned, sized element.
type Spatial interface {
	Bounds() geom.Rect
}

// Linked is the minimal interface for a link between two node identities.
type Linked interface {
	Ends() (from, to string)
}

// CenterOf returns the center point of a Spatial element.
func CenterOf(s Spatial) geom.Point {
	return s.Bounds().Center()
}
