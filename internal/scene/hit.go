// Package scene is the geometric stand-in for a rendered canvas: it knows
// where shapes, connectors and handles are and answers role-tagged hit
// tests over the live model.
package scene

import (
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
)

// Role tags what a hit region represents.
type Role string

const (
	RoleNone            Role = ""
	RoleShape           Role = "shape"
	RoleConnector       Role = "connector"
	RoleResizeHandle    Role = "resize-handle"
	RoleEndpoint        Role = "connector__endpoint"
	RoleConnectionPoint Role = "connection-point"
)

// Hit is the result of a hit test. ID names the shape (shape, handle,
// connection point) or the connection (connector, endpoint).
type Hit struct {
	Role   Role
	ID     string
	Handle geom.Handle
	End    diagram.End
}

// None reports whether nothing was hit.
func (h Hit) None() bool { return h.Role == RoleNone }

func (h Hit) String() string {
	switch h.Role {
	case RoleNone:
		return "none"
	case RoleResizeHandle:
		return string(h.Role) + ":" + h.ID + ":" + h.Handle.String()
	case RoleEndpoint:
		return string(h.Role) + ":" + h.ID + ":" + h.End.String()
	}
	return string(h.Role) + ":" + h.ID
}
