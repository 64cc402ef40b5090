package interaction

import (
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
)

// Mode names a controller state.
type Mode string

const (
	ModeIdle             Mode = "idle"
	ModeDragging         Mode = "dragging"
	ModeResizing         Mode = "resizing"
	ModeConnecting       Mode = "connecting"
	ModeDraggingEndpoint Mode = "dragging-endpoint"
	ModePanning          Mode = "panning"
)

// State is the controller's current mode together with the data that mode
// needs. Only the types in this file implement it.
type State interface {
	Mode() Mode
	state()
}

// Idle waits for the next gesture.
type Idle struct{}

// Dragging moves the selected shapes with the pointer.
type Dragging struct {
	Origin geom.Point
	// Starts holds each dragged shape's position at pointer-down; To is
	// kept current while the drag runs.
	Starts []command.Move
}

// Resizing drags one handle of one shape.
type Resizing struct {
	ShapeID string
	Handle  geom.Handle
	Origin  geom.Point
	Before  geom.Rect
}

// Connecting has a source picked and waits for the target click.
type Connecting struct {
	SourceID  string
	Connector string
	Pointer   geom.Point
}

// DraggingEndpoint moves one end of an existing connection.
type DraggingEndpoint struct {
	ConnID    string
	End       diagram.End
	Before    diagram.Attachment
	Fixed     string
	Candidate string
	Pointer   geom.Point
}

// Panning scrolls the viewport while the pointer is held.
type Panning struct {
	Origin geom.Point
}

func (Idle) Mode() Mode              { return ModeIdle }
func (*Dragging) Mode() Mode         { return ModeDragging }
func (*Resizing) Mode() Mode         { return ModeResizing }
func (*Connecting) Mode() Mode       { return ModeConnecting }
func (*DraggingEndpoint) Mode() Mode { return ModeDraggingEndpoint }
func (*Panning) Mode() Mode          { return ModePanning }

func (Idle) state()              {}
func (*Dragging) state()         {}
func (*Resizing) state()         {}
func (*Connecting) state()       {}
func (*DraggingEndpoint) state() {}
func (*Panning) state()          {}

// Preview is the transient feedback of the current gesture: the rubber-band
// line, and for endpoint drags the shape that would receive the end.
type Preview struct {
	Active    bool
	From, To  geom.Point
	Candidate string
	Verdict   *plugin.Verdict
}
