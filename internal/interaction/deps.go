package interaction

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wesen/diagrail/internal/scene"
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
	"github.com/wesen/diagrail/pkg/selection"
)

// Surface is the rendering side as the controller sees it: role-tagged hit
// regions and a way to ask for redraws.
type Surface interface {
	HitTest(p geom.Point) scene.Hit
	ShapeAt(p geom.Point, exclude ...string) (string, bool)
	Refresh(shapeIDs ...string)
}

// TextEditor begins inline editing of a shape field. The editor reports the
// result through Controller.CommitEdit.
type TextEditor interface {
	StartEditing(s *diagram.Shape, field string)
}

// Panner moves the viewport so content shifts by (dx, dy) world units.
type Panner interface {
	PanBy(dx, dy float64)
}

// IDGenerator mints identities for new shapes and connections.
type IDGenerator interface {
	NewID(prefix string) string
}

// Level ranks a diagnostic.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "info"
}

// Diagnostic is a non-fatal message for the user.
type Diagnostic struct {
	Level   Level
	Message string
}

// Notifier surfaces diagnostics.
type Notifier interface {
	Notify(d Diagnostic)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Diagnostic)

func (f NotifierFunc) Notify(d Diagnostic) { f(d) }

// UUIDs generates ids of the form "<prefix>-<8 hex digits>".
type UUIDs struct{}

func (UUIDs) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// Deps are the collaborators a Controller works with. Model, History,
// Selection, Plugin and Surface are required.
type Deps struct {
	Model     *diagram.Model
	History   *command.History
	Selection *selection.Set
	Tools     *ToolBox
	Plugin    plugin.Plugin
	Surface   Surface
	Editor    TextEditor
	Notifier  Notifier
	IDs       IDGenerator
	Panner    Panner
	Logger    *slog.Logger
}

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("missing dependency")

func (d *Deps) fill() error {
	required := []struct {
		name string
		nil  bool
	}{
		{"model", d.Model == nil},
		{"history", d.History == nil},
		{"selection", d.Selection == nil},
		{"plugin", d.Plugin == nil},
		{"surface", d.Surface == nil},
	}
	for _, r := range required {
		if r.nil {
			return fmt.Errorf("%w: %s", ErrMissingDependency, r.name)
		}
	}
	if d.Tools == nil {
		d.Tools = NewToolBox()
	}
	if d.IDs == nil {
		d.IDs = UUIDs{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Notifier == nil {
		d.Notifier = NotifierFunc(func(Diagnostic) {})
	}
	return nil
}

// Options tune placement and resizing.
type Options struct {
	Grid float64
	// MinSize applies to shapes that carry no minimum of their own.
	MinSize geom.Size
	// FallbackSize is used for catalog entries without a default size.
	FallbackSize geom.Size
	Keymap       Keymap
}

// DefaultOptions returns grid 20, minimum 40×30 and the default keymap.
func DefaultOptions() Options {
	return Options{
		Grid:         geom.DefaultGrid,
		MinSize:      geom.Size{Width: 40, Height: 30},
		FallbackSize: geom.Size{Width: 100, Height: 60},
		Keymap:       DefaultKeymap(),
	}
}
