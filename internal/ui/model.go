// Package ui is the terminal front end of the diagram editor. It owns the
// concrete collaborators of the interaction controller: the camera that
// pans, the inline label editor and the status line that shows
// diagnostics.
package ui

import (
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/diagrail/internal/interaction"
	"github.com/wesen/diagrail/internal/scene"
	"github.com/wesen/diagrail/pkg/command"
	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/geom"
	"github.com/wesen/diagrail/pkg/plugin"
	"github.com/wesen/diagrail/pkg/selection"
)

const (
	panelWidth = 34
	panStep    = 3
	// guideLength is how far below a guided shape its lifeline reaches.
	guideLength = 200
	// doubleClickWindow bounds the gap between clicks of a double click.
	doubleClickWindow = 400 * time.Millisecond
)

// Options configure a Model.
type Options struct {
	Plugin          plugin.Plugin
	Interaction     interaction.Options
	HistoryCapacity int
	UnitsPerCol     float64
	UnitsPerRow     float64
	Logger          *slog.Logger
	// IDs and Clock are replaced in tests.
	IDs   interaction.IDGenerator
	Clock func() time.Time
}

// Model is the bubbletea model of the editor.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	diagram *diagram.Model
	history *command.History
	sel     *selection.Set
	scene   *scene.Scene
	plugin  plugin.Plugin
	ctrl    *interaction.Controller
	cam     *Camera
	editor  *labelEditor
	status  *statusLine
	clicks  *clickTracker
	log     *slog.Logger

	gridSize float64
}

// New wires a fresh, empty diagram to a controller for opts.Plugin.
func New(opts Options) (Model, error) {
	if opts.Plugin == nil {
		return Model{}, errors.New("ui: no plugin")
	}
	if opts.UnitsPerCol <= 0 {
		opts.UnitsPerCol = 5
	}
	if opts.UnitsPerRow <= 0 {
		opts.UnitsPerRow = 10
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Interaction.Grid <= 0 {
		opts.Interaction.Grid = geom.DefaultGrid
	}

	m := Model{
		diagram: diagram.NewModel(),
		sel:     selection.New(),
		plugin:  opts.Plugin,
		cam:     &Camera{UnitsPerCol: opts.UnitsPerCol, UnitsPerRow: opts.UnitsPerRow},
		editor:  &labelEditor{},
		status:  &statusLine{},
		clicks:  &clickTracker{now: opts.Clock, window: doubleClickWindow},
		log:     opts.Logger,

		gridSize: opts.Interaction.Grid,
	}
	m.history = command.NewHistory(m.diagram, opts.HistoryCapacity)
	m.history.OnChange(m.status.clear)

	so := scene.DefaultOptions()
	so.GuideTypes = opts.Plugin.Catalog().GuideTypes()
	if len(so.GuideTypes) > 0 {
		so.GuideLength = guideLength
	}
	m.scene = scene.New(m.diagram, m.sel, so)

	ctrl, err := interaction.New(interaction.Deps{
		Model:     m.diagram,
		History:   m.history,
		Selection: m.sel,
		Plugin:    opts.Plugin,
		Surface:   m.scene,
		Editor:    m.editor,
		Notifier:  m.status,
		IDs:       opts.IDs,
		Panner:    m.cam,
		Logger:    opts.Logger,
	}, opts.Interaction)
	if err != nil {
		return Model{}, err
	}
	m.ctrl = ctrl
	m.editor.commit = ctrl.CommitEdit
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the interaction controller.
func (m Model) Controller() *interaction.Controller { return m.ctrl }

// Diagram exposes the diagram being edited.
func (m Model) Diagram() *diagram.Model { return m.diagram }

// History exposes the command history.
func (m Model) History() *command.History { return m.history }

// Selection exposes the selection.
func (m Model) Selection() *selection.Set { return m.sel }

// Plugin returns the diagram type being edited.
func (m Model) Plugin() plugin.Plugin { return m.plugin }

// Camera exposes the view transform.
func (m Model) Camera() *Camera { return m.cam }

// Status returns the last diagnostic shown in the footer.
func (m Model) Status() (interaction.Diagnostic, bool) { return m.status.last() }

// Editing reports whether the inline label editor is open.
func (m Model) Editing() bool { return m.editor.open }

// statusLine keeps the newest diagnostic for the footer.
type statusLine struct {
	diag interaction.Diagnostic
	set  bool
}

// Notify implements interaction.Notifier.
func (s *statusLine) Notify(d interaction.Diagnostic) {
	s.diag, s.set = d, true
}

func (s *statusLine) last() (interaction.Diagnostic, bool) { return s.diag, s.set }

// clear drops the diagnostic once the diagram changes again.
func (s *statusLine) clear() { s.set = false }
