package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesen/diagrail/internal/ui"
)

// newEditCommand creates the edit command
func newEditCommand(a *app) *cobra.Command {
	var pluginName string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the diagram editor",
		Long: `Open the diagram editor on an empty canvas.

Tools:
  s select (drag to move, handles to resize, shift/ctrl-click to multi-select)
  p pan    x delete    plus the shape and connector keys of the diagram type

Keys:
  ctrl+z undo    ctrl+shift+z / ctrl+y redo    delete remove selection
  enter edit label    esc abort    arrows pan    q quit

Examples:
  # Flowchart (the default diagram type)
  diagrail edit

  # Sequence diagram with debug logs
  diagrail edit --plugin sequence --debug --log-file /tmp/diagrail.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			name := pluginName
			if name == "" {
				name = a.cfg.Plugin
			}
			p, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			opts, err := a.cfg.Interaction()
			if err != nil {
				return fmt.Errorf("invalid keymap: %w", err)
			}

			m, err := ui.New(ui.Options{
				Plugin:          p,
				Interaction:     opts,
				HistoryCapacity: a.cfg.HistoryCapacity,
				UnitsPerCol:     a.cfg.UnitsPerCol,
				UnitsPerRow:     a.cfg.UnitsPerRow,
				Logger:          a.logger.With("plugin", p.Name()),
			})
			if err != nil {
				return fmt.Errorf("failed to start editor: %w", err)
			}
			a.logger.Info("starting editor", "plugin", p.Name(), "grid", opts.Grid)
			return a.run(m)
		},
	}

	cmd.Flags().StringVar(&pluginName, "plugin", "", "Diagram type (default from config)")

	return cmd
}
