package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesen/diagrail/internal/plugins"
	"github.com/wesen/diagrail/pkg/plugin"
)

// newPluginsCommand creates the plugins list command
func newPluginsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the available diagram types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				p, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == a.cfg.Plugin {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, describe(p))
			}
			return nil
		},
	}
}

// newPluginCommand creates the plugin command group
func newPluginCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Work with scripted diagram types",
	}
	cmd.AddCommand(newPluginCheckCommand(a))
	return cmd
}

// newPluginCheckCommand creates the plugin check subcommand
func newPluginCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse and compile scripted plugin files",
		Long: `Parse each YAML plugin definition and compile its validate expression.
Nothing is evaluated; a file that passes can still reject connections at edit time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				p, err := plugins.LoadScriptedFile(path)
				if err != nil {
					return err
				}
				a.logger.Debug("plugin checked", "path", path, "plugin", p.Name())
				fmt.Fprintf(cmd.OutOrStdout(), "ok %s: %s\n", path, describe(p))
			}
			return nil
		},
	}
}

func describe(p plugin.Plugin) string {
	cat := p.Catalog()
	return fmt.Sprintf("%s  shapes: %s  connectors: %s", p.Name(), types(cat.Shapes), types(cat.Connectors))
}

func types(specs []plugin.ToolSpec) string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Type
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
