package interaction

import (
	"fmt"
	"maps"
	"slices"

	"github.com/wesen/diagrail/pkg/plugin"
)

// Keymap maps unmodified keys to tools.
type Keymap map[string]Tool

// DefaultKeymap binds s to select, p to pan and x to the delete tool.
func DefaultKeymap() Keymap {
	return Keymap{
		"s": SelectTool,
		"p": PanTool,
		"x": DeleteTool,
	}
}

// ParseKeymap reads a key → tool-string table, as found in config files.
func ParseKeymap(raw map[string]string) (Keymap, error) {
	k := make(Keymap, len(raw))
	for key, s := range raw {
		t, err := ParseTool(s)
		if err != nil {
			return nil, fmt.Errorf("keymap %q: %w", key, err)
		}
		k[key] = t
	}
	return k, nil
}

// Merge returns a copy of k with o's bindings applied on top.
func (k Keymap) Merge(o Keymap) Keymap {
	out := maps.Clone(k)
	if out == nil {
		out = make(Keymap)
	}
	maps.Copy(out, o)
	return out
}

// WithCatalog adds a plugin's tool shortcuts. Existing bindings win.
func (k Keymap) WithCatalog(c plugin.Catalog) Keymap {
	out := make(Keymap)
	for key, sc := range c.Shortcuts() {
		if sc.Shape {
			out[key] = ShapeTool(sc.Type)
		} else {
			out[key] = ConnectorTool(sc.Type)
		}
	}
	return out.Merge(k)
}

// Keys returns the bound keys in sorted order.
func (k Keymap) Keys() []string {
	return slices.Sorted(maps.Keys(k))
}
