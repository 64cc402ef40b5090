// Package plugins provides the built-in diagram types and loads scripted
// ones from YAML files.
package plugins

import (
	"errors"
	"fmt"

	"github.com/wesen/diagrail/pkg/plugin"
)

var (
	ErrUnknownPlugin   = errors.New("unknown plugin")
	ErrDuplicatePlugin = errors.New("plugin already registered")
)

// Registry maps plugin names to plugins, keeping registration order.
type Registry struct {
	byName map[string]plugin.Plugin
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]plugin.Plugin)}
}

// Builtin returns a registry holding the flowchart and sequence plugins.
func Builtin() *Registry {
	r := NewRegistry()
	_ = r.Register(Flowchart())
	_ = r.Register(Sequence())
	return r
}

// Register adds p under its name.
func (r *Registry) Register(p plugin.Plugin) error {
	name := p.Name()
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlugin, name)
	}
	r.byName[name] = p
	r.order = append(r.order, name)
	return nil
}

// Lookup finds a plugin by name.
func (r *Registry) Lookup(name string) (plugin.Plugin, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPlugin, name, r.order)
	}
	return p, nil
}

// Names lists registered plugins in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// LoadFiles loads and registers scripted plugins.
func (r *Registry) LoadFiles(paths ...string) error {
	for _, path := range paths {
		p, err := LoadScriptedFile(path)
		if err != nil {
			return err
		}
		if err := r.Register(p); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
