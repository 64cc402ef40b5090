package plugins

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dop251/goja"
	"gopkg.in/yaml.v3"

	"github.com/wesen/diagrail/pkg/diagram"
	"github.com/wesen/diagrail/pkg/plugin"
)

// DefaultRuleTimeout bounds one evaluation of a scripted rule.
const DefaultRuleTimeout = 100 * time.Millisecond

// Definition is the YAML form of a scripted plugin.
//
//	name: orgchart
//	positioned: false
//	shapes:
//	  - {type: person, label: Person, width: 120, height: 30, shortcut: "1"}
//	connectors:
//	  - {type: reports, label: Reports to, shortcut: r, style: {arrow: filled}}
//	validate: |
//	  source.type === target.type || {valid: false, message: "mixed types"}
//
// validate is a JavaScript expression evaluated with source, target and
// connector bound. It may yield a boolean or an object {valid, message}.
type Definition struct {
	Name       string            `yaml:"name"`
	Positioned bool              `yaml:"positioned"`
	Shapes     []plugin.ToolSpec `yaml:"shapes"`
	Connectors []plugin.ToolSpec `yaml:"connectors"`
	Validate   string            `yaml:"validate"`
}

// Scripted is a plugin whose connection rule runs in an embedded JavaScript
// runtime. It is not safe for concurrent use.
type Scripted struct {
	plugin.Static
	program *goja.Program
	vm      *goja.Runtime
	timeout time.Duration
}

var _ plugin.Plugin = (*Scripted)(nil)

// ParseDefinition decodes and checks a YAML definition.
func ParseDefinition(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("decode plugin: %w", err)
	}
	if def.Name == "" {
		return Definition{}, errors.New("plugin has no name")
	}
	if len(def.Shapes) == 0 {
		return Definition{}, fmt.Errorf("plugin %s: no shapes", def.Name)
	}
	seen := make(map[string]bool)
	for _, specs := range [][]plugin.ToolSpec{def.Shapes, def.Connectors} {
		for _, s := range specs {
			if s.Type == "" {
				return Definition{}, fmt.Errorf("plugin %s: tool without type", def.Name)
			}
			if seen[s.Type] {
				return Definition{}, fmt.Errorf("plugin %s: duplicate type %q", def.Name, s.Type)
			}
			seen[s.Type] = true
		}
	}
	return def, nil
}

// NewScripted compiles a definition.
func NewScripted(def Definition) (*Scripted, error) {
	s := &Scripted{
		Static: plugin.Static{
			PluginName: def.Name,
			Tools:      plugin.Catalog{Shapes: def.Shapes, Connectors: def.Connectors},
			Positioned: def.Positioned,
		},
		vm:      goja.New(),
		timeout: DefaultRuleTimeout,
	}
	if def.Validate != "" {
		prog, err := goja.Compile(def.Name+".validate", "("+def.Validate+")", false)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: compile validate: %w", def.Name, err)
		}
		s.program = prog
		s.Rule = s.evaluate
	}
	return s, nil
}

// LoadScripted parses and compiles a definition from r.
func LoadScripted(r io.Reader) (*Scripted, error) {
	def, err := ParseDefinition(r)
	if err != nil {
		return nil, err
	}
	return NewScripted(def)
}

// LoadScriptedFile loads a definition from disk.
func LoadScriptedFile(path string) (*Scripted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plugin: %w", err)
	}
	s, err := LoadScripted(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SetTimeout changes how long one rule evaluation may run.
func (s *Scripted) SetTimeout(d time.Duration) { s.timeout = d }

func (s *Scripted) evaluate(src, dst *diagram.Shape, connector string) (result any) {
	defer func() {
		if r := recover(); r != nil {
			result = plugin.Reject("rule panicked: %v", r)
		}
	}()

	s.vm.Set("source", shapeObject(src))
	s.vm.Set("target", shapeObject(dst))
	s.vm.Set("connector", connector)

	timer := time.AfterFunc(s.timeout, func() { s.vm.Interrupt("rule timed out") })
	v, err := s.vm.RunProgram(s.program)
	timer.Stop()
	s.vm.ClearInterrupt()

	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return plugin.Reject("%s rule timed out", s.PluginName)
		}
		return plugin.Reject("%s rule failed: %v", s.PluginName, err)
	}
	return v.Export()
}

func shapeObject(s *diagram.Shape) map[string]any {
	if s == nil {
		return nil
	}
	props := make(map[string]any, len(s.Props))
	for k, v := range s.Props {
		props[k] = v
	}
	return map[string]any{
		"id":     s.ID,
		"type":   s.Type,
		"label":  s.Label(),
		"props":  props,
		"x":      s.Frame.X,
		"y":      s.Frame.Y,
		"width":  s.Frame.Width,
		"height": s.Frame.Height,
	}
}
