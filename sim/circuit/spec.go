package circuit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pulse-sim/pulse-sim/sim"
)

// CircuitSpec is the YAML form of a pulse network.
// Loaded from YAML via LoadSpec(path).
type CircuitSpec struct {
	Version string       `yaml:"version"`
	Presses int64        `yaml:"presses,omitempty"` // default press count for "run" (0 = use the flag)
	Modules []ModuleSpec `yaml:"modules"`
	Search  *SearchSpec  `yaml:"search,omitempty"`
}

// ModuleSpec declares a single module.
type ModuleSpec struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"` // relay, flip-flop, conjunction, broadcaster
	Destinations []string `yaml:"destinations,omitempty"`
}

// SearchSpec holds defaults for the "presses" command.
type SearchSpec struct {
	Target     string `yaml:"target"`
	Polarity   string `yaml:"polarity,omitempty"` // high or low (default low)
	Strategy   string `yaml:"strategy,omitempty"` // cycle, auto, exhaustive
	MaxPresses int64  `yaml:"max_presses,omitempty"`
}

// CurrentVersion is written by SpecFromDefinitions.
const CurrentVersion = "1"

var validVersions = map[string]bool{"": true, CurrentVersion: true}

// ParseSpec parses a YAML circuit specification.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func ParseSpec(data []byte) (*CircuitSpec, error) {
	var spec CircuitSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing circuit spec: %w", err)
	}
	return &spec, nil
}

// LoadSpec reads and parses a YAML circuit specification file.
func LoadSpec(path string) (*CircuitSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit spec: %w", err)
	}
	return ParseSpec(data)
}

// Load reads a circuit from path. Files ending in .yaml or .yml are parsed
// as a CircuitSpec; anything else is read as the text format.
func Load(path string) (*CircuitSpec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadSpec(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit: %w", err)
	}
	defer f.Close()
	defs, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return SpecFromDefinitions(defs), nil
}

// Validate checks the version, module kinds and search settings.
func (s *CircuitSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported circuit spec version %q", s.Version)
	}
	if s.Presses < 0 {
		return fmt.Errorf("presses must be non-negative, got %d", s.Presses)
	}
	if len(s.Modules) == 0 {
		return fmt.Errorf("at least one module required")
	}
	for i, m := range s.Modules {
		if m.Name == "" {
			return fmt.Errorf("modules[%d]: name required", i)
		}
		if _, err := sim.ParseKind(m.Kind); err != nil {
			return fmt.Errorf("modules[%d]: %w", i, &sim.UndefinedKindError{Module: m.Name, Marker: m.Kind})
		}
	}
	if s.Search != nil {
		if err := s.Search.validate(); err != nil {
			return fmt.Errorf("search: %w", err)
		}
	}
	return nil
}

func (s *SearchSpec) validate() error {
	if s.Target == "" {
		return fmt.Errorf("target required")
	}
	if s.Polarity != "" {
		if _, err := sim.ParsePolarity(s.Polarity); err != nil {
			return err
		}
	}
	return s.Config().Validate()
}

// Config converts the spec into a sim.SearchConfig.
func (s *SearchSpec) Config() sim.SearchConfig {
	return sim.SearchConfig{Strategy: sim.Strategy(s.Strategy), MaxPresses: s.MaxPresses}
}

// Definitions converts the modules into definitions for sim.BuildGraph.
func (s *CircuitSpec) Definitions() ([]sim.Definition, error) {
	defs := make([]sim.Definition, 0, len(s.Modules))
	for _, m := range s.Modules {
		kind, err := sim.ParseKind(m.Kind)
		if err != nil {
			return nil, &sim.UndefinedKindError{Module: m.Name, Marker: m.Kind}
		}
		defs = append(defs, sim.Definition{
			Name:         m.Name,
			Kind:         kind,
			Destinations: append([]string(nil), m.Destinations...),
		})
	}
	return defs, nil
}

// Build validates the spec and builds its graph.
func (s *CircuitSpec) Build() (*sim.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	defs, err := s.Definitions()
	if err != nil {
		return nil, err
	}
	return sim.BuildGraph(defs)
}

// SpecFromDefinitions wraps definitions in a CircuitSpec.
// The module literally named "broadcaster" is always written as a broadcaster.
func SpecFromDefinitions(defs []sim.Definition) *CircuitSpec {
	spec := &CircuitSpec{Version: CurrentVersion, Modules: make([]ModuleSpec, 0, len(defs))}
	for _, d := range defs {
		kind := d.Kind
		if d.Name == sim.BroadcasterName {
			kind = sim.KindBroadcaster
		}
		spec.Modules = append(spec.Modules, ModuleSpec{
			Name:         d.Name,
			Kind:         kind.String(),
			Destinations: append([]string(nil), d.Destinations...),
		})
	}
	return spec
}

// MarshalSpec renders spec as YAML.
func MarshalSpec(spec *CircuitSpec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshaling circuit spec: %w", err)
	}
	return data, nil
}
