package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Definition declares one module: its name, kind and ordered destinations.
type Definition struct {
	Name         string
	Kind         Kind
	Destinations []string
}

// Graph is a fully wired pulse network.
// Every destination named by a module exists in the graph, and every
// module's Sources lists exactly the modules that name it as a destination.
type Graph struct {
	modules map[string]*Module
	order   []string // declaration order, then button, then implicit sinks
}

// BuildGraph declares every definition, then links destinations in a second
// pass so forward references resolve regardless of definition order.
// Destinations without a definition become relays with no outputs.
// A "button" relay feeding the broadcaster is always added.
func BuildGraph(defs []Definition) (*Graph, error) {
	g := &Graph{modules: make(map[string]*Module, len(defs)+1)}
	wiring := make(map[string][]string, len(defs)+1)

	for _, def := range defs {
		if !def.Kind.Valid() {
			return nil, &UndefinedKindError{Module: def.Name, Marker: def.Kind.String()}
		}
		if _, exists := g.modules[def.Name]; exists || def.Name == ButtonName {
			return nil, &DuplicateModuleError{Module: def.Name}
		}
		g.declare(def.Name, def.Kind)
		wiring[def.Name] = def.Destinations
	}
	g.declare(ButtonName, KindRelay)
	wiring[ButtonName] = []string{BroadcasterName}

	// Sinks are appended to g.order while linking; only declared modules have wiring.
	declared := len(g.order)
	for _, name := range g.order[:declared] {
		m := g.modules[name]
		for _, dest := range wiring[name] {
			target, ok := g.modules[dest]
			if !ok {
				target = g.declare(dest, KindRelay)
				logrus.Debugf("module %q has no definition; added as sink", dest)
			}
			m.Destinations = append(m.Destinations, dest)
			target.addSource(name)
		}
	}
	logrus.Debugf("built graph with %d modules (%d implicit sinks)", len(g.order), len(g.order)-declared)
	return g, nil
}

func (g *Graph) declare(name string, kind Kind) *Module {
	if name == BroadcasterName {
		kind = KindBroadcaster
	}
	m := newModule(name, kind)
	g.modules[name] = m
	g.order = append(g.order, name)
	return m
}

// Module returns the module with the given name.
func (g *Graph) Module(name string) (*Module, bool) {
	m, ok := g.modules[name]
	return m, ok
}

// Names returns module names in declaration order, followed by the
// button and any implicit sinks. The caller owns the returned slice.
func (g *Graph) Names() []string {
	return append([]string(nil), g.order...)
}

// Len returns the number of modules, including the button and sinks.
func (g *Graph) Len() int {
	return len(g.order)
}

// Sources returns the names of the modules that feed name.
func (g *Graph) Sources(name string) ([]string, error) {
	m, ok := g.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, name)
	}
	return append([]string(nil), m.Sources...), nil
}

// Reset returns every module to its initial state.
func (g *Graph) Reset() {
	for _, m := range g.modules {
		m.Reset()
	}
}
