// Defines the Module struct, one node of the pulse network, and its per-kind reaction to an incoming pulse.

package sim

import "fmt"

// Kind identifies how a module reacts to pulses.
type Kind int

const (
	KindRelay Kind = iota
	KindFlipFlop
	KindConjunction
	KindBroadcaster
)

// Reserved module names.
const (
	BroadcasterName = "broadcaster"
	ButtonName      = "button"
)

var kindNames = map[Kind]string{
	KindRelay:       "relay",
	KindFlipFlop:    "flip-flop",
	KindConjunction: "conjunction",
	KindBroadcaster: "broadcaster",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the four module kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind converts a kind name ("relay", "flip-flop", "conjunction",
// "broadcaster") into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindRelay, &UndefinedKindError{Marker: name}
}

// KindFromMarker maps the one-character kind marker of the text format
// to a Kind: "%" is a flip-flop, "&" a conjunction, no marker a relay.
func KindFromMarker(marker string) (Kind, error) {
	switch marker {
	case "":
		return KindRelay, nil
	case "%":
		return KindFlipFlop, nil
	case "&":
		return KindConjunction, nil
	}
	return KindRelay, &UndefinedKindError{Marker: marker}
}

// Module is one node of the pulse network.
// Destinations are fixed at build time; Sources are derived by BuildGraph.
type Module struct {
	Name         string
	Kind         Kind
	Destinations []string
	Sources      []string

	active bool                // flip-flop state
	memory map[string]Polarity // conjunction: last polarity seen per source
}

func newModule(name string, kind Kind) *Module {
	m := &Module{Name: name, Kind: kind}
	if kind == KindConjunction {
		m.memory = make(map[string]Polarity)
	}
	return m
}

// addSource links src as an input. Conjunctions start with a low memory for it.
func (m *Module) addSource(src string) {
	m.Sources = append(m.Sources, src)
	if m.Kind == KindConjunction {
		m.memory[src] = Low
	}
}

// Receive applies a pulse from origin and returns the polarity to send to
// every destination. emit is false when the module stays silent.
func (m *Module) Receive(origin string, p Polarity) (out Polarity, emit bool) {
	switch m.Kind {
	case KindBroadcaster:
		return Low, true
	case KindFlipFlop:
		if p == High {
			return Low, false
		}
		m.active = !m.active
		return Polarity(m.active), true
	case KindConjunction:
		m.memory[origin] = p
		for _, v := range m.memory {
			if v == Low {
				return High, true
			}
		}
		return Low, true
	default:
		return p, true
	}
}

// Active reports the on/off state of a flip-flop. Always false for other kinds.
func (m *Module) Active() bool {
	return m.active
}

// Memory returns a copy of a conjunction's per-source memory, nil for other kinds.
func (m *Module) Memory() map[string]Polarity {
	if m.memory == nil {
		return nil
	}
	out := make(map[string]Polarity, len(m.memory))
	for k, v := range m.memory {
		out[k] = v
	}
	return out
}

// Reset restores the state the module had right after BuildGraph.
func (m *Module) Reset() {
	m.active = false
	for k := range m.memory {
		m.memory[k] = Low
	}
}

func (m *Module) String() string {
	return fmt.Sprintf("%s %s (%v -> %v)", m.Kind, m.Name, m.Sources, m.Destinations)
}
