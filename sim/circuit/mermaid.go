package circuit

import (
	"fmt"
	"strings"

	"github.com/pulse-sim/pulse-sim/sim"
)

// Mermaid produces a Mermaid flowchart of g. Shapes follow the kind:
// - Broadcaster and button: ((Circle))
// - Flip-flop: [[Subroutine]]
// - Conjunction: {{Hexagon}}
// - Relay: [Rectangle]
// When withState is set, flip-flops that are on and conjunctions whose
// memory is all high are styled as "on".
func Mermaid(g *sim.Graph, withState bool) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var on []string
	for _, name := range g.Names() {
		m, _ := g.Module(name)
		safeID := sanitizeMermaidID(name)

		opener, closer := "[", "]"
		switch {
		case m.Kind == sim.KindBroadcaster || name == sim.ButtonName:
			opener, closer = "((", "))"
		case m.Kind == sim.KindFlipFlop:
			opener, closer = "[[", "]]"
		case m.Kind == sim.KindConjunction:
			opener, closer = "{{", "}}"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, name, closer))

		for _, dest := range m.Destinations {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(dest)))
		}
		if withState && isOn(m) {
			on = append(on, safeID)
		}
	}

	if withState {
		sb.WriteString("\n    %% Module state\n")
		sb.WriteString("    classDef on fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		for _, id := range on {
			sb.WriteString(fmt.Sprintf("    class %s on;\n", id))
		}
	}
	return sb.String()
}

func isOn(m *sim.Module) bool {
	switch m.Kind {
	case sim.KindFlipFlop:
		return m.Active()
	case sim.KindConjunction:
		mem := m.Memory()
		if len(mem) == 0 {
			return false
		}
		for _, v := range mem {
			if v == sim.Low {
				return false
			}
		}
		return true
	}
	return false
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
