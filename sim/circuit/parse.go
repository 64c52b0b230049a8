// Package circuit loads pulse networks from the text and YAML formats and
// renders built graphs for inspection.
package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pulse-sim/pulse-sim/sim"
)

// ParseLine parses one text-format definition: "[marker]name -> dest, dest".
// The marker is "%" for a flip-flop and "&" for a conjunction; any other
// leading punctuation is an *sim.UndefinedKindError.
func ParseLine(line string) (sim.Definition, error) {
	lhs, rhs, ok := strings.Cut(line, "->")
	if !ok {
		return sim.Definition{}, fmt.Errorf("missing \"->\" in %q", line)
	}
	name := strings.TrimSpace(lhs)
	marker := ""
	if name != "" {
		if r := rune(name[0]); !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			marker, name = name[:1], name[1:]
		}
	}
	if name == "" {
		return sim.Definition{}, fmt.Errorf("missing module name in %q", line)
	}
	kind, err := sim.KindFromMarker(marker)
	if err != nil {
		return sim.Definition{}, &sim.UndefinedKindError{Module: name, Marker: marker}
	}

	var dests []string
	for _, d := range strings.Split(rhs, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dests = append(dests, d)
		}
	}
	return sim.Definition{Name: name, Kind: kind, Destinations: dests}, nil
}

// ParseLines parses text-format definitions, skipping blank lines.
func ParseLines(lines []string) ([]sim.Definition, error) {
	defs := make([]sim.Definition, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		def, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ParseReader reads text-format definitions from r, one per line.
func ParseReader(r io.Reader) ([]sim.Definition, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading circuit: %w", err)
	}
	return ParseLines(lines)
}

// FormatLine renders a definition back into the text format.
func FormatLine(def sim.Definition) string {
	marker := ""
	switch def.Kind {
	case sim.KindFlipFlop:
		marker = "%"
	case sim.KindConjunction:
		marker = "&"
	}
	if len(def.Destinations) == 0 {
		return marker + def.Name + " ->"
	}
	return fmt.Sprintf("%s%s -> %s", marker, def.Name, strings.Join(def.Destinations, ", "))
}
