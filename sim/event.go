package sim

import "fmt"

// Polarity is the level carried by a pulse.
type Polarity bool

const (
	Low  Polarity = false
	High Polarity = true
)

// String returns "high" or "low".
func (p Polarity) String() string {
	if p {
		return "high"
	}
	return "low"
}

// validPolarities maps accepted polarity names.
var validPolarities = map[string]Polarity{
	"high": High,
	"low":  Low,
}

// ParsePolarity converts "high" or "low" into a Polarity.
func ParsePolarity(s string) (Polarity, error) {
	p, ok := validPolarities[s]
	if !ok {
		return Low, fmt.Errorf("unknown polarity %q; valid: high, low", s)
	}
	return p, nil
}

// Pulse is a single signal travelling from one module to another.
// Pulses are values and never change after creation.
type Pulse struct {
	From     string   // name of the emitting module
	To       string   // name of the receiving module
	Polarity Polarity // level carried by the pulse
}

// String renders the pulse as "from -high-> to".
func (p Pulse) String() string {
	return fmt.Sprintf("%s -%s-> %s", p.From, p.Polarity, p.To)
}
