package sim

import "fmt"

// Strategy selects how PressesUntilTarget finds its answer.
type Strategy string

const (
	// StrategyCycle requires the cycle-composition shortcut. The empty string means the same.
	StrategyCycle Strategy = "cycle"
	// StrategyAuto uses the shortcut when the topology allows it and falls
	// back to exhaustive simulation otherwise (only with a positive MaxPresses).
	StrategyAuto Strategy = "auto"
	// StrategyExhaustive presses the button until the target is reached.
	StrategyExhaustive Strategy = "exhaustive"
)

// validStrategies maps accepted strategy strings.
var validStrategies = map[Strategy]bool{
	StrategyCycle:      true,
	StrategyAuto:       true,
	StrategyExhaustive: true,
	"":                 true, // empty defaults to cycle
}

// IsValidStrategy returns true if the given string is a recognized strategy.
func IsValidStrategy(s string) bool {
	return validStrategies[Strategy(s)]
}

// SearchConfig groups the parameters of PressesUntilTarget.
type SearchConfig struct {
	Strategy   Strategy // "cycle" (default), "auto" or "exhaustive"
	MaxPresses int64    // upper bound on presses for any strategy (0 = unbounded)
}

// Validate checks the strategy name and bound.
func (c SearchConfig) Validate() error {
	if !validStrategies[c.Strategy] {
		return fmt.Errorf("unknown strategy %q; valid: cycle, auto, exhaustive", c.Strategy)
	}
	if c.MaxPresses < 0 {
		return fmt.Errorf("max presses must be non-negative, got %d", c.MaxPresses)
	}
	return nil
}
