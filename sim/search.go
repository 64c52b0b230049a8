package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// PressesUntilTarget returns the number of presses after which target first
// receives a pulse of polarity want. The simulation starts from the current
// state of g and leaves g in the state it reached.
//
// With the cycle strategy a topology the shortcut cannot handle is reported
// as *UnsupportedTopologyError. The auto strategy falls back to exhaustive
// simulation in that case, but only when cfg.MaxPresses bounds it.
// ctx is checked between presses.
func PressesUntilTarget(ctx context.Context, g *Graph, target string, want Polarity, cfg SearchConfig) (int64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if cfg.Strategy == StrategyExhaustive {
		return searchExhaustive(ctx, g, target, want, cfg.MaxPresses)
	}

	composer, err := NewCycleComposer(g, target, want)
	if err != nil {
		var topo *UnsupportedTopologyError
		if cfg.Strategy != StrategyAuto || cfg.MaxPresses == 0 || !errors.As(err, &topo) {
			return 0, err
		}
		logrus.Warnf("%v; falling back to exhaustive search bounded by %d presses", err, cfg.MaxPresses)
		return searchExhaustive(ctx, g, target, want, cfg.MaxPresses)
	}
	return searchCycles(ctx, g, composer, cfg.MaxPresses)
}

func searchCycles(ctx context.Context, g *Graph, c *CycleComposer, bound int64) (int64, error) {
	sim := NewSimulator(g)
	sim.AddObserver(c)
	for !c.Done() {
		if err := step(ctx, sim, c.Target, bound); err != nil {
			return 0, err
		}
	}
	presses, _, err := c.Result()
	if err != nil {
		return 0, err
	}
	logrus.Infof("gate %s inputs synchronized: periods=%v, presses=%d", c.Gate, c.Periods(), presses)
	return presses, nil
}

// targetWatcher records the first press in which a module receives a given polarity.
type targetWatcher struct {
	target string
	want   Polarity
	hit    int64
}

func (w *targetWatcher) ObservePulse(press int64, p Pulse) {
	if w.hit == 0 && p.To == w.target && p.Polarity == w.want {
		w.hit = press
	}
}

func searchExhaustive(ctx context.Context, g *Graph, target string, want Polarity, bound int64) (int64, error) {
	if _, ok := g.Module(target); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, target)
	}
	sim := NewSimulator(g)
	w := &targetWatcher{target: target, want: want}
	sim.AddObserver(w)
	for w.hit == 0 {
		if err := step(ctx, sim, target, bound); err != nil {
			return 0, err
		}
	}
	return w.hit, nil
}

// step presses the button once unless ctx is done or bound has been reached.
func step(ctx context.Context, sim *Simulator, target string, bound int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bound > 0 && sim.Presses() >= bound {
		return &BoundExceededError{Target: target, Bound: bound}
	}
	sim.PressButton()
	return nil
}
