package sim

import (
	"errors"
	"fmt"
)

// ErrUnknownModule is returned when a caller names a module that is not in the graph.
var ErrUnknownModule = errors.New("unknown module")

// ErrOverflow is returned when a composed press count does not fit in an int64.
var ErrOverflow = errors.New("press count overflows int64")

// UndefinedKindError reports a module kind marker or name that is not recognized.
type UndefinedKindError struct {
	Module string // module being declared, empty if not known yet
	Marker string
}

func (e *UndefinedKindError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("undefined module kind %q", e.Marker)
	}
	return fmt.Sprintf("module %q: undefined module kind %q", e.Module, e.Marker)
}

// DuplicateModuleError reports a module name declared more than once.
type DuplicateModuleError struct {
	Module string
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module %q declared more than once", e.Module)
}

// UnsupportedTopologyError reports that the cycle shortcut cannot be applied
// to the graph around Target.
type UnsupportedTopologyError struct {
	Target string
	Reason string
}

func (e *UnsupportedTopologyError) Error() string {
	return fmt.Sprintf("cycle composition unsupported for target %q: %s", e.Target, e.Reason)
}

// BoundExceededError reports that a search gave up after Bound presses.
type BoundExceededError struct {
	Target string
	Bound  int64
}

func (e *BoundExceededError) Error() string {
	return fmt.Sprintf("target %q not reached within %d presses", e.Target, e.Bound)
}
