package toolpath

import (
	"errors"
	"fmt"

	"github.com/zooyer/dxf2path/core"
)

var (
	// ErrUnsupportedEntityKind is returned for entities whose endpoints cannot be resolved.
	ErrUnsupportedEntityKind = errors.New("unsupported entity kind")
	// ErrDisconnectedPath is returned when no remaining entity continues the chain.
	ErrDisconnectedPath = errors.New("disconnected path")
	// ErrEmptyDocument is returned when there is nothing to assemble.
	ErrEmptyDocument = errors.New("empty document")
	// ErrEmptyEntity is returned for a polyline or spline without points.
	ErrEmptyEntity = errors.New("entity has no points")
	// ErrNonFinitePoint is returned for an endpoint with an infinite or NaN coordinate.
	ErrNonFinitePoint = errors.New("non-finite point")
)

// Error describes a failure tied to one entity of the input.
type Error struct {
	Op     string
	Index  int // position in enumeration order, -1 when not tied to an entity
	Type   string
	Handle string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Index >= 0 {
		base += fmt.Sprintf(": entity %d", e.Index)
		if e.Type != "" {
			base += " " + e.Type
		}
		if e.Handle != "" {
			base += fmt.Sprintf(" (handle=%s)", e.Handle)
		}
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DisconnectedError reports where chaining stopped.
type DisconnectedError struct {
	Placed    int        // segments chained before the gap
	Remaining int        // segments left unconsumed
	Tail      core.Point // end point no remaining start matched

	// Nearest is the closest remaining segment start to Tail.
	Nearest  Segment
	Distance float64
}

func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("%v after %d segment(s): no start within tolerance of %v, %d remaining, nearest start %v at distance %g (entity %d)",
		ErrDisconnectedPath, e.Placed, e.Tail, e.Remaining, e.Nearest.Start, e.Distance, e.Nearest.Index)
}

func (e *DisconnectedError) Unwrap() error {
	return ErrDisconnectedPath
}
