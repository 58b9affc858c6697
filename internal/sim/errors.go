package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a run configuration that cannot be simulated.
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrUnknownVariant indicates a variant name with no registered policy.
	ErrUnknownVariant = errors.New("sim: unknown variant")

	// ErrCanvasTooSmall indicates a canvas with no room for a seed turtle.
	ErrCanvasTooSmall = errors.New("sim: canvas too small for stroke width")

	// ErrTickLimit indicates a run stopped at MaxTicks with turtles alive.
	ErrTickLimit = errors.New("sim: tick limit reached")
)

// RunError records where a run stopped before the population emptied.
type RunError struct {
	Tick    int
	Live    int
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("tick %d (%d live): %v", e.Tick, e.Live, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
