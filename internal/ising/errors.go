package ising

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidTemperature indicates a zero or NaN temperature. The
	// acceptance test divides by T, so these are rejected before any flip.
	ErrInvalidTemperature = errors.New("ising: temperature must be non-zero")

	// ErrInvalidCycles indicates a negative cycle count.
	ErrInvalidCycles = errors.New("ising: cycle count must be non-negative")

	// ErrInvalidEnsemble indicates an ensemble with no runs.
	ErrInvalidEnsemble = errors.New("ising: ensemble needs at least one run")
)

// TemperatureError reports the rejected temperature. Index is the position
// in the schedule, or -1 for a single run.
type TemperatureError struct {
	Index       int
	Temperature float64
}

func (e *TemperatureError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: got %g", ErrInvalidTemperature, e.Temperature)
	}
	return fmt.Sprintf("%v: schedule[%d] = %g", ErrInvalidTemperature, e.Index, e.Temperature)
}

func (e *TemperatureError) Unwrap() error {
	return ErrInvalidTemperature
}
