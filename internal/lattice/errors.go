package lattice

import (
	"errors"
	"fmt"
)

// Domain errors for lattice construction and mutation.
var (
	// ErrInvalidDimensions indicates a non-positive or ragged lattice shape.
	ErrInvalidDimensions = errors.New("lattice: invalid dimensions")

	// ErrNonBinarySpin indicates a spin value outside {-1, +1}.
	ErrNonBinarySpin = errors.New("lattice: spin must be -1 or +1")
)

// DimensionError reports the shape that was rejected.
type DimensionError struct {
	Rows int
	Cols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: %dx%d", ErrInvalidDimensions, e.Rows, e.Cols)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimensions
}

// SpinError reports the cell holding a non-binary value.
type SpinError struct {
	Row   int
	Col   int
	Value int
}

func (e *SpinError) Error() string {
	return fmt.Sprintf("%v: got %d at (%d, %d)", ErrNonBinarySpin, e.Value, e.Row, e.Col)
}

func (e *SpinError) Unwrap() error {
	return ErrNonBinarySpin
}
