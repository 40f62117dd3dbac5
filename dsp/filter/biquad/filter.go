package biquad

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports a filter output whose length differs from the input.
	ErrLengthMismatch = errors.New("biquad: output length mismatch")

	// ErrInvalidSOS reports a malformed second-order-section matrix.
	ErrInvalidSOS = errors.New("biquad: invalid second-order sections")
)

// Filter runs x through the cascade described by sections, starting from
// zero state, and returns a new slice of the same length. An empty cascade
// passes x through unchanged (copied).
func Filter(sections []Coefficients, x []float64) ([]float64, error) {
	y := make([]float64, len(x))
	copy(y, x)

	if len(y) > 0 {
		NewChain(sections).ProcessBlock(y)
	}

	if len(y) != len(x) {
		return nil, fmt.Errorf("%w: got %d samples for %d inputs", ErrLengthMismatch, len(y), len(x))
	}

	return y, nil
}
