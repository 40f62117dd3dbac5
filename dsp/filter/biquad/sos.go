package biquad

import (
	"fmt"
	"math"
)

// SOSMatrix returns the cascade as rows [b0 b1 b2 a0 a1 a2] with a0 = 1.
func SOSMatrix(sections []Coefficients) [][6]float64 {
	out := make([][6]float64, len(sections))
	for i, s := range sections {
		out[i] = [6]float64{s.B0, s.B1, s.B2, 1, s.A1, s.A2}
	}

	return out
}

// FromSOSMatrix converts [b0 b1 b2 a0 a1 a2] rows into normalized
// Coefficients. Rows with a0 == 0 or non-finite entries are rejected.
func FromSOSMatrix(rows [][6]float64) ([]Coefficients, error) {
	out := make([]Coefficients, len(rows))

	for i, row := range rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d has non-finite value", ErrInvalidSOS, i)
			}
		}

		a0 := row[3]
		if a0 == 0 {
			return nil, fmt.Errorf("%w: row %d has a0 == 0", ErrInvalidSOS, i)
		}

		out[i] = Coefficients{
			B0: row[0] / a0,
			B1: row[1] / a0,
			B2: row[2] / a0,
			A1: row[4] / a0,
			A2: row[5] / a0,
		}
	}

	return out, nil
}
