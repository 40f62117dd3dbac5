//go:build amd64 && !purego

// Package avx2 registers the fused multiply-add biquad kernel. AVX2-class
// amd64 parts carry FMA3, where math.FMA lowers to a single VFMADD.
package avx2

import (
	"math"

	"github.com/cwbudde/algo-cheby/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "fma",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock runs the transposed direct form II recursion with every
// multiply-add fused; each state update rounds once.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	na1, na2 := -c.A1, -c.A2

	for i, x := range buf {
		y := math.FMA(b0, x, d0)
		d0 = math.FMA(na1, y, math.FMA(b1, x, d1))
		d1 = math.FMA(na2, y, b2*x)
		buf[i] = y
	}

	return d0, d1
}
