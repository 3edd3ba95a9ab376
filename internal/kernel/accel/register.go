//go:build !purego && (amd64 || arm64)

// Package accel registers the algo-vecmath block kernels, which dispatch to
// SIMD code on supported CPUs.
package accel

import (
	"github.com/cwbudde/algo-fixed/internal/kernel/registry"
	vecmath "github.com/cwbudde/algo-vecmath"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "vecmath",
		SIMDLevel:  simdLevel,
		Priority:   10,
		Dot:        vecmath.DotProduct,
		SumSquares: SumSquares,
		Scale:      vecmath.ScaleBlock,
	})
}

// SumSquares returns sum(x[i] * x[i]).
func SumSquares(x []float64) float64 {
	return vecmath.DotProduct(x, x)
}
