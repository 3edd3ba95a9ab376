package generic

import (
	"github.com/cwbudde/algo-fixed/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		Dot:        Dot,
		SumSquares: SumSquares,
		Scale:      Scale,
	})
}

// Dot returns sum(a[i] * b[i]) over the shorter of a and b.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// SumSquares returns sum(x[i] * x[i]).
func SumSquares(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

// Scale writes dst[i] = src[i] * k. Panics if lengths differ.
func Scale(dst, src []float64, k float64) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = v * k
	}
}
