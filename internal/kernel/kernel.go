// Package kernel dispatches float64 reductions and block operations to the
// best registered implementation for the current CPU.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-fixed/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	selected *registry.OpEntry
	initOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered (missing generic fallback?)")
	}
	if entry.Dot == nil || entry.SumSquares == nil || entry.Scale == nil {
		panic("kernel: selected implementation " + entry.Name + " is incomplete")
	}
	selected = entry
}

func impl() *registry.OpEntry {
	initOnce.Do(initKernels)
	return selected
}

// Name returns the name of the selected implementation.
func Name() string {
	return impl().Name
}

// Dot returns sum(a[i] * b[i]) over the shorter of a and b.
func Dot(a, b []float64) float64 {
	return impl().Dot(a, b)
}

// SumSquares returns sum(x[i] * x[i]).
func SumSquares(x []float64) float64 {
	return impl().SumSquares(x)
}

// Scale writes dst[i] = src[i] * k. Panics if lengths differ.
func Scale(dst, src []float64, k float64) {
	impl().Scale(dst, src, k)
}
