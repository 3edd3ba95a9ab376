//go:build !purego && (amd64 || arm64)

package accel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fixed/internal/kernel/generic"
	"github.com/cwbudde/algo-fixed/internal/kernel/registry"
)

func vecmathEntry(t *testing.T) registry.OpEntry {
	t.Helper()
	for _, e := range registry.Global.ListEntries() {
		if e.Name == "vecmath" {
			return e
		}
	}
	require.FailNow(t, "vecmath backend not registered")
	return registry.OpEntry{}
}

func TestRegisteredForArchitecture(t *testing.T) {
	e := vecmathEntry(t)
	assert.Equal(t, simdLevel, e.SIMDLevel)
	assert.Equal(t, 10, e.Priority)
	assert.NotNil(t, e.Dot)
	assert.NotNil(t, e.SumSquares)
	assert.NotNil(t, e.Scale)
	assert.True(t, cpu.Supports(cpu.Features{HasSSE2: true, HasNEON: true}, e.SIMDLevel))
}

func TestMatchesGeneric(t *testing.T) {
	e := vecmathEntry(t)

	for _, n := range []int{0, 1, 2, 3, 4, 7, 8, 16, 17, 33} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = float64((i*37)%113) + 0.125
			b[i] = float64((i*53)%97) - 0.25
		}

		assert.InDelta(t, generic.Dot(a, b), e.Dot(a, b), 1e-9, "dot n=%d", n)
		assert.InDelta(t, generic.SumSquares(a), e.SumSquares(a), 1e-9, "sumsquares n=%d", n)

		want := make([]float64, n)
		got := make([]float64, n)
		generic.Scale(want, a, -1.5)
		e.Scale(got, a, -1.5)
		assert.InDeltaSlice(t, want, got, 1e-12, "scale n=%d", n)

		e.Scale(a, a, 2)
		assert.InDeltaSlice(t, want, scaleBack(a, -0.75), 1e-12, "in place n=%d", n)
	}
}

func scaleBack(x []float64, k float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * k
	}
	return out
}

func TestScaleLengthMismatch(t *testing.T) {
	e := vecmathEntry(t)
	assert.Panics(t, func() { e.Scale(make([]float64, 3), []float64{1, 2}, 2) })
}
