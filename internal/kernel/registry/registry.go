// Package registry holds the float64 kernel implementations used by the
// fixed-size containers.
//
// Backends register themselves from init functions. The kernel package picks
// the highest-priority entry supported by the detected CPU features.
// ListEntries and Reset exist for tests.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// DotFn returns sum(a[i] * b[i]) over equal-length slices.
type DotFn func(a, b []float64) float64

// SumSquaresFn returns sum(x[i] * x[i]).
type SumSquaresFn func(x []float64) float64

// ScaleFn writes dst[i] = src[i] * k. dst and src have equal length.
type ScaleFn func(dst, src []float64, k float64)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	// Generic: 0, accelerated backends: 10.
	Priority int

	Dot        DotFn
	SumSquares SumSquaresFn
	Scale      ScaleFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil when nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// insertion sort, the registry holds a handful of entries
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
