package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 10})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	entry := reg.Lookup(cpu.Features{HasSSE2: true})
	require.NotNil(t, entry)
	assert.Equal(t, "sse2", entry.Name)

	entry = reg.Lookup(cpu.Features{HasNEON: true})
	require.NotNil(t, entry)
	assert.Equal(t, "neon", entry.Name)

	entry = reg.Lookup(cpu.Features{})
	require.NotNil(t, entry)
	assert.Equal(t, "generic", entry.Name)
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})

	entry := reg.Lookup(cpu.Features{HasSSE2: true, ForceGeneric: true})
	require.NotNil(t, entry)
	assert.Equal(t, "generic", entry.Name)
}

func TestRegistryLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	assert.Nil(t, reg.Lookup(cpu.Features{HasSSE2: true}))
}

func TestRegistryListAndReset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	// Lookup sorts by priority.
	_ = reg.Lookup(cpu.Features{})
	entries := reg.ListEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "sse2", entries[0].Name)
	assert.Equal(t, "generic", entries[1].Name)

	reg.Reset()
	assert.Empty(t, reg.ListEntries())
}
