//go:build !purego

package accel

import "github.com/cwbudde/algo-vecmath/cpu"

const simdLevel = cpu.SIMDNEON
