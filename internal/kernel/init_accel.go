//go:build !purego && (amd64 || arm64)

package kernel

import (
	_ "github.com/cwbudde/algo-fixed/internal/kernel/accel" // register algo-vecmath backend
)
