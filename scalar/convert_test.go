package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, 3.0, Convert[float64](3))
	assert.Equal(t, int32(-2), Convert[int32](int8(-2)))
	assert.Equal(t, 1, Convert[int](1.9))
	assert.Equal(t, uint64(7), Convert[uint64](uint8(7)))
	assert.Equal(t, float32(0.5), Convert[float32](0.5))
	assert.Equal(t, complex(2.0, 0), Convert[complex128](2))
	assert.Equal(t, complex64(complex(1.5, 0)), Convert[complex64](float32(1.5)))
	assert.Equal(t, complex(1.0, 2.0), Convert[complex128](complex64(complex(1, 2))))
	assert.Equal(t, meters(4), Convert[meters](4))
	assert.Equal(t, 4.0, Convert[float64](meters(4)))
}

func TestConvertComplexToReal(t *testing.T) {
	var err error
	func() {
		defer func() {
			err, _ = recover().(error)
		}()
		_ = Convert[float64](complex(1.0, 1.0))
	}()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversion)
}
