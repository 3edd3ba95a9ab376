package scalar

import (
	"math"
	"reflect"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The tolerance is absolute near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Abs2 returns |x|² as float64. For complex values this is re² + im².
func Abs2[T Number](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v * v
	case int:
		f := float64(v)
		return f * f
	case complex128:
		return real(v)*real(v) + imag(v)*imag(v)
	}

	re, im := parts(x)
	return re*re + im*im
}

// NearlyEqualValues compares two elements within eps. Complex values are
// compared part by part.
func NearlyEqualValues[T Number](a, b T, eps float64) bool {
	ar, ai := parts(a)
	br, bi := parts(b)
	return NearlyEqual(ar, br, eps) && NearlyEqual(ai, bi, eps)
}

// parts splits x into float64 real and imaginary parts.
func parts[T Number](x T) (re, im float64) {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), 0
	case reflect.Float32, reflect.Float64:
		return v.Float(), 0
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return real(c), imag(c)
	default:
		panic("scalar: unsupported kind " + v.Kind().String())
	}
}
