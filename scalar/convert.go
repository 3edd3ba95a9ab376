package scalar

import (
	"fmt"
	"reflect"
)

// Convert returns x as an R. Integer and floating-point values convert like
// R(x); a real value converted to a complex type becomes complex(x, 0).
// Converting a complex value to a real type panics with an error wrapping
// ErrConversion.
func Convert[R, T Number](x T) R {
	if r, ok := any(x).(R); ok {
		return r
	}

	to := reflect.TypeFor[R]()
	v := reflect.ValueOf(x)
	switch {
	case isComplex(to.Kind()) && !isComplex(v.Kind()):
		re, _ := parts(x)
		v = reflect.ValueOf(complex(re, 0))
	case !isComplex(to.Kind()) && isComplex(v.Kind()):
		panic(fmt.Errorf("%w: %v to %v", ErrConversion, v.Type(), to))
	}
	return v.Convert(to).Interface().(R)
}
