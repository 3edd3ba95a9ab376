package scalar

import "golang.org/x/exp/constraints"

// Real is the set of integer and floating-point element types.
// Values of any two Real types convert into each other with T(x).
type Real interface {
	constraints.Integer | constraints.Float
}

// Number is the set of all arithmetic element types, including complex.
type Number interface {
	Real | constraints.Complex
}
