package fixed

import (
	"fmt"

	"github.com/cwbudde/algo-fixed/internal/kernel"
	"github.com/cwbudde/algo-fixed/scalar"
)

// Add returns v + w elementwise.
func (v Vector[A, T]) Add(w Vector[A, T]) Vector[A, T] {
	for i := range len(v.e) {
		v.e[i] += w.e[i]
	}
	return v
}

// Sub returns v - w elementwise.
func (v Vector[A, T]) Sub(w Vector[A, T]) Vector[A, T] {
	for i := range len(v.e) {
		v.e[i] -= w.e[i]
	}
	return v
}

// Neg returns -v.
func (v Vector[A, T]) Neg() Vector[A, T] {
	for i := range len(v.e) {
		v.e[i] = -v.e[i]
	}
	return v
}

// Scale returns v with every element multiplied by k.
func (v Vector[A, T]) Scale(k T) Vector[A, T] {
	if f, ok := float64s(&v); ok {
		kernel.Scale(f, f, any(k).(float64))
		return v
	}

	for i := range len(v.e) {
		v.e[i] *= k
	}
	return v
}

// Dot returns the inner product sum(v[i] * w[i]).
func (v Vector[A, T]) Dot(w Vector[A, T]) T {
	if a, ok := float64s(&v); ok {
		b, _ := float64s(&w)
		return any(kernel.Dot(a, b)).(T)
	}

	var sum T
	for i := range len(v.e) {
		sum += v.e[i] * w.e[i]
	}
	return sum
}

// Convert returns v with every element converted to R, as by
// scalar.Convert. AR must have the rank of AT.
func Convert[AR Array[R], R scalar.Number, AT Array[T], T scalar.Number](v Vector[AT, T]) Vector[AR, R] {
	var out Vector[AR, R]
	mustMatch(len(out.e), len(v.e))
	for i := range len(v.e) {
		out.e[i] = scalar.Convert[R](v.e[i])
	}
	return out
}

// Add returns a + b in the promoted element type R:
//
//	fixed.Add[[2]complex128, complex128](fixed.Vec2(1+1i, 2), fixed.Vec2(1.0, 2.0))
//
// It panics if R is not scalar.Promote of T and S, or if the ranks of AR,
// AT and AS differ.
func Add[AR Array[R], R scalar.Number, AT Array[T], T scalar.Number, AS Array[S], S scalar.Number](
	a Vector[AT, T], b Vector[AS, S],
) Vector[AR, R] {
	mustPromote[R, T, S]()
	return Convert[AR, R](a).Add(Convert[AR, R](b))
}

// Sub returns a - b in the promoted element type R.
// It panics like Add.
func Sub[AR Array[R], R scalar.Number, AT Array[T], T scalar.Number, AS Array[S], S scalar.Number](
	a Vector[AT, T], b Vector[AS, S],
) Vector[AR, R] {
	mustPromote[R, T, S]()
	return Convert[AR, R](a).Sub(Convert[AR, R](b))
}

// Scale returns v * k in the promoted element type R.
// It panics if R is not scalar.Promote of T and S, or if the ranks of AR
// and AT differ.
func Scale[AR Array[R], R scalar.Number, AT Array[T], T scalar.Number, S scalar.Number](
	v Vector[AT, T], k S,
) Vector[AR, R] {
	mustPromote[R, T, S]()
	return Convert[AR, R](v).Scale(scalar.Convert[R](k))
}

// Mul returns the inner product of a and b in the promoted type R. Unlike
// the other binary operations its result is a scalar, so only R is named:
//
//	fixed.Mul[float64](fixed.Vec3(2, 3, 4), fixed.Vec3(0.5, 1.0, 2.0)) // 12
//
// It panics if R is not scalar.Promote of T and S, or if the ranks of a and
// b differ.
func Mul[R scalar.Number, AT Array[T], T scalar.Number, AS Array[S], S scalar.Number](a Vector[AT, T], b Vector[AS, S]) R {
	mustPromote[R, T, S]()
	mustMatch(len(a.e), len(b.e))

	var sum R
	for i := range len(a.e) {
		sum += scalar.Convert[R](a.e[i]) * scalar.Convert[R](b.e[i])
	}
	return sum
}

// Dot is Mul under its conventional name.
func Dot[R scalar.Number, AT Array[T], T scalar.Number, AS Array[S], S scalar.Number](a Vector[AT, T], b Vector[AS, S]) R {
	return Mul[R](a, b)
}

// Neg returns -v.
func Neg[A Array[T], T scalar.Number](v Vector[A, T]) Vector[A, T] {
	return v.Neg()
}

func mustPromote[R, T, S scalar.Number]() {
	if err := scalar.Check[R, T, S](); err != nil {
		panic(err)
	}
}

func mustMatch(n, m int) {
	if n != m {
		panic(fmt.Errorf("%w: rank %d and rank %d", ErrLength, n, m))
	}
}
