package fixed

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/kernel"
	"github.com/cwbudde/algo-fixed/scalar"
)

// Vector is an ordered tuple of exactly len(A) values of T, stored inline
// in A. The zero value is the zero vector.
type Vector[A Array[T], T scalar.Number] struct {
	e A
}

// Zero returns the vector with every element zero.
func Zero[A Array[T], T scalar.Number]() Vector[A, T] {
	return Vector[A, T]{}
}

// FromSlice copies s into a vector. It returns an error wrapping ErrLength
// if len(s) is not the rank of A.
func FromSlice[A Array[T], T scalar.Number](s []T) (Vector[A, T], error) {
	var v Vector[A, T]
	if n := len(v.e); len(s) != n {
		return v, fmt.Errorf("%w: got %d values, want %d", ErrLength, len(s), n)
	}
	for i, x := range s {
		v.e[i] = x
	}
	return v, nil
}

// Len returns the rank of the vector.
func (v Vector[A, T]) Len() int {
	return len(v.e)
}

// At returns element i. It returns an error wrapping ErrOutOfRange if i is
// not in [0, Len()).
func (v Vector[A, T]) At(i int) (T, error) {
	if err := checkIndex(i, len(v.e)); err != nil {
		var zero T
		return zero, err
	}
	return v.e[i], nil
}

// Ref returns a pointer to element i, checked like At.
func (v *Vector[A, T]) Ref(i int) (*T, error) {
	if err := checkIndex(i, len(v.e)); err != nil {
		return nil, err
	}
	return &v.e[i], nil
}

// Set stores x at index i, checked like At.
func (v *Vector[A, T]) Set(i int, x T) error {
	if err := checkIndex(i, len(v.e)); err != nil {
		return err
	}
	v.e[i] = x
	return nil
}

// Index returns element i without a range check.
// Indices outside [0, Len()) panic like any array index.
func (v Vector[A, T]) Index(i int) T {
	return v.e[i]
}

// SetIndex stores x at index i without a range check.
func (v *Vector[A, T]) SetIndex(i int, x T) {
	v.e[i] = x
}

// Array returns a copy of the backing array.
func (v Vector[A, T]) Array() A {
	return v.e
}

// All iterates over index/element pairs in order.
func (v Vector[A, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range len(v.e) {
			if !yield(i, v.e[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (v Vector[A, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range len(v.e) {
			if !yield(v.e[i]) {
				return
			}
		}
	}
}

// Data returns the elements as a slice sharing the vector's storage.
// Writes through the slice modify the vector. The slice stays valid as long
// as v does.
func (v *Vector[A, T]) Data() []T {
	return unsafe.Slice(&v.e[0], len(v.e))
}

// Slice returns a copy of the elements.
func (v Vector[A, T]) Slice() []T {
	out := make([]T, len(v.e))
	copy(out, v.Data())
	return out
}

// Equal reports whether all corresponding elements are equal.
func (v Vector[A, T]) Equal(w Vector[A, T]) bool {
	for i := range len(v.e) {
		if v.e[i] != w.e[i] {
			return false
		}
	}
	return true
}

// NearlyEqual reports whether all corresponding elements are equal within
// eps, using scalar.NearlyEqual.
func (v Vector[A, T]) NearlyEqual(w Vector[A, T], eps float64) bool {
	for i := range len(v.e) {
		if !scalar.NearlyEqualValues(v.e[i], w.e[i], eps) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm as float64 for every element type.
// Complex elements contribute their squared magnitude.
func (v Vector[A, T]) Norm() float64 {
	if f, ok := float64s(&v); ok {
		return math.Sqrt(kernel.SumSquares(f))
	}

	sum := 0.0
	for i := range len(v.e) {
		sum += scalar.Abs2(v.e[i])
	}
	return math.Sqrt(sum)
}

// float64s exposes the elements of a float64 vector to the kernels.
func float64s[A Array[T], T scalar.Number](v *Vector[A, T]) ([]float64, bool) {
	f, ok := any(v.Data()).([]float64)
	return f, ok
}
