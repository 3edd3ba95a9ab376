package fixed

import "github.com/cwbudde/algo-fixed/scalar"

// MaxLen is the largest supported vector length and matrix dimension.
const MaxLen = 16

// Array is the set of storage types of a Vector of T. The array length is
// the vector's rank, so a Vector[[3]float64, float64] holds exactly three
// float64 values inline and nothing else. There is no zero-length array in
// the set.
type Array[T scalar.Number] interface {
	[1]T | [2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T | [9]T |
	[10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Grid is the set of row storage types of a Matrix whose rows are stored
// as A. The array length is the number of rows.
type Grid[A any] interface {
	[1]A | [2]A | [3]A | [4]A | [5]A | [6]A | [7]A | [8]A | [9]A |
	[10]A | [11]A | [12]A | [13]A | [14]A | [15]A | [16]A
}
