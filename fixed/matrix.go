package fixed

import (
	"iter"
	"unsafe"

	"github.com/cwbudde/algo-fixed/scalar"
)

// Matrix is a grid of len(M) rows by len(A) columns of T. Rows are stored
// inline as M, an array of A.
//
// Matrices are built with Rows1 … Rows16 from row vectors: the number of
// arguments fixes the row count and the row type fixes the column count, so
// rows of different lengths do not type-check. There is no arithmetic on
// matrices.
type Matrix[M Grid[A], A Array[T], T scalar.Number] struct {
	rows M
}

// Rows1 returns the single-row matrix {r0}.
func Rows1[A Array[T], T scalar.Number](r0 Vector[A, T]) Matrix[[1]A, A, T] {
	return Matrix[[1]A, A, T]{rows: [1]A{r0.e}}
}

// Rows2 returns the 2-row matrix {r0, r1}.
func Rows2[A Array[T], T scalar.Number](r0, r1 Vector[A, T]) Matrix[[2]A, A, T] {
	return Matrix[[2]A, A, T]{rows: [2]A{r0.e, r1.e}}
}

// Rows3 returns the 3-row matrix {r0, r1, r2}.
func Rows3[A Array[T], T scalar.Number](r0, r1, r2 Vector[A, T]) Matrix[[3]A, A, T] {
	return Matrix[[3]A, A, T]{rows: [3]A{r0.e, r1.e, r2.e}}
}

// Rows4 returns a four-row matrix:
//
//	m := fixed.Rows4(
//		fixed.Vec3(0, 1, 2),
//		fixed.Vec3(3, 4, 5),
//		fixed.Vec3(6, 7, 8),
//		fixed.Vec3(9, 10, 11),
//	) // Matrix[[4][3]int, [3]int, int]
func Rows4[A Array[T], T scalar.Number](r0, r1, r2, r3 Vector[A, T]) Matrix[[4]A, A, T] {
	return Matrix[[4]A, A, T]{rows: [4]A{r0.e, r1.e, r2.e, r3.e}}
}

// Rows5 returns the 5-row matrix {r0, r1, r2, r3, r4}.
func Rows5[A Array[T], T scalar.Number](r0, r1, r2, r3, r4 Vector[A, T]) Matrix[[5]A, A, T] {
	return Matrix[[5]A, A, T]{rows: [5]A{r0.e, r1.e, r2.e, r3.e, r4.e}}
}

// Rows6 returns the 6-row matrix {r0, r1, r2, r3, r4, r5}.
func Rows6[A Array[T], T scalar.Number](r0, r1, r2, r3, r4, r5 Vector[A, T]) Matrix[[6]A, A, T] {
	return Matrix[[6]A, A, T]{rows: [6]A{r0.e, r1.e, r2.e, r3.e, r4.e, r5.e}}
}

// Rows7 returns the 7-row matrix {r0, r1, r2, r3, r4, r5, r6}.
func Rows7[A Array[T], T scalar.Number](r0, r1, r2, r3, r4, r5, r6 Vector[A, T]) Matrix[[7]A, A, T] {
	return Matrix[[7]A, A, T]{rows: [7]A{r0.e, r1.e, r2.e, r3.e, r4.e, r5.e, r6.e}}
}

// Rows8 returns the 8-row matrix {r0, r1, r2, r3, r4, r5, r6, r7}.
func Rows8[A Array[T], T scalar.Number](r0, r1, r2, r3, r4, r5, r6, r7 Vector[A, T]) Matrix[[8]A, A, T] {
	return Matrix[[8]A, A, T]{rows: [8]A{r0.e, r1.e, r2.e, r3.e, r4.e, r5.e, r6.e, r7.e}}
}

// Rows9 returns the 9-row matrix {r0, …, r8}.
func Rows9[A Array[T], T scalar.Number](r0, r1, r2, r3, r4, r5, r6, r7, r8 Vector[A, T]) Matrix[[9]A, A, T] {
	return Matrix[[9]A, A, T]{rows: [9]A{r0.e, r1.e, r2.e, r3.e, r4.e, r5.e, r6.e, r7.e, r8.e}}
}

// Rows10 returns the 10-row matrix {r0, …, r9}.
func Rows10[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9 Vector[A, T],
) Matrix[[10]A, A, T] {
	return Matrix[[10]A, A, T]{rows: [10]A{r0.e, r1.e, r2.e, r3.e, r4.e, r5.e, r6.e, r7.e, r8.e, r9.e}}
}

// Rows11 returns the 11-row matrix {r0, …, r10}.
func Rows11[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10 Vector[A, T],
) Matrix[[11]A, A, T] {
	return Matrix[[11]A, A, T]{rows: [11]A{r0.e, r1.e, r2.e, r3.e, r4.e, r5.e, r6.e, r7.e, r8.e, r9.e, r10.e}}
}

// Rows12 returns the 12-row matrix {r0, …, r11}.
func Rows12[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11 Vector[A, T],
) Matrix[[12]A, A, T] {
	return Matrix[[12]A, A, T]{rows: [12]A{
		r0.e,
		r1.e,
		r2.e,
		r3.e,
		r4.e,
		r5.e,
		r6.e,
		r7.e,
		r8.e,
		r9.e,
		r10.e,
		r11.e,
	}}
}

// Rows13 returns the 13-row matrix {r0, …, r12}.
func Rows13[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11, r12 Vector[A, T],
) Matrix[[13]A, A, T] {
	return Matrix[[13]A, A, T]{rows: [13]A{
		r0.e,
		r1.e,
		r2.e,
		r3.e,
		r4.e,
		r5.e,
		r6.e,
		r7.e,
		r8.e,
		r9.e,
		r10.e,
		r11.e,
		r12.e,
	}}
}

// Rows14 returns the 14-row matrix {r0, …, r13}.
func Rows14[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11, r12, r13 Vector[A, T],
) Matrix[[14]A, A, T] {
	return Matrix[[14]A, A, T]{rows: [14]A{
		r0.e,
		r1.e,
		r2.e,
		r3.e,
		r4.e,
		r5.e,
		r6.e,
		r7.e,
		r8.e,
		r9.e,
		r10.e,
		r11.e,
		r12.e,
		r13.e,
	}}
}

// Rows15 returns the 15-row matrix {r0, …, r14}.
func Rows15[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11, r12, r13, r14 Vector[A, T],
) Matrix[[15]A, A, T] {
	return Matrix[[15]A, A, T]{rows: [15]A{
		r0.e,
		r1.e,
		r2.e,
		r3.e,
		r4.e,
		r5.e,
		r6.e,
		r7.e,
		r8.e,
		r9.e,
		r10.e,
		r11.e,
		r12.e,
		r13.e,
		r14.e,
	}}
}

// Rows16 returns the 16-row matrix {r0, …, r15}.
func Rows16[A Array[T], T scalar.Number](
	r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11, r12, r13, r14, r15 Vector[A, T],
) Matrix[[16]A, A, T] {
	return Matrix[[16]A, A, T]{rows: [16]A{
		r0.e,
		r1.e,
		r2.e,
		r3.e,
		r4.e,
		r5.e,
		r6.e,
		r7.e,
		r8.e,
		r9.e,
		r10.e,
		r11.e,
		r12.e,
		r13.e,
		r14.e,
		r15.e,
	}}
}

// Width returns the number of columns.
func (m Matrix[M, A, T]) Width() int {
	var row A
	return len(row)
}

// Height returns the number of rows.
func (m Matrix[M, A, T]) Height() int {
	return len(m.rows)
}

// Row returns a copy of row r. Elements are reached by chaining:
// m.Row(r).Index(c). r is not checked against Height.
func (m Matrix[M, A, T]) Row(r int) Vector[A, T] {
	return Vector[A, T]{e: m.rows[r]}
}

// SetRow replaces row r with v. r is not checked against Height.
func (m *Matrix[M, A, T]) SetRow(r int, v Vector[A, T]) {
	m.rows[r] = v.e
}

// All iterates over copies of the rows in order.
func (m Matrix[M, A, T]) All() iter.Seq2[int, Vector[A, T]] {
	return func(yield func(int, Vector[A, T]) bool) {
		for r := range len(m.rows) {
			if !yield(r, Vector[A, T]{e: m.rows[r]}) {
				return
			}
		}
	}
}

// Data returns the rows as a slice sharing the matrix's storage, so
// m.Data()[r][c] reads and writes element (r, c).
func (m *Matrix[M, A, T]) Data() []A {
	return unsafe.Slice(&m.rows[0], len(m.rows))
}

// Equal reports whether all corresponding elements are equal.
func (m Matrix[M, A, T]) Equal(o Matrix[M, A, T]) bool {
	for r := range len(m.rows) {
		if !m.Row(r).Equal(o.Row(r)) {
			return false
		}
	}
	return true
}
