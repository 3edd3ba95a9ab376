// Package fixed provides fixed-size vectors and matrices whose shape is part
// of their type.
//
// A [Vector] is stored inline in an array whose length is its rank: a vector
// of three float64 values has type Vector[[3]float64, float64] and occupies
// exactly three float64s. It cannot be added to a Vector[[2]float64, float64]
// because no such operation type-checks. Ranks run from 1 to [MaxLen]; a
// zero-length vector cannot be declared.
//
// Construction:
//
//   - [Zero] returns a vector with every element zero
//   - [Vec1] … [Vec16] take exactly N values and infer the element type
//   - [Rows1] … [Rows16] build a [Matrix] from row vectors of one length
//
// Arithmetic between vectors of the same element type uses methods
// ([Vector.Add], [Vector.Sub], [Vector.Neg], [Vector.Scale], [Vector.Dot]).
// Mixed element types use the package functions [Add], [Sub], [Scale],
// [Mul] and [Dot], which take the promoted result type as explicit type
// arguments:
//
//	v := fixed.Vec3(2, 3, 4)                         // Vector[[3]int, int]
//	w := fixed.Scale[[3]float64, float64](v, 3.1)    // Vector[[3]float64, float64]
//	d := fixed.Dot[float64](v, w)                    // float64
//
// The result type must match [scalar.Promote] of the operand types, complex
// types included.
//
// Vectors and matrices are plain values: assignment copies, and no
// operation keeps hidden state. Vectors of float64 route dot products, norms
// and scaling through CPU-dispatched kernels.
package fixed
