package fixed

import "github.com/cwbudde/algo-fixed/scalar"

// Vec1 returns the one-element vector {x0}.
func Vec1[T scalar.Number](x0 T) Vector[[1]T, T] {
	return Vector[[1]T, T]{e: [1]T{x0}}
}

// Vec2 returns the 2-element vector {x0, x1}.
func Vec2[T scalar.Number](x0, x1 T) Vector[[2]T, T] {
	return Vector[[2]T, T]{e: [2]T{x0, x1}}
}

// Vec3 returns {x0, x1, x2}. The element type is inferred from the
// arguments: Vec3(2.5, 3.1, 4.2) is a Vector[[3]float64, float64].
func Vec3[T scalar.Number](x0, x1, x2 T) Vector[[3]T, T] {
	return Vector[[3]T, T]{e: [3]T{x0, x1, x2}}
}

// Vec4 returns the 4-element vector {x0, x1, x2, x3}.
func Vec4[T scalar.Number](x0, x1, x2, x3 T) Vector[[4]T, T] {
	return Vector[[4]T, T]{e: [4]T{x0, x1, x2, x3}}
}

// Vec5 returns the 5-element vector {x0, x1, x2, x3, x4}.
func Vec5[T scalar.Number](x0, x1, x2, x3, x4 T) Vector[[5]T, T] {
	return Vector[[5]T, T]{e: [5]T{x0, x1, x2, x3, x4}}
}

// Vec6 returns the 6-element vector {x0, x1, x2, x3, x4, x5}.
func Vec6[T scalar.Number](x0, x1, x2, x3, x4, x5 T) Vector[[6]T, T] {
	return Vector[[6]T, T]{e: [6]T{x0, x1, x2, x3, x4, x5}}
}

// Vec7 returns the 7-element vector {x0, x1, x2, x3, x4, x5, x6}.
func Vec7[T scalar.Number](x0, x1, x2, x3, x4, x5, x6 T) Vector[[7]T, T] {
	return Vector[[7]T, T]{e: [7]T{x0, x1, x2, x3, x4, x5, x6}}
}

// Vec8 returns the 8-element vector {x0, x1, x2, x3, x4, x5, x6, x7}.
func Vec8[T scalar.Number](x0, x1, x2, x3, x4, x5, x6, x7 T) Vector[[8]T, T] {
	return Vector[[8]T, T]{e: [8]T{x0, x1, x2, x3, x4, x5, x6, x7}}
}

// Vec9 returns the 9-element vector {x0, …, x8}.
func Vec9[T scalar.Number](x0, x1, x2, x3, x4, x5, x6, x7, x8 T) Vector[[9]T, T] {
	return Vector[[9]T, T]{e: [9]T{x0, x1, x2, x3, x4, x5, x6, x7, x8}}
}

// Vec10 returns the 10-element vector {x0, …, x9}.
func Vec10[T scalar.Number](x0, x1, x2, x3, x4, x5, x6, x7, x8, x9 T) Vector[[10]T, T] {
	return Vector[[10]T, T]{e: [10]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9}}
}

// Vec11 returns the 11-element vector {x0, …, x10}.
func Vec11[T scalar.Number](x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10 T) Vector[[11]T, T] {
	return Vector[[11]T, T]{e: [11]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10}}
}

// Vec12 returns the 12-element vector {x0, …, x11}.
func Vec12[T scalar.Number](x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11 T) Vector[[12]T, T] {
	return Vector[[12]T, T]{e: [12]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11}}
}

// Vec13 returns the 13-element vector {x0, …, x12}.
func Vec13[T scalar.Number](
	x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12 T,
) Vector[[13]T, T] {
	return Vector[[13]T, T]{e: [13]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12}}
}

// Vec14 returns the 14-element vector {x0, …, x13}.
func Vec14[T scalar.Number](
	x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13 T,
) Vector[[14]T, T] {
	return Vector[[14]T, T]{e: [14]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13}}
}

// Vec15 returns the 15-element vector {x0, …, x14}.
func Vec15[T scalar.Number](
	x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13, x14 T,
) Vector[[15]T, T] {
	return Vector[[15]T, T]{e: [15]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13, x14}}
}

// Vec16 returns the 16-element vector {x0, …, x15}.
func Vec16[T scalar.Number](
	x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13, x14, x15 T,
) Vector[[16]T, T] {
	return Vector[[16]T, T]{e: [16]T{x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, x10, x11, x12, x13, x14, x15}}
}
