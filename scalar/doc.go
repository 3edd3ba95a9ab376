// Package scalar defines the element types accepted by the fixed-size
// containers and the promotion rule used when two element types meet in one
// operation.
//
// Promotion follows the usual arithmetic conversions:
//
//   - identical kinds promote to themselves
//   - complex dominates floating point, floating point dominates integers
//   - float64 or complex128 on either side widens the result to 64-bit
//     floating point (128-bit complex)
//   - integers narrower than 32 bits are first promoted to int32
//   - remaining integer mixes resolve by rank and signedness: the unsigned
//     operand wins when its rank is at least the signed one, the signed
//     operand wins when it is strictly wider, otherwise the unsigned
//     counterpart of the signed operand is used
//
// Ranks, lowest to highest: 8-bit, 16-bit, 32-bit, int/uint/uintptr, 64-bit.
// Go cannot derive a type from two types, so generic callers pass the result
// type explicitly and validate it with [Check].
package scalar
