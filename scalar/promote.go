package scalar

import (
	"fmt"
	"reflect"
	"strconv"
)

type intInfo struct {
	rank   int
	size   uintptr
	signed bool
}

var (
	intSize = uintptr(strconv.IntSize / 8)
	ptrSize = reflect.TypeFor[uintptr]().Size()
)

var intInfos = map[reflect.Kind]intInfo{
	reflect.Int8:    {rank: 1, size: 1, signed: true},
	reflect.Uint8:   {rank: 1, size: 1},
	reflect.Int16:   {rank: 2, size: 2, signed: true},
	reflect.Uint16:  {rank: 2, size: 2},
	reflect.Int32:   {rank: 3, size: 4, signed: true},
	reflect.Uint32:  {rank: 3, size: 4},
	reflect.Int:     {rank: 4, size: intSize, signed: true},
	reflect.Uint:    {rank: 4, size: intSize},
	reflect.Uintptr: {rank: 4, size: ptrSize},
	reflect.Int64:   {rank: 5, size: 8, signed: true},
	reflect.Uint64:  {rank: 5, size: 8},
}

var unsignedOf = map[reflect.Kind]reflect.Kind{
	reflect.Int32: reflect.Uint32,
	reflect.Int:   reflect.Uint,
	reflect.Int64: reflect.Uint64,
}

// KindOf returns the reflect.Kind of T. Named types report the kind of
// their underlying type.
func KindOf[T Number]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// IsNumeric reports whether k takes part in promotion.
func IsNumeric(k reflect.Kind) bool {
	if _, ok := intInfos[k]; ok {
		return true
	}
	switch k {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// Promote returns the kind that a and b promote to when combined.
// It returns reflect.Invalid if either kind is not numeric.
func Promote(a, b reflect.Kind) reflect.Kind {
	if !IsNumeric(a) || !IsNumeric(b) {
		return reflect.Invalid
	}
	if a == b {
		return a
	}

	if isComplex(a) || isComplex(b) {
		if is64(a) || is64(b) {
			return reflect.Complex128
		}
		return reflect.Complex64
	}

	if isFloat(a) || isFloat(b) {
		if a == reflect.Float64 || b == reflect.Float64 {
			return reflect.Float64
		}
		return reflect.Float32
	}

	return promoteInt(a, b)
}

// Check reports whether R is the promoted type of T and S.
// The returned error wraps ErrPromotion.
func Check[R, T, S Number]() error {
	r, t, s := KindOf[R](), KindOf[T](), KindOf[S]()
	if want := Promote(t, s); r != want {
		return fmt.Errorf("%w: %v and %v promote to %v, not %v", ErrPromotion, t, s, want, r)
	}
	return nil
}

// Table returns the promotion of every pair in kinds, indexed like kinds.
func Table(kinds []reflect.Kind) ([][]reflect.Kind, error) {
	for _, k := range kinds {
		if !IsNumeric(k) {
			return nil, fmt.Errorf("%w: %v", ErrNotNumeric, k)
		}
	}

	table := make([][]reflect.Kind, len(kinds))
	for i, a := range kinds {
		table[i] = make([]reflect.Kind, len(kinds))
		for j, b := range kinds {
			table[i][j] = Promote(a, b)
		}
	}
	return table, nil
}

// Kinds lists every numeric kind in promotion order.
func Kinds() []reflect.Kind {
	return []reflect.Kind{
		reflect.Int8, reflect.Uint8, reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32, reflect.Int, reflect.Uint, reflect.Uintptr,
		reflect.Int64, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
	}
}

func promoteInt(a, b reflect.Kind) reflect.Kind {
	a, b = widen(a), widen(b)
	if a == b {
		return a
	}

	ia, ib := intInfos[a], intInfos[b]
	if ia.signed == ib.signed {
		switch {
		case ia.rank > ib.rank:
			return a
		case ib.rank > ia.rank:
			return b
		default:
			// uint and uintptr share a rank.
			return reflect.Uint
		}
	}

	u, s := a, b
	iu, is := ia, ib
	if ia.signed {
		u, s = b, a
		iu, is = ib, ia
	}

	switch {
	case iu.rank >= is.rank:
		return u
	case is.size > iu.size:
		return s
	default:
		return unsignedOf[s]
	}
}

func widen(k reflect.Kind) reflect.Kind {
	if intInfos[k].rank < intInfos[reflect.Int32].rank {
		return reflect.Int32
	}
	return k
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func is64(k reflect.Kind) bool {
	return k == reflect.Float64 || k == reflect.Complex128
}
