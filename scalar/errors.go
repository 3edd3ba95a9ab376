package scalar

import "errors"

var (
	// ErrPromotion reports a result type that differs from the promoted
	// type of the operands.
	ErrPromotion = errors.New("scalar: result type is not the promoted type")

	// ErrNotNumeric reports a kind outside the promotion table.
	ErrNotNumeric = errors.New("scalar: kind is not numeric")

	// ErrConversion reports a conversion that would drop an imaginary part.
	ErrConversion = errors.New("scalar: complex value converted to a real type")
)
