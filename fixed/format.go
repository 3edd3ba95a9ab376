package fixed

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-fixed/scalar"
)

type sprintfFunc func(format string, a ...any) string

func (c FormatConfig) directive() string {
	if c.Precision >= 0 {
		return "%." + strconv.Itoa(c.Precision) + string(c.Verb)
	}
	return "%" + string(c.Verb)
}

func (c FormatConfig) sprintf() sprintfFunc {
	if c.Language == language.Und {
		return fmt.Sprintf
	}
	p := message.NewPrinter(c.Language)
	return func(format string, a ...any) string {
		return p.Sprintf(format, a...)
	}
}

// elementDirective rebuilds the directive passed to Format so it can be
// applied to each element. %s and %q fall back to %v.
func elementDirective(f fmt.State, verb rune) string {
	if verb == 's' || verb == 'q' {
		verb = 'v'
	}
	return fmt.FormatString(f, verb)
}

func writeElems[T any](b *strings.Builder, elems iter.Seq[T], directive string, sprintf sprintfFunc) {
	first := true
	for x := range elems {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(sprintf(directive, x))
	}
}

func renderVector[T any](elems iter.Seq[T], directive string, sprintf sprintfFunc) string {
	var b strings.Builder
	b.WriteString("{ ")
	writeElems(&b, elems, directive, sprintf)
	b.WriteString(" }")
	return b.String()
}

func renderMatrix[M Grid[A], A Array[T], T scalar.Number](m Matrix[M, A, T], directive string, sprintf sprintfFunc) string {
	var b strings.Builder
	b.WriteByte('{')
	for r, row := range m.All() {
		if r > 0 {
			b.WriteString(",\n")
		}
		b.WriteByte('{')
		writeElems(&b, row.Values(), directive, sprintf)
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String()
}

// Scalar renders a single value the way Text renders each element, so
// results such as norms and dot products match the vectors they come from.
func Scalar[T scalar.Number](x T, opts ...FormatOption) string {
	cfg := ApplyFormatOptions(opts...)
	return cfg.sprintf()(cfg.directive(), x)
}

// String renders v as "{ 1, 2, 3 }".
func (v Vector[A, T]) String() string {
	return renderVector(v.Values(), "%v", fmt.Sprintf)
}

// Format implements fmt.Formatter. Flags, width and precision apply to each
// element: fmt.Sprintf("%.1f", Vec2(1.0, 2.0)) is "{ 1.0, 2.0 }".
func (v Vector[A, T]) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, renderVector(v.Values(), elementDirective(f, verb), fmt.Sprintf))
}

// Text renders v using the given options.
func (v Vector[A, T]) Text(opts ...FormatOption) string {
	cfg := ApplyFormatOptions(opts...)
	return renderVector(v.Values(), cfg.directive(), cfg.sprintf())
}

// String renders m as nested rows, one row per line:
//
//	{{0, 1, 2},
//	{3, 4, 5}}
func (m Matrix[M, A, T]) String() string {
	return renderMatrix(m, "%v", fmt.Sprintf)
}

// Format implements fmt.Formatter like Vector.Format.
func (m Matrix[M, A, T]) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, renderMatrix(m, elementDirective(f, verb), fmt.Sprintf))
}

// Text renders m using the given options.
func (m Matrix[M, A, T]) Text(opts ...FormatOption) string {
	cfg := ApplyFormatOptions(opts...)
	return renderMatrix(m, cfg.directive(), cfg.sprintf())
}
