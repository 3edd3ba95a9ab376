package fixed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestVectorString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "ints", got: Vec3(1, 2, 3).String(), want: "{ 1, 2, 3 }"},
		{name: "single", got: Vec1(7).String(), want: "{ 7 }"},
		{name: "floats", got: Vec3(2.5, 3.1, 4.2).String(), want: "{ 2.5, 3.1, 4.2 }"},
		{name: "zero", got: Zero[[2]float64, float64]().String(), want: "{ 0, 0 }"},
		{name: "complex", got: Vec1(complex(1.0, 2.0)).String(), want: "{ (1+2i) }"},
		{name: "sprint", got: fmt.Sprint(Vec2(1, 2)), want: "{ 1, 2 }"},
		{name: "sprintf s", got: fmt.Sprintf("%s", Vec2(1, 2)), want: "{ 1, 2 }"},
		{name: "precision", got: fmt.Sprintf("%.1f", Vec2(1.0, 2.0)), want: "{ 1.0, 2.0 }"},
		{name: "width", got: fmt.Sprintf("%3d", Vec2(1, 20)), want: "{   1,  20 }"},
		{name: "plus", got: fmt.Sprintf("%+d", Vec2(1, -2)), want: "{ +1, -2 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMatrixString(t *testing.T) {
	m := Rows2(Vec3(0, 1, 2), Vec3(3, 4, 5))
	assert.Equal(t, "{{0, 1, 2},\n{3, 4, 5}}", m.String())
	assert.Equal(t, "{{0, 1, 2},\n{3, 4, 5}}", fmt.Sprint(m))

	single := Rows1(Vec2(1.5, 2.0))
	assert.Equal(t, "{{1.50, 2.00}}", fmt.Sprintf("%.2f", single))
}

func TestText(t *testing.T) {
	v := Vec2(1.0, 2.5)
	assert.Equal(t, v.String(), v.Text())
	assert.Equal(t, "{ 1.00, 2.50 }", v.Text(WithVerb('f'), WithPrecision(2)))
	assert.Equal(t, "{ 1.000000e+00, 2.500000e+00 }", v.Text(WithVerb('e')))

	de := Vec2(1234567, 1).Text(WithLanguage(language.German), WithVerb('d'))
	assert.Equal(t, "{ 1.234.567, 1 }", de)

	m := Rows2(Vec1(0.5), Vec1(1.0))
	assert.Equal(t, "{{0.5},\n{1.0}}", m.Text(WithVerb('f'), WithPrecision(1)))
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "5", Scalar(Vec2(3.0, 4.0).Norm()))
	assert.Equal(t, "5.00", Scalar(5.0, WithVerb('f'), WithPrecision(2)))
	assert.Equal(t, "1.234.567", Scalar(1234567, WithVerb('d'), WithLanguage(language.German)))
	assert.Equal(t, "5,0", Scalar(5.0, WithVerb('f'), WithPrecision(1), WithLanguage(language.German)))
	assert.Equal(t, "(1+2i)", Scalar(1+2i))
}

func TestFormatOptions(t *testing.T) {
	cfg := ApplyFormatOptions()
	assert.Equal(t, DefaultFormatConfig(), cfg)

	cfg = ApplyFormatOptions(WithVerb(0), WithPrecision(-3), nil)
	assert.Equal(t, 'v', cfg.Verb)
	assert.Equal(t, -1, cfg.Precision)

	cfg = ApplyFormatOptions(WithVerb('g'), WithPrecision(4), WithLanguage(language.French))
	assert.Equal(t, 'g', cfg.Verb)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, language.French, cfg.Language)
	assert.Equal(t, "%.4g", cfg.directive())
}
