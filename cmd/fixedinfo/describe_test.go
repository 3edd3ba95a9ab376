package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/scalar"
)

func TestRunSingleVector(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"3,4"}, nil))

	out := buf.String()
	assert.Contains(t, out, "{ 3, 4 }")
	assert.Contains(t, out, "rank  2")
	assert.Contains(t, out, "|a|   5")
	assert.Contains(t, out, "{ -3, -4 }")
}

func TestRunTwoVectors(t *testing.T) {
	var buf bytes.Buffer
	opts := []fixed.FormatOption{fixed.WithVerb('f'), fixed.WithPrecision(1)}
	require.NoError(t, run(&buf, []string{"1,2,3", "4,5,6"}, opts))

	out := buf.String()
	assert.Contains(t, out, "{ 5.0, 7.0, 9.0 }")
	assert.Contains(t, out, "{ -3.0, -3.0, -3.0 }")
	assert.Contains(t, out, "a.b   32.0\n")
	assert.Contains(t, out, "|a|   3.7\n")
}

func TestRunLocalizesScalars(t *testing.T) {
	var buf bytes.Buffer
	opts := []fixed.FormatOption{
		fixed.WithVerb('f'),
		fixed.WithPrecision(1),
		fixed.WithLanguage(language.German),
	}
	require.NoError(t, run(&buf, []string{"3,4", "1,0"}, opts))

	out := buf.String()
	assert.Contains(t, out, "{ 3,0, 4,0 }")
	assert.Contains(t, out, "|a|   5,0\n")
	assert.Contains(t, out, "|b|   1,0\n")
	assert.Contains(t, out, "a.b   3,0\n")
}

func TestRunSixteen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1"}, nil))
	assert.Contains(t, buf.String(), "rank  16\n")
	assert.Contains(t, buf.String(), "|a|   4\n")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "not a number", args: []string{"1,x"}, want: "parse"},
		{name: "too long", args: []string{"1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17"}, want: "not in [1, 16]"},
		{name: "length mismatch", args: []string{"1,2", "1,2,3"}, want: "second vector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, tt.args, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	err := run(&bytes.Buffer{}, []string{"1,2", "1"}, nil)
	assert.ErrorIs(t, err, fixed.ErrLength)
}

func TestPrintPromotion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPromotion(&buf, "int, float64"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"int", "float64"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"int", "int", "float64"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"float64", "float64", "float64"}, strings.Fields(lines[2]))

	err := printPromotion(&buf, "int,string")
	assert.ErrorIs(t, err, scalar.ErrNotNumeric)
}

func TestPrintKinds(t *testing.T) {
	var buf bytes.Buffer
	printKinds(&buf)
	assert.Equal(t, len(scalar.Kinds()), strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "complex128\n")
}
