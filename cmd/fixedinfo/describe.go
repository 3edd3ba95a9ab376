package main

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/scalar"
)

func run(w io.Writer, args []string, opts []fixed.FormatOption) error {
	a, err := parseVector(args[0])
	if err != nil {
		return err
	}

	var b []float64
	if len(args) > 1 {
		if b, err = parseVector(args[1]); err != nil {
			return err
		}
	}

	return describe(w, a, b, opts)
}

func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		out = append(out, x)
	}
	return out, nil
}

// describe picks the vector type matching len(a).
func describe(w io.Writer, a, b []float64, opts []fixed.FormatOption) error {
	switch len(a) {
	case 1:
		return describeN[[1]float64](w, a, b, opts)
	case 2:
		return describeN[[2]float64](w, a, b, opts)
	case 3:
		return describeN[[3]float64](w, a, b, opts)
	case 4:
		return describeN[[4]float64](w, a, b, opts)
	case 5:
		return describeN[[5]float64](w, a, b, opts)
	case 6:
		return describeN[[6]float64](w, a, b, opts)
	case 7:
		return describeN[[7]float64](w, a, b, opts)
	case 8:
		return describeN[[8]float64](w, a, b, opts)
	case 9:
		return describeN[[9]float64](w, a, b, opts)
	case 10:
		return describeN[[10]float64](w, a, b, opts)
	case 11:
		return describeN[[11]float64](w, a, b, opts)
	case 12:
		return describeN[[12]float64](w, a, b, opts)
	case 13:
		return describeN[[13]float64](w, a, b, opts)
	case 14:
		return describeN[[14]float64](w, a, b, opts)
	case 15:
		return describeN[[15]float64](w, a, b, opts)
	case 16:
		return describeN[[16]float64](w, a, b, opts)
	default:
		return fmt.Errorf("vector length %d not in [1, %d]", len(a), fixed.MaxLen)
	}
}

func describeN[A fixed.Array[float64]](w io.Writer, a, b []float64, opts []fixed.FormatOption) error {
	va, err := fixed.FromSlice[A](a)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "a\t%s\n", va.Text(opts...))
	fmt.Fprintf(tw, "rank\t%d\n", va.Len())
	fmt.Fprintf(tw, "|a|\t%s\n", fixed.Scalar(va.Norm(), opts...))
	fmt.Fprintf(tw, "-a\t%s\n", va.Neg().Text(opts...))

	if b != nil {
		vb, err := fixed.FromSlice[A](b)
		if err != nil {
			return fmt.Errorf("second vector: %w", err)
		}
		fmt.Fprintf(tw, "b\t%s\n", vb.Text(opts...))
		fmt.Fprintf(tw, "|b|\t%s\n", fixed.Scalar(vb.Norm(), opts...))
		fmt.Fprintf(tw, "a+b\t%s\n", va.Add(vb).Text(opts...))
		fmt.Fprintf(tw, "a-b\t%s\n", va.Sub(vb).Text(opts...))
		fmt.Fprintf(tw, "a.b\t%s\n", fixed.Scalar(va.Dot(vb), opts...))
	}

	return tw.Flush()
}

func printKinds(w io.Writer) {
	for _, k := range scalar.Kinds() {
		fmt.Fprintln(w, k)
	}
}

func resolveKinds(list string) ([]reflect.Kind, error) {
	all := scalar.Kinds()
	if strings.TrimSpace(list) == "" {
		return all, nil
	}

	byName := make(map[string]reflect.Kind, len(all))
	for _, k := range all {
		byName[k.String()] = k
	}

	var kinds []reflect.Kind
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		k, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (use -list to see available)", scalar.ErrNotNumeric, name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func printPromotion(w io.Writer, list string) error {
	kinds, err := resolveKinds(list)
	if err != nil {
		return err
	}

	table, err := scalar.Table(kinds)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range kinds {
		fmt.Fprintf(tw, "\t%v", k)
	}
	fmt.Fprintln(tw)

	for i, k := range kinds {
		fmt.Fprintf(tw, "%v", k)
		for _, p := range table[i] {
			fmt.Fprintf(tw, "\t%v", p)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
