// Command fixedinfo prints element-type promotion rules and describes
// fixed-size vectors.
//
// Usage:
//
//	fixedinfo [flags] [vector [vector]]
//
// A vector is a comma-separated list of 1 to 8 numbers. With one vector it
// prints its rank, norm and negation; with two vectors of equal length it
// also prints their sum, difference and dot product.
//
// Examples:
//
//	fixedinfo 1,2,3
//	fixedinfo -prec 2 1,2,3 4,5,6
//	fixedinfo -lang de 1234.5,2
//	fixedinfo -promote
//	fixedinfo -promote -kinds int8,uint8,int,float32
//	fixedinfo -list
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/cwbudde/algo-fixed/fixed"
)

func main() {
	list := flag.Bool("list", false, "list element kinds")
	promote := flag.Bool("promote", false, "print the promotion table")
	kinds := flag.String("kinds", "", "comma-separated kinds for -promote (default: all)")
	lang := flag.String("lang", "", "BCP 47 language tag for number formatting")
	prec := flag.Int("prec", -1, "element precision (-1: shortest)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fixedinfo [flags] [vector [vector]]\n\n")
		fmt.Fprintf(os.Stderr, "Describes fixed-size vectors and element-type promotion.\n")
		fmt.Fprintf(os.Stderr, "A vector is a comma-separated list of 1 to %d numbers.\n\n", fixed.MaxLen)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fixedinfo 1,2,3 4,5,6\n")
		fmt.Fprintf(os.Stderr, "  fixedinfo -lang de -prec 1 1234.5,2\n")
		fmt.Fprintf(os.Stderr, "  fixedinfo -promote -kinds int8,uint8,float32\n")
	}
	flag.Parse()

	if *list {
		printKinds(os.Stdout)
		return
	}

	if *promote {
		if err := printPromotion(os.Stdout, *kinds); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []fixed.FormatOption{fixed.WithPrecision(*prec)}
	if *prec >= 0 {
		opts = append(opts, fixed.WithVerb('f'))
	}
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid language %q: %v\n", *lang, err)
			os.Exit(1)
		}
		opts = append(opts, fixed.WithLanguage(tag))
	}

	if err := run(os.Stdout, args, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
