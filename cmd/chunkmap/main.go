// Command chunkmap stringifies and doubles a list of integers with
// chunkmap.Map and prints the results.
//
//	chunkmap [-threshold n] [-v] [int ...]
//
// Without arguments it uses 1 2 3 4 5.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/indrora/chunkmap"
)

func main() {
	threshold := flag.Int("threshold", chunkmap.DefaultThreshold, "maximum chunk size")
	verbose := flag.Bool("v", false, "log chunk dispatch and faults to stderr")
	flag.Parse()

	data := []int{1, 2, 3, 4, 5}
	if flag.NArg() > 0 {
		data = data[:0]
		for _, arg := range flag.Args() {
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid integer %q: %v\n", arg, err)
				os.Exit(2)
			}
			data = append(data, n)
		}
	}

	opts := chunkmap.Options{}.WithThreshold(*threshold)
	if *verbose {
		opts = opts.WithReporter(chunkmap.NewLogReporter(log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)))
	}

	fmt.Printf("data    = %v\n", data)

	strs, err := chunkmap.Map(data, strconv.Itoa, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("strings = %q\n", strs)

	doubled, err := chunkmap.Map(data, func(x int) int { return x + x }, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("doubled = %v\n", doubled)
}

func fail(err error) {
	var agg *chunkmap.AggregateFailure
	switch {
	case errors.Is(err, chunkmap.ErrInvalidConfiguration):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	case errors.As(err, &agg):
		for _, f := range agg.Faults {
			fmt.Fprintln(os.Stderr, f)
		}
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
