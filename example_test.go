package chunkmap_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/indrora/chunkmap"
)

func ExampleMap() {
	out, err := chunkmap.Map([]int{1, 2, 3, 4, 5}, strconv.Itoa, chunkmap.Options{}.WithThreshold(2))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out)
	// Output: ["1" "2" "3" "4" "5"]
}

func ExampleMap_fault() {
	always := func(f float64) float64 { panic("unsupported") }

	_, err := chunkmap.Map([]float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6}, always, chunkmap.Options{})

	var agg *chunkmap.AggregateFailure
	if errors.As(err, &agg) {
		fmt.Println("failed chunks:", agg.Chunks())
	}
	// Output: failed chunks: [0 1 2]
}

func ExampleReduce() {
	concat := func(a, b string) (string, error) { return a + b, nil }
	out, _ := chunkmap.Reduce([]string{"c", "h", "u", "n", "k"}, concat, chunkmap.Options{})
	fmt.Println(out)
	// Output: chunk
}
