package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"lifeboard/internal/sweep"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("density %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	width := flag.Int("w", 64, "board width")
	height := flag.Int("h", 64, "board height")
	steps := flag.Int("steps", 500, "generations to simulate per trial")
	trials := flag.Int("trials", 16, "random boards per density")
	seed := flag.Int64("seed", 1, "seed of the first trial")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var densities floatList
	flag.Var(&densities, "density", "comma separated densities to sweep (repeatable)")
	flag.Parse()

	if len(densities) == 0 {
		densities = floatList{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	}

	p := sweep.Params{
		Width:     *width,
		Height:    *height,
		Steps:     *steps,
		Trials:    *trials,
		Seed:      *seed,
		Workers:   *workers,
		Densities: densities,
	}
	fmt.Printf("Sweeping %d densities x %d trials on %dx%d (%d workers, %d steps)\n",
		len(densities), *trials, *width, *height, *workers, *steps)

	start := time.Now()
	results, err := sweep.Run(context.Background(), p)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	for _, res := range results {
		fmt.Println(res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].MeanFinal > results[j].MeanFinal })
	fmt.Printf("\nBest density %.2f: mean final population %.1f (elapsed %s)\n",
		results[0].Density, results[0].MeanFinal, time.Since(start).Round(time.Millisecond))
}
