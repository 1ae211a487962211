// Command buffonbench runs the Buffon's Needle simulation without a window
// and reports the resulting pi estimate. Useful for checking convergence and
// for timing bulk needle generation.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/buffon/board"
	"chosenoffset.com/buffon/sim"
)

func main() {
	drops := flag.Int("drops", 100000, "Number of needles to drop")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	space := flag.Float64("space", 100, "Column spacing in pixels")
	count := flag.Int("columns", 8, "Number of columns")
	height := flag.Float64("height", 400, "Board height in pixels")
	length := flag.Float64("length", 75, "Needle length in pixels")
	verbose := flag.Bool("v", false, "Log rate decisions to stderr")
	flag.Parse()

	if *length > *space {
		log.Fatalf("needle length %v can't be greater than column spacing %v", *length, *space)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	b := board.New(*space, *count, *height)
	run := sim.NewRun(b, *length, rng)
	run.Add(*drops)

	rates := sim.RateController{DefaultTargetFPS: 100}

	start := time.Now()
	for run.DropsLeft() > 0 {
		perFrame, _ := rates.Rates(run.DropsLeft())
		run.Step(perFrame)
		// The history only matters for rendering; drop it to keep memory flat.
		run.Truncate(0)
	}
	elapsed := time.Since(start)

	estimate := run.Pi()
	fmt.Printf("drops:    %d\n", run.Drops)
	fmt.Printf("hits:     %d\n", run.Hits)
	fmt.Printf("seed:     %d\n", *seed)
	fmt.Printf("estimate: %.6f\n", estimate)
	fmt.Printf("error:    %.6f (%.3f%%)\n",
		math.Abs(estimate-math.Pi), math.Abs(estimate-math.Pi)/math.Pi*100)
	fmt.Printf("elapsed:  %s\n", elapsed)
}
