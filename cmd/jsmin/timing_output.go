package main

import (
	"fmt"
	"io"
	"time"

	"jsmin/internal/buildpipeline"
	"jsmin/internal/driver"
	"jsmin/internal/observ"
)

// printTimings prints per-stage totals over all files, then the raw phase
// list of the timer.
func printTimings(out io.Writer, timer *observ.Timer, results []driver.Result) {
	var total buildpipeline.Timings
	for i := range results {
		for _, stage := range buildpipeline.Stages {
			if results[i].Timings.Has(stage) {
				total.Set(stage, total.Duration(stage)+results[i].Timings.Duration(stage))
			}
		}
	}
	for _, stage := range buildpipeline.Stages {
		if total.Has(stage) {
			fmt.Fprintf(out, "%-9s %8.1f ms\n", stage, toMillis(total.Duration(stage)))
		}
	}
	if timer != nil {
		fmt.Fprint(out, timer.Summary())
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
