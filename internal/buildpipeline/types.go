package buildpipeline

import "time"

// Stage describes one step of the per-file minify pipeline.
type Stage string

const (
	StageLoad     Stage = "load"
	StageParse    Stage = "parse"
	StageCompress Stage = "compress"
	StageEmit     Stage = "emit"
)

// Stages lists the stages in pipeline order.
var Stages = []Stage{StageLoad, StageParse, StageCompress, StageEmit}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusCached  Status = "cached" // вывод взят из дискового кэша
	StatusError   Status = "error"
)

// Finished reports a terminal status for the file.
func (s Status) Finished() bool {
	return s == StatusDone || s == StatusCached || s == StatusError
}

// Event reports progress for a file (or for the overall pipeline when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Timings holds stage durations of one file.
type Timings struct {
	stages map[Stage]time.Duration
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration, len(Stages))
	}
	t.stages[stage] = dur
}

func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Sum returns the total over stages, or over every stage when none given.
func (t Timings) Sum(stages ...Stage) time.Duration {
	if len(stages) == 0 {
		stages = Stages
	}
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
