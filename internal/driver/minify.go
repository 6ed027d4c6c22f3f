package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"jsmin/internal/buildpipeline"
	"jsmin/internal/compress"
	"jsmin/internal/diag"
	"jsmin/internal/format"
	"jsmin/internal/observ"
	"jsmin/internal/source"
	"jsmin/internal/trace"
)

// Options configure the per-file pipeline.
type Options struct {
	Compress       compress.Options
	Format         format.Options
	MaxDiagnostics int
	Cache          *DiskCache    // nil disables caching
	Timer          *observ.Timer // nil disables --timings
	Progress       buildpipeline.ProgressSink
}

// Result is the outcome of one file. Syntax errors land in Bag; Err is
// for operational failures only.
type Result struct {
	Path    string
	OutPath string
	FileID  source.FileID
	Output  []byte
	Bag     *diag.Bag
	Report  compress.Report
	Cached  bool
	InSize  int
	Timings buildpipeline.Timings
	Err     error
}

// Failed reports whether the file produced no usable output.
func (r *Result) Failed() bool {
	return r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

type stageRunner struct {
	res   *Result
	opts  *Options
	label string
}

func (s *stageRunner) run(stage buildpipeline.Stage, fn func() error) error {
	buildpipeline.Emit(s.opts.Progress, buildpipeline.Event{File: s.res.Path, Stage: stage, Status: buildpipeline.StatusWorking})
	idx := -1
	if s.opts.Timer != nil {
		idx = s.opts.Timer.Begin(string(stage) + " " + s.label)
	}
	start := time.Now()
	err := fn()
	s.res.Timings.Set(stage, time.Since(start))
	if s.opts.Timer != nil {
		s.opts.Timer.End(idx, "")
	}
	return err
}

func (s *stageRunner) finish(status buildpipeline.Status, err error) {
	buildpipeline.Emit(s.opts.Progress, buildpipeline.Event{
		File:    s.res.Path,
		Stage:   buildpipeline.StageEmit,
		Status:  status,
		Err:     err,
		Elapsed: s.res.Timings.Sum(),
	})
}

// MinifyFile runs parse, compress and print over a file already loaded into
// fs. It does not write the output anywhere.
func MinifyFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) Result {
	res, sr, status := minify(ctx, fs, id, opts)
	sr.finish(status, res.Err)
	return *res
}

// minify leaves the terminal progress event to the caller, which may still
// have an output file to write.
func minify(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*Result, *stageRunner, buildpipeline.Status) {
	file := fs.Get(id)
	res := &Result{FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}
	sr := &stageRunner{res: res, opts: &opts}
	if file == nil {
		res.Err = fmt.Errorf("file %d not loaded", id)
		return res, sr, buildpipeline.StatusError
	}
	res.Path = file.Path
	res.InSize = len(file.Content)
	sr.label = file.Path

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeModule, "file:"+file.Path, trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpan(ctx, span)
	defer func() {
		span.WithExtra("in", strconv.Itoa(res.InSize)).
			WithExtra("out", strconv.Itoa(len(res.Output))).
			WithExtra("cached", strconv.FormatBool(res.Cached)).
			End("")
	}()

	key := CacheKey(file, opts.Compress, opts.Format)
	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
			res.Output = payload.Output
			res.Report = payload.report()
			res.Cached = true
			return res, sr, buildpipeline.StatusCached
		}
	}

	var pr *ParseResult
	err := sr.run(buildpipeline.StageParse, func() error {
		var err error
		pr, err = parseLoaded(fs, id, opts.MaxDiagnostics)
		return err
	})
	if err != nil {
		res.Err = err
		return res, sr, buildpipeline.StatusError
	}
	res.Bag = pr.Bag
	if pr.Bag.HasErrors() {
		return res, sr, buildpipeline.StatusError
	}

	_ = sr.run(buildpipeline.StageCompress, func() error { //nolint:errcheck // optimizer has no error surface
		res.Report = compress.Optimize(ctx, pr.Builder, pr.FileID, opts.Compress)
		return nil
	})

	err = sr.run(buildpipeline.StageEmit, func() error {
		var err error
		res.Output, err = format.FormatFile(pr.Builder, pr.FileID, opts.Format)
		return err
	})
	if err != nil {
		res.Err = fmt.Errorf("%s: print: %w", file.Path, err)
		return res, sr, buildpipeline.StatusError
	}

	if opts.Cache != nil {
		// кэш: best effort, ошибка записи не портит результат
		_ = opts.Cache.Put(key, payloadFromReport(file.Path, res.Output, res.Report)) //nolint:errcheck
	}
	return res, sr, buildpipeline.StatusDone
}
