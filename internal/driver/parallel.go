package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"jsmin/internal/buildpipeline"
	"jsmin/internal/source"
)

// MinifyAll minifies inputs in parallel and writes every successful output
// to its OutPath. Files are loaded up front so workers only read the
// FileSet. The returned error is set only on cancellation; per-file
// failures live in each Result.
func MinifyAll(ctx context.Context, inputs []Input, opts Options, jobs int) (*source.FileSet, []Result, error) {
	fileSet := source.NewFileSet()
	results := make([]Result, len(inputs))
	ids := make([]source.FileID, len(inputs))
	loaded := make([]bool, len(inputs))

	for i, in := range inputs {
		results[i] = Result{Path: in.Path, OutPath: in.OutPath}
		id, err := fileSet.Load(in.Path)
		if err != nil {
			results[i].Err = fmt.Errorf("failed to load %s: %w", in.Path, err)
			continue
		}
		ids[i], loaded[i] = id, true
	}
	for i := range inputs {
		status := buildpipeline.StatusQueued
		if !loaded[i] {
			status = buildpipeline.StatusError
		}
		buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: inputs[i].Path, Stage: buildpipeline.StageLoad, Status: status, Err: results[i].Err})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(inputs))))

	for i := range inputs {
		if !loaded[i] {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, sr, status := minify(gctx, fileSet, ids[i], opts)
			res.OutPath = inputs[i].OutPath
			if status != buildpipeline.StatusError && res.OutPath != "" {
				start := time.Now()
				if err := writeOutput(res.OutPath, res.Output); err != nil {
					res.Err = err
					status = buildpipeline.StatusError
				}
				res.Timings.Set(buildpipeline.StageEmit, res.Timings.Duration(buildpipeline.StageEmit)+time.Since(start))
			}
			sr.finish(status, res.Err)
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = *res
			return nil
		})
	}
	err := g.Wait()
	return fileSet, results, err
}

// writeOutput replaces path atomically.
func writeOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %q: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".jsmin-*")
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
