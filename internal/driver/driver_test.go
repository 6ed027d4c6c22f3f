package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jsmin/internal/buildpipeline"
	"jsmin/internal/compress"
	"jsmin/internal/observ"
	"jsmin/internal/testkit"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func defaultOptions() Options {
	return Options{Compress: compress.DefaultOptions(), MaxDiagnostics: 20}
}

func TestCollectInputs(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "b.js"), "b()")
	writeFile(t, filepath.Join(src, "lib", "a.js"), "a()")
	writeFile(t, filepath.Join(src, "a.min.js"), "skip()")
	writeFile(t, filepath.Join(src, "notes.txt"), "skip")
	writeFile(t, filepath.Join(src, "node_modules", "dep.js"), "skip()")
	writeFile(t, filepath.Join(src, ".cache", "x.js"), "skip()")

	t.Run("suffix", func(t *testing.T) {
		inputs, err := CollectInputs([]string{src}, Layout{Suffix: ".min.js"})
		if err != nil {
			t.Fatal(err)
		}
		if len(inputs) != 2 {
			t.Fatalf("inputs = %+v", inputs)
		}
		if !strings.HasSuffix(inputs[0].Path, "src/b.js") || !strings.HasSuffix(inputs[0].OutPath, "src/b.min.js") {
			t.Errorf("first = %+v", inputs[0])
		}
		if !strings.HasSuffix(inputs[1].Path, "src/lib/a.js") {
			t.Errorf("second = %+v", inputs[1])
		}
	})

	t.Run("out dir mirrors tree", func(t *testing.T) {
		out := filepath.Join(src, "dist")
		writeFile(t, filepath.Join(out, "old.js"), "skip()")
		inputs, err := CollectInputs([]string{src}, Layout{OutDir: out})
		if err != nil {
			t.Fatal(err)
		}
		if len(inputs) != 3 {
			t.Fatalf("inputs = %+v", inputs)
		}
		want := filepath.ToSlash(filepath.Join(out, "lib", "a.js"))
		found := false
		for _, in := range inputs {
			if strings.Contains(in.Path, "/dist/") {
				t.Errorf("output dir walked: %s", in.Path)
			}
			found = found || in.OutPath == want
		}
		if !found {
			t.Errorf("no input maps to %s: %+v", want, inputs)
		}
	})

	t.Run("single file dedup", func(t *testing.T) {
		file := filepath.Join(src, "b.js")
		inputs, err := CollectInputs([]string{file, file}, Layout{})
		if err != nil {
			t.Fatal(err)
		}
		if len(inputs) != 1 || inputs[0].OutPath != "" {
			t.Errorf("inputs = %+v", inputs)
		}
	})

	if _, err := CollectInputs([]string{filepath.Join(root, "missing")}, Layout{}); err == nil {
		t.Error("missing path must fail")
	}
}

func TestMinifyAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "function f(a){return a+1}\nf(1); f(1);\n")
	writeFile(t, filepath.Join(root, "broken.js"), "var = ;\n")

	inputs, err := CollectInputs([]string{root}, Layout{Suffix: ".min.js"})
	if err != nil {
		t.Fatal(err)
	}
	rec := &buildpipeline.Recorder{}
	opts := defaultOptions()
	opts.Progress = rec
	opts.Timer = observ.NewTimer()

	_, results, err := MinifyAll(context.Background(), inputs, opts, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}

	app, broken := results[0], results[1]
	if app.Failed() {
		t.Fatalf("app failed: %v %v", app.Err, app.Bag.Items())
	}
	want := "function f(){const a=1;return a+1;}f(1);f(1);"
	if got := readFile(t, filepath.Join(root, "app.min.js")); got != want {
		t.Errorf("app.min.js = %q, want %q", got, want)
	}
	if len(app.Report.Inlined) != 1 || app.Report.Inlined[0].Param != "a" {
		t.Errorf("report = %+v", app.Report)
	}
	if !app.Timings.Has(buildpipeline.StageCompress) {
		t.Error("compress stage not timed")
	}

	if !broken.Failed() || !broken.Bag.HasErrors() {
		t.Error("broken.js must fail with diagnostics")
	}
	if _, err := os.Stat(filepath.Join(root, "broken.min.js")); !os.IsNotExist(err) {
		t.Error("no output for a file with syntax errors")
	}

	final := map[string]buildpipeline.Status{}
	for _, ev := range rec.Events() {
		if ev.Status.Finished() {
			final[filepath.Base(ev.File)] = ev.Status
		}
	}
	if final["app.js"] != buildpipeline.StatusDone || final["broken.js"] != buildpipeline.StatusError {
		t.Errorf("final statuses = %v", final)
	}
	if len(opts.Timer.Report().Phases) == 0 {
		t.Error("timer recorded nothing")
	}
}

func TestMinifyAllCache(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "function g(x){return x*2} g(3); g(3);")
	cache, err := OpenDiskCache(filepath.Join(root, ".cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := defaultOptions()
	opts.Cache = cache

	inputs, err := CollectInputs([]string{filepath.Join(root, "app.js")}, Layout{Suffix: ".min.js"})
	if err != nil {
		t.Fatal(err)
	}
	_, first, err := MinifyAll(context.Background(), inputs, opts, 1)
	if err != nil || first[0].Cached {
		t.Fatalf("first run: cached=%v err=%v", first[0].Cached, err)
	}
	_, second, err := MinifyAll(context.Background(), inputs, opts, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	if string(second[0].Output) != string(first[0].Output) {
		t.Errorf("cached output %q != %q", second[0].Output, first[0].Output)
	}
	if len(second[0].Report.Inlined) != 1 || second[0].Report.Inlined[0].Value != "3" {
		t.Errorf("cached report = %+v", second[0].Report)
	}

	// другие опции: другой ключ
	opts.Compress.Unused = false
	_, third, _ := MinifyAll(context.Background(), inputs, opts, 1)
	if third[0].Cached {
		t.Error("changed options must miss the cache")
	}
	if strings.Contains(string(third[0].Output), "const") {
		t.Errorf("unused=false must not inline: %q", third[0].Output)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cache.Dir()); !os.IsNotExist(err) {
		t.Error("DropAll must remove the cache directory")
	}
}

func TestMinifyAllLoadError(t *testing.T) {
	inputs := []Input{{Path: filepath.Join(t.TempDir(), "gone.js")}}
	_, results, err := MinifyAll(context.Background(), inputs, defaultOptions(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil || !results[0].Failed() {
		t.Errorf("expected load error, got %+v", results[0])
	}
}

func TestMinifyAllCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.js"), "a()")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := MinifyAll(ctx, []Input{{Path: filepath.Join(root, "a.js")}}, defaultOptions(), 1)
	if err == nil {
		t.Error("cancelled context must surface")
	}
}

func TestAnalyzeAndTokenize(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.js")
	writeFile(t, path, "function f(a,b){return a+b} f(1,2); f(1,3);")

	res, err := Analyze(path, compress.DefaultOptions(), 10)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, p := range res.Params {
		got[p.Param] = p.Verdict
	}
	if got["a"] != "consistent" || got["b"] != "inconsistent" {
		t.Errorf("verdicts = %v", got)
	}

	tr, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Tokens) < 10 || tr.Bag.HasErrors() {
		t.Errorf("tokens = %d, errors = %v", len(tr.Tokens), tr.Bag.Items())
	}

	if _, err := Parse(filepath.Join(root, "missing.js"), 10); err == nil {
		t.Error("Parse of a missing file must fail")
	}
}

func TestTestdataParses(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "*.js"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no testdata")
	}
	for _, path := range paths {
		res, err := Parse(path, 50)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if res.Bag.HasErrors() {
			t.Errorf("%s: unexpected diagnostics: %v", path, res.Bag.Items())
			continue
		}
		if err := testkit.CheckSpanInvariants(res.Builder, res.FileID, res.File); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}
}
