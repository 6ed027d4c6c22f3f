package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jsmin/internal/driver"
	"jsmin/internal/format"
	"jsmin/internal/observ"
	"jsmin/internal/project"
	"jsmin/internal/source"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <file|dir>...",
	Short: "Minify JavaScript files",
	Long: `Minify parses each input, inlines constant parameters and prints compact
code. A single file without -o is written to stdout; otherwise outputs go to
the configured out_dir (mirroring the input tree) or next to the sources
with the configured suffix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMinify,
}

func init() {
	addMinifyFlags(minifyCmd.Flags())
}

func addMinifyFlags(f *pflag.FlagSet) {
	f.StringP("out", "o", "", "output file (single input), directory, or - for stdout")
	f.Bool("pretty", false, "pretty-print instead of compact output")
	f.Int("passes", 0, "optimizer iterations (default from jsmin.toml, else 2)")
	f.Bool("no-unused", false, "disable parameter inlining")
	f.Bool("preserve-arg-positions", false, "only drop inlined parameters that end the parameter list")
	f.Int("jobs", 0, "max parallel workers (0=auto)")
	f.String("ui", "auto", "progress UI (auto|on|off)")
	f.Bool("no-cache", false, "do not read or write the disk cache")
}

type minifyFlags struct {
	out      string
	outSet   bool
	pretty   bool
	passes   int
	noUnused bool
	preserve bool
	jobs     int
	ui       uiMode
	noCache  bool
}

func readMinifyFlags(cmd *cobra.Command) (minifyFlags, error) {
	f := cmd.Flags()
	var mf minifyFlags
	var err error
	if mf.out, err = f.GetString("out"); err != nil {
		return mf, fmt.Errorf("failed to get out flag: %w", err)
	}
	if mf.pretty, err = f.GetBool("pretty"); err != nil {
		return mf, fmt.Errorf("failed to get pretty flag: %w", err)
	}
	if mf.passes, err = f.GetInt("passes"); err != nil {
		return mf, fmt.Errorf("failed to get passes flag: %w", err)
	}
	if mf.noUnused, err = f.GetBool("no-unused"); err != nil {
		return mf, fmt.Errorf("failed to get no-unused flag: %w", err)
	}
	if mf.preserve, err = f.GetBool("preserve-arg-positions"); err != nil {
		return mf, fmt.Errorf("failed to get preserve-arg-positions flag: %w", err)
	}
	if mf.jobs, err = f.GetInt("jobs"); err != nil {
		return mf, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if mf.noCache, err = f.GetBool("no-cache"); err != nil {
		return mf, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiStr, err := f.GetString("ui")
	if err != nil {
		return mf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if mf.ui, err = readUIMode(uiStr); err != nil {
		return mf, err
	}
	mf.outSet = f.Changed("out")
	if f.Changed("passes") && mf.passes < 1 {
		return mf, fmt.Errorf("--passes must be at least 1")
	}
	return mf, nil
}

// applyFlags layers command-line overrides on top of the manifest.
func applyFlags(cmd *cobra.Command, cfg project.Config, mf minifyFlags) project.Config {
	f := cmd.Flags()
	if f.Changed("pretty") {
		cfg.Output.Pretty = mf.pretty
	}
	if f.Changed("passes") {
		cfg.Compress.Passes = mf.passes
	}
	if mf.noUnused {
		cfg.Compress.Unused = false
	}
	if f.Changed("preserve-arg-positions") {
		cfg.Compress.PreserveArgPositions = mf.preserve
	}
	if mf.noCache {
		cfg.Cache.Enabled = false
	}
	return cfg
}

// resolveLayout decides where outputs go. toStdout is set when the single
// input should be printed.
func resolveLayout(args []string, mf minifyFlags, m *project.Manifest) (layout driver.Layout, single string, toStdout bool) {
	singleFile := len(args) == 1 && !isDir(args[0])
	switch {
	case mf.out == "-" || (singleFile && !mf.outSet):
		return driver.Layout{}, "", true
	case singleFile && strings.HasSuffix(mf.out, ".js"):
		return driver.Layout{}, mf.out, false
	case mf.outSet:
		return driver.Layout{OutDir: mf.out}, "", false
	}
	out := m.Config.Output
	if out.OutDir != "" {
		dir := out.OutDir
		if m.Root != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Root, dir)
		}
		return driver.Layout{OutDir: dir}, "", false
	}
	return driver.Layout{Suffix: out.Suffix}, "", false
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

func runMinify(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	mf, err := readMinifyFlags(cmd)
	if err != nil {
		return err
	}
	manifest, _, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	cfg := applyFlags(cmd, manifest.Config, mf)

	layout, single, toStdout := resolveLayout(args, mf, manifest)
	if toStdout && (len(args) != 1 || isDir(args[0])) {
		return fmt.Errorf("-o - needs exactly one input file")
	}
	inputs, err := driver.CollectInputs(args, layout)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .js files found in %s", strings.Join(args, ", "))
	}
	if single != "" {
		inputs[0].OutPath = single
	}

	opts := driver.Options{
		Compress:       cfg.CompressOptions(),
		Format:         format.Options{Pretty: cfg.Output.Pretty},
		MaxDiagnostics: g.maxDiagnostics,
	}
	if g.timings {
		opts.Timer = observ.NewTimer()
	}
	if cfg.Cache.Enabled {
		cache, err := driver.OpenDiskCache(cacheDir(manifest.Root, cfg))
		if err != nil {
			if !g.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	var (
		fs      *source.FileSet
		results []driver.Result
	)
	if !toStdout && !g.quiet && shouldUseTUI(mf.ui, len(inputs)) {
		fs, results, err = runMinifyWithUI(cmd.Context(), inputs, opts, mf.jobs)
	} else {
		fs, results, err = driver.MinifyAll(cmd.Context(), inputs, opts, mf.jobs)
	}
	if err != nil {
		return err
	}

	failed := reportResults(cmd.ErrOrStderr(), g, fs, results)
	if toStdout && failed == 0 {
		out := cmd.OutOrStdout()
		if _, err := out.Write(results[0].Output); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if !g.quiet && !toStdout {
		printSummary(cmd.OutOrStdout(), results)
	}
	if opts.Timer != nil {
		printTimings(cmd.ErrOrStderr(), opts.Timer, results)
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

// reportResults prints diagnostics and operational errors and returns the
// number of failed files.
func reportResults(w io.Writer, g globalFlags, fs *source.FileSet, results []driver.Result) int {
	failed := 0
	for i := range results {
		r := &results[i]
		printDiagnostics(w, g, r.Bag, fs)
		if r.Err != nil {
			fmt.Fprintf(w, "error: %v\n", r.Err)
		}
		if r.Failed() {
			failed++
		}
	}
	return failed
}

func printSummary(w io.Writer, results []driver.Result) {
	var files, cached, in, out, inlined int
	for i := range results {
		r := &results[i]
		if r.Failed() {
			continue
		}
		files++
		in += r.InSize
		out += len(r.Output)
		inlined += len(r.Report.Inlined)
		if r.Cached {
			cached++
		}
	}
	saved := 0.0
	if in > 0 {
		saved = 100 * float64(in-out) / float64(in)
	}
	fmt.Fprintf(w, "minified %d file(s)", files)
	if cached > 0 {
		fmt.Fprintf(w, " (%d cached)", cached)
	}
	fmt.Fprintf(w, ": %d -> %d bytes (%.1f%% smaller), %d parameter(s) inlined\n", in, out, saved, inlined)
}
