package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsmin/internal/diag"
	"jsmin/internal/diagfmt"
	"jsmin/internal/project"
	"jsmin/internal/source"
)

type globalFlags struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	pf := cmd.Root().PersistentFlags()
	var g globalFlags
	var err error
	if g.color, err = pf.GetString("color"); err != nil {
		return g, err
	}
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return g, err
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return g, err
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return g, err
	}
	return g, nil
}

// printDiagnostics renders bag to stderr. It reports whether there were
// errors.
func printDiagnostics(w io.Writer, g globalFlags, bag *diag.Bag, fs *source.FileSet) bool {
	if bag == nil || bag.Len() == 0 {
		return false
	}
	if bag.HasErrors() || bag.HasWarnings() || !g.quiet {
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     colorEnabled(g.color, os.Stderr),
			Context:   1,
			ShowNotes: true,
		})
	}
	return bag.HasErrors()
}

// cacheDir resolves the configured cache directory against the manifest
// root. Empty means the per-user default.
func cacheDir(root string, cfg project.Config) string {
	dir := cfg.Cache.Dir
	if dir == "" || filepath.IsAbs(dir) || root == "" {
		return dir
	}
	return filepath.Join(root, dir)
}
