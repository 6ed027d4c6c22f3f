package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsmin/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a jsmin.toml with default settings",
	Long: `Init writes a jsmin.toml manifest with the default compress and output
settings. If [path] is omitted, the current directory is used; a missing
directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}
	path, err := project.WriteManifest(target)
	if err != nil {
		return err
	}
	wd, _ := os.Getwd() //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", formatPathForOutput(wd, path))
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if len(args) == 0 || args[0] == "." {
		return wd, nil
	}
	if filepath.IsAbs(args[0]) {
		return args[0], nil
	}
	return filepath.Join(wd, args[0]), nil
}

// formatPathForOutput shows path relative to base when it lies below it.
func formatPathForOutput(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return path
	}
	return rel
}
