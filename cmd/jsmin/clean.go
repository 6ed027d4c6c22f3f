package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsmin/internal/driver"
	"jsmin/internal/project"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the minify output cache",
	Long: `Clean drops every cached minify result. The cache directory comes from
the [cache] section of jsmin.toml, or the per-user cache directory.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	manifest, _, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	dir := cacheDir(manifest.Root, manifest.Config)
	if dir == "" {
		if dir, err = driver.DefaultCacheDir(); err != nil {
			return err
		}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "cache directory not found")
		return nil
	}
	cache, err := driver.OpenDiskCache(dir)
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	wd, _ := os.Getwd() //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", formatPathForOutput(wd, dir))
	return nil
}
