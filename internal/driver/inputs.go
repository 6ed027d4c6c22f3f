package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Layout decides where outputs go.
type Layout struct {
	OutDir string // mirror inputs under this directory
	Suffix string // без OutDir: app.js -> app<Suffix> рядом с исходником
}

// Input is one file to minify. An empty OutPath means the caller handles
// the output itself (stdout).
type Input struct {
	Path    string
	OutPath string
}

// CollectInputs expands files and directories into a sorted list of .js
// inputs. Directory walks skip node_modules, hidden directories, the output
// directory and files that already carry the output suffix.
func CollectInputs(paths []string, layout Layout) ([]Input, error) {
	var outAbs string
	if layout.OutDir != "" {
		abs, err := filepath.Abs(layout.OutDir)
		if err != nil {
			return nil, err
		}
		outAbs = abs
	}

	seen := make(map[string]bool)
	var inputs []Input
	add := func(root, path string) error {
		path = filepath.ToSlash(filepath.Clean(path))
		if seen[path] {
			return nil
		}
		seen[path] = true
		out, err := outputPath(root, path, layout)
		if err != nil {
			return err
		}
		inputs = append(inputs, Input{Path: path, OutPath: out})
		return nil
	}

	for _, arg := range paths {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
		}
		if !st.IsDir() {
			if err := add(filepath.Dir(arg), arg); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && skipDir(path, d.Name(), outAbs) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".js") || (layout.Suffix != "" && strings.HasSuffix(path, layout.Suffix)) {
				return nil
			}
			return add(arg, path)
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Path < inputs[j].Path })
	return inputs, nil
}

func skipDir(path, name, outAbs string) bool {
	if name == "node_modules" || strings.HasPrefix(name, ".") {
		return true
	}
	if outAbs == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	return err == nil && abs == outAbs
}

func outputPath(root, path string, layout Layout) (string, error) {
	switch {
	case layout.OutDir != "":
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", err
		}
		return filepath.ToSlash(filepath.Join(layout.OutDir, rel)), nil
	case layout.Suffix != "":
		return strings.TrimSuffix(path, ".js") + layout.Suffix, nil
	default:
		return "", nil
	}
}
