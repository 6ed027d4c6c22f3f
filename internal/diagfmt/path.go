package diagfmt

import (
	"path/filepath"
	"strings"

	"jsmin/internal/source"
)

func displayPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeRelative:
		return f.RelPath(fs.BaseDir())
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		rel := f.RelPath(fs.BaseDir())
		if strings.HasPrefix(rel, "../") {
			return f.Path
		}
		return rel
	}
}
