package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"jsmin/internal/compress"
)

// Config mirrors jsmin.toml. Keys left out of the file keep the values of
// DefaultConfig.
type Config struct {
	Compress CompressConfig `toml:"compress"`
	Output   OutputConfig   `toml:"output"`
	Cache    CacheConfig    `toml:"cache"`
}

type CompressConfig struct {
	Unused               bool `toml:"unused"`
	Passes               int  `toml:"passes"`
	PreserveArgPositions bool `toml:"preserve_arg_positions"`
}

type OutputConfig struct {
	Pretty bool   `toml:"pretty"`
	OutDir string `toml:"out_dir"`
	Suffix string `toml:"suffix"` // добавляется к имени файла при записи рядом с исходником
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir,omitempty"` // пусто: $XDG_CACHE_HOME/jsmin
}

func DefaultConfig() Config {
	opts := compress.DefaultOptions()
	return Config{
		Compress: CompressConfig{
			Unused:               opts.Unused,
			Passes:               opts.Passes,
			PreserveArgPositions: opts.PreserveArgPositions,
		},
		Output: OutputConfig{OutDir: "dist", Suffix: ".min.js"},
		Cache:  CacheConfig{Enabled: true},
	}
}

// CompressOptions converts the [compress] table for the optimizer.
func (c Config) CompressOptions() compress.Options {
	return compress.Options{
		Unused:               c.Compress.Unused,
		Passes:               c.Compress.Passes,
		PreserveArgPositions: c.Compress.PreserveArgPositions,
	}
}

// Manifest is a loaded jsmin.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// LoadManifest finds and loads jsmin.toml above startDir. ok is false when
// there is none; the defaults are returned then.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: DefaultConfig()}, false, nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes path over DefaultConfig and rejects unknown keys.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(cfg, meta); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig is LoadConfig for in-memory text.
func DecodeConfig(text string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := validate(cfg, meta); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if meta.IsDefined("compress", "passes") && cfg.Compress.Passes < 1 {
		return fmt.Errorf("[compress].passes must be at least 1, got %d", cfg.Compress.Passes)
	}
	if meta.IsDefined("output", "out_dir") && strings.TrimSpace(cfg.Output.OutDir) == "" {
		return fmt.Errorf("[output].out_dir must not be empty")
	}
	if meta.IsDefined("output", "suffix") && !strings.HasSuffix(cfg.Output.Suffix, ".js") {
		return fmt.Errorf("[output].suffix must end in .js, got %q", cfg.Output.Suffix)
	}
	return nil
}
