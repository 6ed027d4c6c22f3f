package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsmin/internal/compress"
	"jsmin/internal/format"
	"jsmin/internal/project"
	"jsmin/internal/source"
	"jsmin/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты минификации по хешу содержимого и опций.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached minification.
type DiskPayload struct {
	Schema  uint16
	Path    string // для отладки, в ключ не входит
	Output  []byte
	Passes  int
	Changed bool
	Inlined []CachedParam
}

type CachedParam struct {
	Func  string
	Param string
	Value string
	Pass  int
}

// DefaultCacheDir is $XDG_CACHE_HOME/jsmin or ~/.cache/jsmin.
func DefaultCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "jsmin"), nil
}

// OpenDiskCache opens (creating if needed) the cache at dir, or at
// DefaultCacheDir when dir is empty.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		d, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.String()
	// два уровня, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, "out", hexKey[:2], hexKey+".mp")
}

// CacheKey identifies the output of file under the given options. The
// version is part of the key so that a new optimizer never reuses stale
// output.
func CacheKey(file *source.File, copts compress.Options, fopts format.Options) project.Digest {
	return project.Combine(project.Digest(file.Hash),
		version.Plain(),
		strconv.FormatBool(copts.Unused),
		strconv.Itoa(copts.Passes),
		strconv.FormatBool(copts.PreserveArgPositions),
		strconv.FormatBool(fopts.Pretty),
		strconv.Itoa(fopts.IndentWidth),
	)
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or one written by another schema
// is a miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every entry. A cache that was never created is fine.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	// переименовываем, чтобы параллельный запуск не увидел полупустой кэш
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func payloadFromReport(path string, out []byte, rep compress.Report) *DiskPayload {
	p := &DiskPayload{Path: path, Output: out, Passes: rep.Passes, Changed: rep.Changed}
	for _, in := range rep.Inlined {
		p.Inlined = append(p.Inlined, CachedParam(in))
	}
	return p
}

func (p *DiskPayload) report() compress.Report {
	rep := compress.Report{Changed: p.Changed, Passes: p.Passes}
	for _, in := range p.Inlined {
		rep.Inlined = append(rep.Inlined, compress.InlinedParam(in))
	}
	return rep
}
