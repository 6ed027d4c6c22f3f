package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestHeader = "# jsmin project configuration\n\n"

// EncodeConfig renders cfg as jsmin.toml text.
func EncodeConfig(cfg Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(manifestHeader)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.String(), nil
}

// WriteManifest creates dir/jsmin.toml with the default configuration.
// It refuses to overwrite an existing manifest.
func WriteManifest(dir string) (string, error) {
	if st, err := os.Stat(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	} else if !st.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}

	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project already initialized: %s exists", path)
	}
	text, err := EncodeConfig(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}
