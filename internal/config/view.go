package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"plannerview/internal/domain"
)

// ErrMalformedConfig marks a view config file that exists but cannot be used.
var ErrMalformedConfig = errors.New("malformed view config")

// LoadViewConfig reads a view config. Unknown keys and invalid enum values are rejected.
func LoadViewConfig(path string) (domain.ViewConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ViewConfig{}, fmt.Errorf("failed to read view config: %w", err)
	}
	return DecodeViewConfig(data)
}

func DecodeViewConfig(data []byte) (domain.ViewConfig, error) {
	cfg := domain.DefaultViewConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return domain.ViewConfig{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return domain.ViewConfig{}, fmt.Errorf("%w: unknown keys %s", ErrMalformedConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return domain.ViewConfig{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	if cfg.Sort.Order == "" {
		cfg.Sort.Order = domain.OrderDescending
	}

	return cfg, nil
}

func EncodeViewConfig(cfg domain.ViewConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode view config: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveViewConfig writes the config, creating the parent directory.
// The file is replaced atomically.
func SaveViewConfig(path string, cfg domain.ViewConfig) error {
	data, err := EncodeViewConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create view config directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write view config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace view config: %w", err)
	}

	return nil
}

// LoadOrInitViewConfig loads the view config at path. A missing file is
// created with the default config.
func LoadOrInitViewConfig(path string) (domain.ViewConfig, error) {
	cfg, err := LoadViewConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return domain.ViewConfig{}, err
	}

	slog.Info("view config missing, writing default", "path", path)
	cfg = domain.DefaultViewConfig()
	if err := SaveViewConfig(path, cfg); err != nil {
		return domain.ViewConfig{}, err
	}
	return cfg, nil
}
