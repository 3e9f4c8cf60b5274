// Package config provides the configuration loader for snapsync.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers snapsync.yaml in cwd or one of its parents. Without a file the defaults
// are returned, with directories resolved against cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, found := findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no config file found, using defaults", "cwd", cwd)
		cfg := domain.DefaultConfig()
		resolveDirs(&cfg, cwd)
		return &cfg, nil
	}
	return l.LoadFile(path)
}

// LoadFile reads the config at path. Relative directories are resolved against the
// directory holding the file.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg := domain.DefaultConfig()
	if err := apply(&cfg, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if err := validate(&cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	resolveDirs(&cfg, filepath.Dir(path))

	l.Logger.Debug("loaded config", "path", path)
	return &cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is discovered or given by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrConfigReadFailed, "config file does not exist")
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func apply(cfg *domain.Config, file *File) error {
	if r := file.Remote; r != nil {
		set(&cfg.Remote.Address, r.Address)
		set(&cfg.Remote.MaxBatchSize, r.MaxBatchSize)
		set(&cfg.Remote.MaxMessageBytes, r.MaxMessageBytes)
		if err := setDuration(&cfg.Remote.Timeout, r.Timeout, "remote.timeout"); err != nil {
			return err
		}
	}
	if c := file.Cache; c != nil {
		set(&cfg.Cache.Dir, c.Dir)
	}
	if s := file.Sync; s != nil {
		set(&cfg.Sync.ProjectParallelism, s.ProjectParallelism)
		set(&cfg.Sync.DocumentContents, s.DocumentContents)
	}
	if s := file.Serve; s != nil {
		set(&cfg.Serve.Listen, s.Listen)
		set(&cfg.Serve.Store, s.Store)
		set(&cfg.Serve.MaxMessageBytes, s.MaxMessageBytes)
		if err := setDuration(&cfg.Serve.IdleTimeout, s.IdleTimeout, "serve.idle_timeout"); err != nil {
			return err
		}
	}
	if lg := file.Log; lg != nil {
		set(&cfg.Log.JSON, lg.JSON)
		set(&cfg.Log.Debug, lg.Debug)
	}
	return nil
}

func set[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *string, field string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "field", field)
	}
	*dst = d
	return nil
}

func validate(cfg *domain.Config) error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"remote.address", cfg.Remote.Address != ""},
		{"remote.timeout", cfg.Remote.Timeout >= 0},
		{"remote.max_batch_size", cfg.Remote.MaxBatchSize > 0},
		{"remote.max_message_bytes", cfg.Remote.MaxMessageBytes > 0},
		{"cache.dir", cfg.Cache.Dir != ""},
		{"sync.project_parallelism", cfg.Sync.ProjectParallelism > 0},
		{"serve.listen", cfg.Serve.Listen != ""},
		{"serve.store", cfg.Serve.Store != ""},
		{"serve.idle_timeout", cfg.Serve.IdleTimeout >= 0},
		{"serve.max_message_bytes", cfg.Serve.MaxMessageBytes > 0},
	}
	for _, c := range checks {
		if !c.ok {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "value out of range"), "field", c.field)
		}
	}
	return nil
}

func resolveDirs(cfg *domain.Config, base string) {
	cfg.Cache.Dir = resolvePath(base, cfg.Cache.Dir)
	cfg.Serve.Store = resolvePath(base, cfg.Serve.Store)
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}
