// Package config provides the configuration loader for mirror.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
)

// DefaultFilename is the configuration file searched for when none is
// given explicitly.
const DefaultFilename = "mirror.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
// The file is discovered by walking upward from the working
// directory; a missing file yields the default settings rooted at the
// working directory.
type FileConfigLoader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a FileConfigLoader with the default filename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: DefaultFilename,
		log:      log,
	}
}

// Load reads the configuration starting from the given working
// directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	path, ok := l.discover(cwd)
	if !ok {
		if l.log != nil {
			l.log.Info("no " + l.Filename + " found, using defaults")
		}
		settings := domain.DefaultSettings()
		settings.Root = cwd
		return &settings, nil
	}
	return Load(path)
}

// discover walks upward from cwd looking for the configuration file.
func (l *FileConfigLoader) discover(cwd string) (string, bool) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, l.Filename)
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

// Load reads a configuration file from the given path. Unset fields
// fall back to defaults; a relative root resolves against the file's
// directory.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file mirrorfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.BatchSize < 0 {
		return nil, zerr.With(zerr.New("batch_size must be positive"), "batch_size", file.BatchSize)
	}

	settings := domain.DefaultSettings()
	if file.Root != "" {
		settings.Root = file.Root
	}
	if file.BatchSize > 0 {
		settings.BatchSize = file.BatchSize
	}
	if file.Excludes != nil {
		settings.Excludes = file.Excludes
	}
	if file.StructuralExtensions != nil {
		settings.StructuralExtensions = file.StructuralExtensions
	}

	if !filepath.IsAbs(settings.Root) {
		settings.Root = filepath.Join(filepath.Dir(path), settings.Root)
	}
	return &settings, nil
}
