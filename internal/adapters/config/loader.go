// Package config provides the loader for the optional livetree config file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger  ports.Logger
	getenv  func(string) string
	homeDir func() (string, error)
}

// NewLoader creates a Loader that resolves default locations from the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:  logger,
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
	}
}

// Load reads the config file. path wins, then $LIVETREE_CONFIG, then the default location
// under $XDG_CONFIG_HOME or ~/.config. Only a missing default file is silently ignored.
func (l *Loader) Load(path string) (domain.ConfigFile, error) {
	explicit := true
	if path == "" {
		path = l.getenv(domain.ConfigEnvVar)
	}
	if path == "" {
		explicit = false
		path = l.defaultPath()
		if path == "" {
			return domain.ConfigFile{}, nil
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no config file", "path", path)
			return domain.ConfigFile{}, nil
		}
		return domain.ConfigFile{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := Parse(data)
	if err != nil {
		return domain.ConfigFile{}, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded config file", "path", path)
	return file, nil
}

func (l *Loader) defaultPath() string {
	if dir := l.getenv("XDG_CONFIG_HOME"); filepath.IsAbs(dir) {
		return domain.DefaultConfigPath(dir)
	}
	home, err := l.homeDir()
	if err != nil || home == "" {
		return ""
	}
	return domain.DefaultConfigPath(filepath.Join(home, ".config"))
}

// Parse decodes config file contents. Unknown keys are rejected so typos surface early.
// An empty document yields an empty ConfigFile.
func Parse(data []byte) (domain.ConfigFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.ConfigFile{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return file.toDomain(), nil
}
