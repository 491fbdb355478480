package config

import "go.trai.ch/livetree/internal/core/ports"

// NewLoaderWithEnv creates a Loader reading variables from env and the given home directory.
func NewLoaderWithEnv(logger ports.Logger, env map[string]string, home string) *Loader {
	l := NewLoader(logger)
	l.getenv = func(key string) string { return env[key] }
	l.homeDir = func() (string, error) { return home, nil }
	return l
}
