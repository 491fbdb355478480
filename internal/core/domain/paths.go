package domain

import "path/filepath"

const (
	// AppName is the name used for config directories and the window title.
	AppName = "livetree"

	// ConfigFileName is the name of the optional config file.
	ConfigFileName = "config.yaml"

	// ConfigEnvVar names the environment variable that overrides the config path.
	ConfigEnvVar = "LIVETREE_CONFIG"

	// NoColorEnvVar is the conventional variable that disables colored output.
	NoColorEnvVar = "NO_COLOR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns the config file location under the given config home.
// It joins configHome, livetree, and config.yaml.
func DefaultConfigPath(configHome string) string {
	return filepath.Join(configHome, AppName, ConfigFileName)
}

// TitleFor returns the terminal window title for a watched directory.
func TitleFor(dir string) string {
	return "Live Tree of " + dir
}
