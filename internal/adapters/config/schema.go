package config

import "go.trai.ch/livetree/internal/core/domain"

// File represents the structure of the livetree config.yaml file.
// Every field is optional; absent keys leave the command line defaults in place.
type File struct {
	Ignore           []string `yaml:"ignore"`
	ShowHidden       *bool    `yaml:"show_hidden"`
	DirsOnly         *bool    `yaml:"dirs_only"`
	FollowSymlinks   *bool    `yaml:"follow_symlinks"`
	Level            *int     `yaml:"level"`
	DebounceMS       *int     `yaml:"debounce_ms"`
	NoColor          *bool    `yaml:"no_color"`
	NoTitle          *bool    `yaml:"no_title"`
	MaxEntries       *int     `yaml:"max_entries"`
	HighlightSeconds *int     `yaml:"highlight_seconds"`
	DefaultIgnores   *bool    `yaml:"default_ignores"`
	LogFile          *string  `yaml:"log_file"`
}

func (f *File) toDomain() domain.ConfigFile {
	return domain.ConfigFile{
		Ignore:           f.Ignore,
		ShowHidden:       f.ShowHidden,
		DirsOnly:         f.DirsOnly,
		FollowSymlinks:   f.FollowSymlinks,
		Level:            f.Level,
		DebounceMS:       f.DebounceMS,
		NoColor:          f.NoColor,
		NoTitle:          f.NoTitle,
		MaxEntries:       f.MaxEntries,
		HighlightSeconds: f.HighlightSeconds,
		DefaultIgnores:   f.DefaultIgnores,
		LogFile:          f.LogFile,
	}
}
